package model

type Category struct {
	DTO
	Name    string `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Station string `gorm:"not null;default:'cocina'" json:"station"` // cocina or barra
}

type CreateCategoryInput struct {
	Name    string `validate:"required" json:"name"`
	Station string `validate:"omitempty,oneof=cocina barra" json:"station"`
}

type UpdateCategoryInput struct {
	Name    *string `json:"name,omitempty"`
	Station *string `validate:"omitempty,oneof=cocina barra" json:"station,omitempty"`
}
