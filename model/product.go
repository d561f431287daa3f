package model

type Product struct {
	DTO
	Name       string   `gorm:"not null" validate:"required" json:"name"`
	Slug       string   `gorm:"uniqueIndex;not null" json:"slug"`
	CategoryId uint     `gorm:"not null;index" validate:"required" json:"categoryId"`
	Category   Category `gorm:"foreignKey:CategoryId" json:"category"`
	Price      float64  `gorm:"not null" validate:"min=0" json:"price"`
	Stock      int      `gorm:"not null;default:0" validate:"min=0" json:"stock"`
	Active     bool     `gorm:"not null;default:true" json:"active"`
	ImageUrl   string   `json:"imageUrl"`
}

type CreateProductInput struct {
	Name       string  `validate:"required" json:"name"`
	CategoryId uint    `validate:"required" json:"categoryId"`
	Price      float64 `validate:"required,min=0" json:"price"`
	Stock      int     `validate:"min=0" json:"stock"`
	ImageUrl   string  `json:"imageUrl"`
}

type UpdateProductInput struct {
	Name       *string  `json:"name,omitempty"`
	CategoryId *uint    `json:"categoryId,omitempty"`
	Price      *float64 `validate:"omitempty,min=0" json:"price,omitempty"`
	Stock      *int     `validate:"omitempty,min=0" json:"stock,omitempty"`
	Active     *bool    `json:"active,omitempty"`
	ImageUrl   *string  `json:"imageUrl,omitempty"`
}

type FilterProductInput struct {
	Pagination
	Search     *string `json:"search"`
	CategoryId *uint   `json:"categoryId"`
	Active     *bool   `json:"active"`
}
