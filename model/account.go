package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password string `gorm:"not null" validate:"required,min=6,max=50" json:"-"`
	FullName string `json:"fullName"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `gorm:"not null;default:'mesero'" json:"role"` // admin, mesero, cocina
}

type CreateAccountInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Password string `validate:"required,min=6,max=50" json:"password"`
	FullName string `json:"fullName"`
	Role     string `validate:"required,oneof=admin mesero cocina" json:"role"`
}

type UpdateAccountInput struct {
	FullName *string `json:"fullName,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Role     *string `validate:"omitempty,oneof=admin mesero cocina" json:"role,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `validate:"required" json:"currentPassword"`
	NewPassword     string `validate:"required,min=6,max=50" json:"newPassword"`
	RepeatPassword  string `validate:"required" json:"repeatPassword"`
}
