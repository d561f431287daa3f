package model

import (
	"restaurant_pos/constants"
	"time"
)

type Table struct {
	DTO
	Name           string                `gorm:"not null" validate:"required" json:"name"`
	Zone           string                `gorm:"not null;index" validate:"required" json:"zone"` // Salón Principal, Terraza, Barra, VIP
	Seats          int                   `gorm:"not null;default:4" validate:"min=1" json:"seats"`
	Status         constants.TableStatus `gorm:"not null;default:'libre'" json:"status"`
	Total          float64               `gorm:"not null;default:0" json:"total"`
	TimeOpened     *time.Time            `json:"timeOpened"`
	CurrentOrderId *uint                 `json:"currentOrderId"`
	CurrentOrder   *Order                `gorm:"foreignKey:CurrentOrderId" json:"-"`
}

// IsFree reports whether the table can receive a transferred or new party.
func (t *Table) IsFree() bool {
	return t.Status == constants.TableLibre
}

// Occupancy is the movable occupancy state of a table, used by transfers.
type Occupancy struct {
	Status         constants.TableStatus
	Total          float64
	TimeOpened     *time.Time
	CurrentOrderId *uint
}

// TakeOccupancy copies the occupancy of t and resets t to libre.
func (t *Table) TakeOccupancy() Occupancy {
	occ := Occupancy{
		Status:         t.Status,
		Total:          t.Total,
		TimeOpened:     t.TimeOpened,
		CurrentOrderId: t.CurrentOrderId,
	}
	t.Status = constants.TableLibre
	t.Total = 0
	t.TimeOpened = nil
	t.CurrentOrderId = nil
	return occ
}

// ApplyOccupancy places an occupancy state onto t.
func (t *Table) ApplyOccupancy(occ Occupancy) {
	t.Status = occ.Status
	t.Total = occ.Total
	t.TimeOpened = occ.TimeOpened
	t.CurrentOrderId = occ.CurrentOrderId
}

type CreateTableInput struct {
	Name  string `validate:"required" json:"name"`
	Zone  string `validate:"required" json:"zone"`
	Seats int    `validate:"required,min=1" json:"seats"`
}

type UpdateTableInput struct {
	Name  *string `json:"name,omitempty"`
	Zone  *string `json:"zone,omitempty"`
	Seats *int    `validate:"omitempty,min=1" json:"seats,omitempty"`
}

type TransferTableInput struct {
	TargetTableId uint `validate:"required" json:"targetTableId"`
}
