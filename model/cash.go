package model

import (
	"restaurant_pos/constants"
	"time"
)

type CashSession struct {
	DTO
	Status        constants.SessionStatus `gorm:"not null;default:'abierta';index" json:"status"`
	OpenedBy      uint                    `gorm:"not null" json:"openedBy"`
	Opener        *Account                `gorm:"foreignKey:OpenedBy" json:"-"`
	ClosedBy      *uint                   `json:"closedBy"`
	OpeningFloat  float64                 `gorm:"not null" json:"openingFloat"`
	OpenedAt      time.Time               `gorm:"not null" json:"openedAt"`
	ClosedAt      *time.Time              `json:"closedAt"`
	ExpectedCash  *float64                `json:"expectedCash"`
	CountedCash   *float64                `json:"countedCash"`
	Variance      *float64                `json:"variance"`
	TotalSales    *float64                `json:"totalSales"`
	TotalIngresos *float64                `json:"totalIngresos"`
	TotalEgresos  *float64                `json:"totalEgresos"`
	Movements     []CashMovement          `gorm:"foreignKey:SessionId" json:"movements"`
}

type CashMovement struct {
	DTO
	SessionId uint                   `gorm:"not null;index" json:"sessionId"`
	Type      constants.MovementType `gorm:"not null" json:"type"`
	Amount    float64                `gorm:"not null" validate:"gt=0" json:"amount"`
	Concept   string                 `gorm:"not null" validate:"required" json:"concept"`
	CreatedBy uint                   `gorm:"not null" json:"createdBy"`
}

// SessionTotals aggregates the running numbers of an open session.
type SessionTotals struct {
	TotalSales    float64 `json:"totalSales"`
	CashSales     float64 `json:"cashSales"`
	CardSales     float64 `json:"cardSales"`
	YapeSales     float64 `json:"yapeSales"`
	TotalIngresos float64 `json:"totalIngresos"`
	TotalEgresos  float64 `json:"totalEgresos"`
	ExpectedCash  float64 `json:"expectedCash"`
	OrderCount    int64   `json:"orderCount"`
}

// Compute fills the derived expected cash figure.
// Card and yape sales never enter the drawer.
func (t *SessionTotals) Compute(openingFloat float64) {
	t.TotalSales = t.CashSales + t.CardSales + t.YapeSales
	t.ExpectedCash = openingFloat + t.CashSales + t.TotalIngresos - t.TotalEgresos
}

type OpenSessionInput struct {
	OpeningFloat float64 `validate:"min=0" json:"openingFloat"`
}

type CloseSessionInput struct {
	CountedCash float64 `validate:"min=0" json:"countedCash"`
}

type CreateMovementInput struct {
	Type    constants.MovementType `validate:"required,oneof=ingreso egreso" json:"type"`
	Amount  float64                `validate:"required,gt=0" json:"amount"`
	Concept string                 `validate:"required" json:"concept"`
}
