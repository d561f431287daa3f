package model

import (
	"restaurant_pos/constants"
	"restaurant_pos/utils"
	"time"
)

type Order struct {
	DTO
	PublicCode    string                `gorm:"uniqueIndex;not null" json:"publicCode"`
	TableId       uint                  `gorm:"not null;index" json:"tableId"`
	Table         *Table                `gorm:"foreignKey:TableId" json:"-"`
	Status        constants.OrderStatus `gorm:"not null;default:'cocinando';index" json:"status"`
	Total         float64               `gorm:"not null;default:0" json:"total"`
	PaymentMethod *string               `json:"paymentMethod"`
	Note          string                `json:"note"`
	CreatedBy     uint                  `gorm:"not null" json:"createdBy"`
	Creator       *Account              `gorm:"foreignKey:CreatedBy" json:"-"`
	PaidAt        *time.Time            `json:"paidAt"`
	VoidedAt      *time.Time            `json:"voidedAt"`
	Items         []OrderItem           `gorm:"foreignKey:OrderId" json:"items"`
}

// OrderItem snapshots the product name and unit price at order time so
// later catalogue edits never rewrite a placed order.
type OrderItem struct {
	DTO
	OrderId     uint    `gorm:"not null;index" json:"orderId"`
	ProductId   uint    `gorm:"not null" json:"productId"`
	ProductName string  `gorm:"not null" json:"productName"`
	UnitPrice   float64 `gorm:"not null" json:"unitPrice"`
	Quantity    int     `gorm:"not null" validate:"min=1" json:"quantity"`
	Subtotal    float64 `gorm:"not null" json:"subtotal"`
	Note        string  `json:"note"`
}

// NewOrderItem builds the line snapshot for a product at order time.
func NewOrderItem(p Product, in OrderItemInput) OrderItem {
	return OrderItem{
		ProductId:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    in.Quantity,
		Subtotal:    utils.RoundMoney(p.Price * float64(in.Quantity)),
		Note:        in.Note,
	}
}

// ItemsTotal sums the line subtotals of a batch.
func ItemsTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	return utils.RoundMoney(total)
}

// MergeItems claims new lines for the order and grows its total. A table
// keeps a single ticket while its order is still in cocinando.
func (o *Order) MergeItems(items []OrderItem) {
	for i := range items {
		items[i].OrderId = o.ID
	}
	o.Total = utils.RoundMoney(o.Total + ItemsTotal(items))
}

type OrderItemInput struct {
	ProductId uint   `validate:"required" json:"productId"`
	Quantity  int    `validate:"required,min=1" json:"quantity"`
	Note      string `json:"note"`
}

type SendOrderInput struct {
	TableId uint             `validate:"required" json:"tableId"`
	Items   []OrderItemInput `validate:"required,min=1,dive" json:"items"`
	Note    string           `json:"note"`
}

type UpdateOrderStatusInput struct {
	Status constants.OrderStatus `validate:"required" json:"status"`
}

type PaymentInput struct {
	PaymentMethod string  `validate:"required,oneof=efectivo tarjeta yape" json:"paymentMethod"`
	AmountPaid    float64 `validate:"omitempty,min=0" json:"amountPaid"`
}

// SettledTotal picks the amount stored on the order at payment. The register
// folds tips into the charged amount; zero keeps the item-sum total.
func (p PaymentInput) SettledTotal(itemTotal float64) float64 {
	if p.AmountPaid > 0 {
		return utils.RoundMoney(p.AmountPaid)
	}
	return itemTotal
}

type FilterOrderInput struct {
	Pagination
	Status  *constants.OrderStatus `json:"status"`
	TableId *uint                  `json:"tableId"`
	From    *time.Time             `json:"from"`
	To      *time.Time             `json:"to"`
}
