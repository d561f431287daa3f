package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItemSnapshotsProduct(t *testing.T) {
	product := Product{
		DTO:   DTO{ID: 9},
		Name:  "Lomo saltado",
		Price: 32,
	}
	input := OrderItemInput{ProductId: 9, Quantity: 3, Note: "sin ají"}

	item := NewOrderItem(product, input)

	assert.Equal(t, uint(9), item.ProductId)
	assert.Equal(t, "Lomo saltado", item.ProductName)
	assert.Equal(t, 32.0, item.UnitPrice)
	assert.Equal(t, 3, item.Quantity)
	assert.InDelta(t, 96, item.Subtotal, 0.001)
	assert.Equal(t, "sin ají", item.Note)
}

func TestItemsTotalSumsLineSubtotals(t *testing.T) {
	items := []OrderItem{
		NewOrderItem(Product{Price: 28}, OrderItemInput{Quantity: 2}),
		NewOrderItem(Product{Price: 8.5}, OrderItemInput{Quantity: 3}),
		NewOrderItem(Product{Price: 22}, OrderItemInput{Quantity: 1}),
	}

	// The batch value must equal the sum of its lines, nothing added or lost.
	assert.InDelta(t, 56+25.5+22, ItemsTotal(items), 0.001)
	assert.Zero(t, ItemsTotal(nil))
}

func TestMergeItemsAppendsToExistingOrder(t *testing.T) {
	order := Order{
		DTO:    DTO{ID: 5},
		Status: "cocinando",
		Total:  54.50,
	}
	items := []OrderItem{
		NewOrderItem(Product{DTO: DTO{ID: 2}, Name: "Pisco sour", Price: 22}, OrderItemInput{Quantity: 2}),
		NewOrderItem(Product{DTO: DTO{ID: 3}, Name: "Chicha morada", Price: 8}, OrderItemInput{Quantity: 1}),
	}

	order.MergeItems(items)

	// Every new line belongs to the existing ticket, no second order appears.
	for _, item := range items {
		require.Equal(t, uint(5), item.OrderId)
	}
	assert.InDelta(t, 54.50+44+8, order.Total, 0.001)
	assert.EqualValues(t, "cocinando", order.Status)
}

func TestSettledTotalReplacesWithChargedAmount(t *testing.T) {
	payment := PaymentInput{PaymentMethod: "efectivo", AmountPaid: 123.456}

	// The register charges tips folded in; that amount wins over the item sum.
	assert.InDelta(t, 123.46, payment.SettledTotal(110), 0.001)
}

func TestSettledTotalKeepsItemSumWhenZero(t *testing.T) {
	payment := PaymentInput{PaymentMethod: "tarjeta"}

	assert.InDelta(t, 88.50, payment.SettledTotal(88.50), 0.001)
}
