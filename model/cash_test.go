package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTotalsCompute(t *testing.T) {
	totals := SessionTotals{
		CashSales:     350.50,
		CardSales:     120,
		YapeSales:     80,
		TotalIngresos: 50,
		TotalEgresos:  30,
	}
	totals.Compute(100)

	assert.InDelta(t, 550.50, totals.TotalSales, 0.001)
	// Only cash enters the drawer: 100 + 350.50 + 50 - 30
	assert.InDelta(t, 470.50, totals.ExpectedCash, 0.001)
}

func TestSessionTotalsComputeNoSales(t *testing.T) {
	totals := SessionTotals{}
	totals.Compute(200)

	assert.Zero(t, totals.TotalSales)
	assert.InDelta(t, 200, totals.ExpectedCash, 0.001)
}

func TestSessionTotalsComputeEgresosExceedCash(t *testing.T) {
	totals := SessionTotals{
		CashSales:    20,
		TotalEgresos: 150,
	}
	totals.Compute(100)

	// A drawer can end up owing money, the math must not clamp.
	assert.InDelta(t, -30, totals.ExpectedCash, 0.001)
}
