package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	cases := []struct {
		name      string
		today     float64
		yesterday float64
		want      float64
	}{
		{"crecimiento normal", 150, 100, 50},
		{"caida", 50, 100, -50},
		{"sin cambio", 100, 100, 0},
		{"ayer cero hoy cero", 0, 0, 0},
		{"ayer cero hoy positivo", 80, 0, 100},
		{"hoy cero", 0, 100, -100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, CalculateGrowth(tc.today, tc.yesterday), 0.001)
		})
	}
}

func TestRoundMoney(t *testing.T) {
	assert.InDelta(t, 10.56, RoundMoney(10.556), 0.0001)
	assert.InDelta(t, 10.55, RoundMoney(10.554), 0.0001)
	assert.InDelta(t, 28.5, RoundMoney(9.5+19.0), 0.0001)
	assert.InDelta(t, -3.33, RoundMoney(-3.333), 0.0001)
	assert.Zero(t, RoundMoney(0))
}

func TestPtr(t *testing.T) {
	v := Ptr(42.5)
	assert.Equal(t, 42.5, *v)
	b := Ptr(true)
	assert.True(t, *b)
}

func TestIsValidValueOfConstant(t *testing.T) {
	methods := []string{"efectivo", "tarjeta", "yape"}
	assert.True(t, IsValidValueOfConstant("yape", methods))
	assert.False(t, IsValidValueOfConstant("plin", methods))
	assert.False(t, IsValidValueOfConstant("", methods))
}
