package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"cocinando a pendiente", OrderCocinando, OrderPendiente, true},
		{"cocinando a pagado", OrderCocinando, OrderPagado, true},
		{"cocinando a anulado", OrderCocinando, OrderAnulado, true},
		{"cocinando a servido salta pendiente", OrderCocinando, OrderServido, false},
		{"pendiente a servido", OrderPendiente, OrderServido, true},
		{"servido a pagado", OrderServido, OrderPagado, true},
		{"servido a pendiente retrocede", OrderServido, OrderPendiente, false},
		{"pagado a anulado", OrderPagado, OrderAnulado, true},
		{"pagado a servido", OrderPagado, OrderServido, false},
		{"anulado es terminal", OrderAnulado, OrderCocinando, false},
		{"sin auto transicion", OrderPendiente, OrderPendiente, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransitionOrder(tc.from, tc.to))
		})
	}
}

func TestIsTerminalOrder(t *testing.T) {
	assert.True(t, IsTerminalOrder(OrderPagado))
	assert.True(t, IsTerminalOrder(OrderAnulado))
	assert.False(t, IsTerminalOrder(OrderCocinando))
	assert.False(t, IsTerminalOrder(OrderPendiente))
	assert.False(t, IsTerminalOrder(OrderServido))
}

func TestAnuladoHasNoOutgoingEdges(t *testing.T) {
	for _, to := range []OrderStatus{OrderCocinando, OrderPendiente, OrderServido, OrderPagado, OrderAnulado} {
		require.False(t, CanTransitionOrder(OrderAnulado, to), "anulado -> %s", to)
	}
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderCocinando))
	assert.True(t, ValidOrderStatus(OrderPagado))
	assert.False(t, ValidOrderStatus(OrderStatus("entregado")))
	assert.False(t, ValidOrderStatus(OrderStatus("")))
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PAY_EFECTIVO))
	assert.True(t, ValidPaymentMethod(PAY_TARJETA))
	assert.True(t, ValidPaymentMethod(PAY_YAPE))
	assert.False(t, ValidPaymentMethod("plin"))
	assert.False(t, ValidPaymentMethod(""))
}
