package constants

import "restaurant_pos/utils"

// Staff roles carried in the JWT claims.
const (
	ROLE_ADMIN  = "admin"
	ROLE_MESERO = "mesero"
	ROLE_COCINA = "cocina"
)

// TableStatus is the occupancy state of a table.
type TableStatus string

const (
	TableLibre   TableStatus = "libre"
	TableOcupada TableStatus = "ocupada"
	TablePagando TableStatus = "pagando"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderCocinando OrderStatus = "cocinando"
	OrderPendiente OrderStatus = "pendiente"
	OrderServido   OrderStatus = "servido"
	OrderPagado    OrderStatus = "pagado"
	OrderAnulado   OrderStatus = "anulado"
)

// SessionStatus is the state of a cash register session.
type SessionStatus string

const (
	SessionAbierta SessionStatus = "abierta"
	SessionCerrada SessionStatus = "cerrada"
)

// MovementType classifies a manual cash movement.
type MovementType string

const (
	MovementIngreso MovementType = "ingreso"
	MovementEgreso  MovementType = "egreso"
)

// Payment methods accepted at the register.
const (
	PAY_EFECTIVO = "efectivo"
	PAY_TARJETA  = "tarjeta"
	PAY_YAPE     = "yape"
)

// orderTransitions is the closed set of legal order status moves.
// Terminal states (pagado, anulado) have no outgoing edges.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderCocinando: {OrderPendiente, OrderPagado, OrderAnulado},
	OrderPendiente: {OrderServido, OrderPagado, OrderAnulado},
	OrderServido:   {OrderPagado, OrderAnulado},
	OrderPagado:    {OrderAnulado},
}

// CanTransitionOrder reports whether an order may move from one status to another.
func CanTransitionOrder(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalOrder reports whether the order status admits no further kitchen moves.
func IsTerminalOrder(s OrderStatus) bool {
	return s == OrderPagado || s == OrderAnulado
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderCocinando, OrderPendiente, OrderServido, OrderPagado, OrderAnulado:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	return utils.IsValidValueOfConstant(m, []string{PAY_EFECTIVO, PAY_TARJETA, PAY_YAPE})
}

// Response messages.
const (
	MISSING_LOGIN_INPUT      = "Usuario y contraseña son obligatorios"
	INVALID_USERNAME         = "El usuario no existe"
	INVALID_PASSWORD         = "Contraseña incorrecta"
	ACCOUNT_NOT_ACTIVE       = "La cuenta está desactivada"
	NOT_ADMIN                = "Se requiere rol de administrador"
	ERROR_INTERNAL_ERROR     = "Error interno del servidor"
	DATA_INPUT_IS_NOT_NUMBER = "El identificador debe ser numérico"

	NOT_FOUND_RECORDS          = "No se encontraron registros"
	ERROR_PARSE_DATA_TO_LOCALS = "Error al leer los datos validados"
	ERROR_CREATE               = "Error al crear el registro"
	ERROR_UPDATE               = "Error al actualizar el registro"
	ERROR_DELETE               = "Error al eliminar el registro"
	ERROR_INPUT                = "Datos de entrada no válidos"
	CAN_NOT_HASH_PASSWORD      = "No se pudo cifrar la contraseña"

	CAJA_NOT_OPEN      = "No hay una caja abierta"
	CAJA_ALREADY_OPEN  = "Ya existe una caja abierta"
	TABLE_NOT_FREE     = "La mesa destino no está libre"
	TABLE_ALREADY_FREE = "La mesa ya está libre"
	ORDER_EMPTY        = "El pedido no tiene productos"
	ORDER_NOT_ACTIVE   = "La mesa no tiene una orden activa"
	INSUFFICIENT_STOCK = "Stock insuficiente"
	INVALID_TRANSITION = "Transición de estado no permitida"
	INVALID_PAY_METHOD = "Método de pago no válido"
)
