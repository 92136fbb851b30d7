package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind tipo cerrado de movimiento: entrada o salida.
// Los valores siguen el contrato del sistema original.
type MovementKind string

const (
	MovementKindInbound  MovementKind = "entrada"
	MovementKindOutbound MovementKind = "salida"
)

// Valid indica si el kind es uno de los dos valores permitidos.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementKindInbound, MovementKindOutbound:
		return true
	}
	return false
}

// Movement representa un movimiento de inventario comprometido (inmutable una vez creado).
// ID y CreatedAt los asigna el store en el commit; CreatedAt es no-decreciente con ID.
type Movement struct {
	ID        int64
	ProductID string
	Kind      MovementKind
	Quantity  decimal.Decimal // siempre positiva; el signo lo da Kind
	Actor     string          // UserID del token (colaborador de identidad)
	Notes     string          // observaciones, opcional
	CreatedAt time.Time
}

// SignedDelta devuelve la cantidad con signo según el kind (+entrada, -salida).
func (m *Movement) SignedDelta() decimal.Decimal {
	switch m.Kind {
	case MovementKindInbound:
		return m.Quantity
	case MovementKindOutbound:
		return m.Quantity.Neg()
	}
	return decimal.Zero
}

// MovementWithProduct fila del kardex con datos del producto (para el historial).
type MovementWithProduct struct {
	Movement
	ProductName string
	ProductSKU  string
}
