package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidKind        = errors.New("tipo de movimiento inválido")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser un entero positivo")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrBusy               = errors.New("producto ocupado por otro movimiento, reintentar")
	ErrInvariantViolation = errors.New("violación de invariante: stock negativo")
	ErrPersistence        = errors.New("fallo de persistencia, movimiento revertido")
)

// InsufficientStockError rechaza una salida mayor al stock actual.
// Lleva cantidades para que el caller pueda ajustar la petición.
type InsufficientStockError struct {
	ProductID string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: solicitado %s, disponible %s",
		e.ProductID, e.Requested, e.Available)
}

// Is permite errors.Is(err, domain.ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// InvariantViolationError: el apply dejaría el stock negativo después de que la
// validación pasó. No debería ser alcanzable; aborta la transacción, nunca se
// ajusta el valor en silencio.
type InvariantViolationError struct {
	ProductID string
	Attempted decimal.Decimal // stock resultante que se intentó escribir
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("violación de invariante: stock resultante %s para producto %s",
		e.Attempted, e.ProductID)
}

// Is permite errors.Is(err, domain.ErrInvariantViolation).
func (e *InvariantViolationError) Is(target error) bool {
	return target == ErrInvariantViolation
}
