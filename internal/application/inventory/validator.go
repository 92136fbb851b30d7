package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// Validator aplica las reglas de un movimiento propuesto. Función pura,
// sin efectos secundarios; seguro llamarla cualquier número de veces.
type Validator struct{}

// ValidateRequest chequeos estáticos: kind cerrado y cantidad entera positiva.
// No requiere el stock actual.
func (Validator) ValidateRequest(kind entity.MovementKind, quantity decimal.Decimal) error {
	if !kind.Valid() {
		return domain.ErrInvalidKind
	}
	if !quantity.IsInteger() || quantity.Sign() <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// ValidateStock chequeo dependiente de estado: una salida no puede exceder el
// stock leído bajo el lock del producto.
func (Validator) ValidateStock(productID string, kind entity.MovementKind, quantity, currentStock decimal.Decimal) error {
	switch kind {
	case entity.MovementKindInbound:
		return nil
	case entity.MovementKindOutbound:
		if quantity.GreaterThan(currentStock) {
			return &domain.InsufficientStockError{
				ProductID: productID,
				Requested: quantity,
				Available: currentStock,
			}
		}
		return nil
	}
	return domain.ErrInvalidKind
}
