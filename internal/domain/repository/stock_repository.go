package repository

import "github.com/shopspring/decimal"

// StockRepository define el puerto para leer/mutar el stock de products.
// Update solo debe llamarse dentro de una transacción con la fila bloqueada
// (GetForUpdate) y con el lock por producto del coordinador en mano.
type StockRepository interface {
	Get(productID string) (decimal.Decimal, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y devuelve el stock.
	GetForUpdate(productID string) (decimal.Decimal, error)
	Update(productID string, newStock decimal.Decimal) error
}
