package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El catálogo es dueño de los
// metadatos (SKU, nombre, precio); el núcleo de movimientos solo lee la
// existencia y muta Stock vía StockRepository dentro de una transacción.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       decimal.Decimal // entero no negativo en todo punto observable
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
