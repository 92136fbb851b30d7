package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que aplicar stock y anexar al
// kardex sea una sola unidad atómica (commit/rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// StockCache cache opcional para lecturas de stock sin bloqueo (dashboards).
// La pérdida del cache nunca afecta la corrección: se invalida en cada commit
// y los misses caen al repositorio.
type StockCache interface {
	Get(ctx context.Context, productID string) (decimal.Decimal, bool)
	Set(ctx context.Context, productID string, stock decimal.Decimal)
	Invalidate(ctx context.Context, productID string)
}
