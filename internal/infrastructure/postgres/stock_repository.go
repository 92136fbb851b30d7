package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// El stock vive en la columna products.stock; el CHECK (stock >= 0) de la
// tabla respalda el invariante como última línea de defensa.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto sin bloquear la fila.
func (r *StockRepo) Get(productID string) (decimal.Decimal, error) {
	var stock decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT stock FROM products WHERE id = $1`, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrProductNotFound
		}
		return decimal.Zero, fmt.Errorf("get stock: %w", err)
	}
	return stock, nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID string) (decimal.Decimal, error) {
	var stock decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT stock FROM products WHERE id = $1 FOR UPDATE`, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrProductNotFound
		}
		return decimal.Zero, fmt.Errorf("get stock for update: %w", err)
	}
	return stock, nil
}

// Update escribe el nuevo stock. Solo se llama con la fila bloqueada y el
// valor ya revalidado; un stock negativo lo rechaza también el CHECK de la tabla.
func (r *StockRepo) Update(productID string, newStock decimal.Decimal) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`, productID, newStock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
