package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo kardex sobre PostgreSQL (usable con pool o tx).
// Las filas son inmutables: solo INSERT y SELECT, nunca UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento; la BD asigna id (bigserial) y fecha de commit.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	notes := (*string)(nil)
	if movement.Notes != "" {
		notes = &movement.Notes
	}
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO movements (product_id, kind, quantity, actor, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, created_at`,
		movement.ProductID, string(movement.Kind), movement.Quantity, movement.Actor, notes,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

const historySelect = `
	SELECT m.id, m.product_id, m.kind, m.quantity, m.actor, m.notes, m.created_at,
	       p.name, p.sku
	FROM movements m
	JOIN products p ON p.id = m.product_id`

// List devuelve el kardex completo, más reciente primero (fecha DESC, id DESC).
func (r *MovementRepo) List(limit, offset int) ([]*entity.MovementWithProduct, error) {
	query := historySelect + `
		ORDER BY m.created_at DESC, m.id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanHistory(rows)
}

// ListByProduct devuelve el kardex de un producto, más reciente primero.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.MovementWithProduct, error) {
	query := historySelect + `
		WHERE m.product_id = $1
		ORDER BY m.created_at DESC, m.id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	return scanHistory(rows)
}

func scanHistory(rows pgx.Rows) ([]*entity.MovementWithProduct, error) {
	var list []*entity.MovementWithProduct
	for rows.Next() {
		var m entity.MovementWithProduct
		var kind string
		var notes *string
		if err := rows.Scan(&m.ID, &m.ProductID, &kind, &m.Quantity, &m.Actor, &notes,
			&m.CreatedAt, &m.ProductName, &m.ProductSKU); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Kind = entity.MovementKind(kind)
		if notes != nil {
			m.Notes = *notes
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
