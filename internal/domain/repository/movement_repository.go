package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// MovementRepository define el puerto del kardex (append-only).
// Create asigna ID y CreatedAt en el commit; las filas nunca se
// actualizan ni se borran.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List(limit, offset int) ([]*entity.MovementWithProduct, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.MovementWithProduct, error)
}
