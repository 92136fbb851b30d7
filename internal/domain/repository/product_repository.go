package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo (DIP).
// El núcleo de movimientos trata el catálogo como colaborador externo:
// solo existencia y lectura; los metadatos los administra otro sistema.
type ProductRepository interface {
	Create(product *entity.Product) error // usado por cmd/seed
	GetByID(id string) (*entity.Product, error)
	Exists(id string) (bool, error)
	List(limit, offset int) ([]*entity.Product, error)
}
