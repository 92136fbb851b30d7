package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo acceso de lectura al catálogo (usable con pool o tx).
// Create existe solo para el seed de desarrollo; el catálogo real lo
// administra otro sistema.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta un producto con su stock inicial (cmd/seed).
func (r *ProductRepo) Create(product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO products (id, sku, name, description, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		product.ID, product.SKU, product.Name, product.Description, product.Price, product.Stock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("sku %q ya existe: %w", product.SKU, err)
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), `
		SELECT id, sku, name, description, price, stock, created_at, updated_at
		FROM products WHERE id = $1`, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Exists verifica la existencia del producto sin traer la fila completa.
func (r *ProductRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return exists, nil
}

// List lista el catálogo paginado.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sku, name, description, price, stock, created_at, updated_at
		FROM products ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
