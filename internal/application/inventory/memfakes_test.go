package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// Fakes en memoria con semántica transaccional: las escrituras de un Run se
// aplican todas o ninguna, igual que el TxRunner de PostgreSQL.

type memStore struct {
	mu         sync.Mutex
	stocks     map[string]decimal.Decimal
	names      map[string]string
	movs       []*entity.Movement
	nextID     int64
	failCreate error // si no es nil, Create del kardex falla dentro de la tx
}

func newMemStore() *memStore {
	return &memStore{
		stocks: make(map[string]decimal.Decimal),
		names:  make(map[string]string),
	}
}

func (s *memStore) addProduct(id, name string, stock int64) {
	s.stocks[id] = decimal.NewFromInt(stock)
	s.names[id] = name
}

func (s *memStore) stockOf(id string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stocks[id]
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movs)
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.stocks[p.ID] = p.Stock
	r.store.names[p.ID] = p.Name
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stock, ok := r.store.stocks[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &entity.Product{ID: id, Name: r.store.names[id], Stock: stock}, nil
}

func (r *memProductRepo) Exists(id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, ok := r.store.stocks[id]
	return ok, nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, errors.New("no implementado")
}

// ── StockRepository (lecturas fuera de tx) ────────────────────────────────────

type memStockRepo struct{ store *memStore }

func (r *memStockRepo) Get(productID string) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stock, ok := r.store.stocks[productID]
	if !ok {
		return decimal.Zero, domain.ErrProductNotFound
	}
	return stock, nil
}

func (r *memStockRepo) GetForUpdate(productID string) (decimal.Decimal, error) {
	return r.Get(productID)
}

func (r *memStockRepo) Update(productID string, newStock decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.stocks[productID] = newStock
	return nil
}

// ── MovementRepository (lecturas fuera de tx) ─────────────────────────────────

type memMovementRepo struct{ store *memStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	return errors.New("create fuera de transacción")
}

func (r *memMovementRepo) List(limit, offset int) ([]*entity.MovementWithProduct, error) {
	return r.list("", limit, offset)
}

func (r *memMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.MovementWithProduct, error) {
	return r.list(productID, limit, offset)
}

func (r *memMovementRepo) list(productID string, limit, offset int) ([]*entity.MovementWithProduct, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var all []*entity.Movement
	for _, m := range r.store.movs {
		if productID == "" || m.ProductID == productID {
			all = append(all, m)
		}
	}
	// fecha DESC, id DESC — el mismo orden del adaptador PostgreSQL
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	var out []*entity.MovementWithProduct
	for _, m := range all[offset:end] {
		out = append(out, &entity.MovementWithProduct{
			Movement:    *m,
			ProductName: r.store.names[m.ProductID],
		})
	}
	return out, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type txState struct {
	store  *memStore
	stocks map[string]decimal.Decimal
	movs   []*entity.Movement
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txState{store: s, stocks: make(map[string]decimal.Decimal)}
	if err := fn(&txMovementRepo{tx}, &txStockRepo{tx}); err != nil {
		return err // rollback: se descartan las escrituras del txState
	}
	for id, stock := range tx.stocks {
		s.stocks[id] = stock
	}
	s.movs = append(s.movs, tx.movs...)
	return nil
}

type txStockRepo struct{ tx *txState }

func (r *txStockRepo) Get(productID string) (decimal.Decimal, error) {
	return r.GetForUpdate(productID)
}

func (r *txStockRepo) GetForUpdate(productID string) (decimal.Decimal, error) {
	if stock, ok := r.tx.stocks[productID]; ok {
		return stock, nil
	}
	stock, ok := r.tx.store.stocks[productID]
	if !ok {
		return decimal.Zero, domain.ErrProductNotFound
	}
	return stock, nil
}

func (r *txStockRepo) Update(productID string, newStock decimal.Decimal) error {
	r.tx.stocks[productID] = newStock
	return nil
}

type txMovementRepo struct{ tx *txState }

func (r *txMovementRepo) Create(m *entity.Movement) error {
	if err := r.tx.store.failCreate; err != nil {
		return err
	}
	// Como un bigserial: el id se quema aunque la tx haga rollback
	r.tx.store.nextID++
	m.ID = r.tx.store.nextID
	m.CreatedAt = time.Now()
	r.tx.movs = append(r.tx.movs, m)
	return nil
}

func (r *txMovementRepo) List(limit, offset int) ([]*entity.MovementWithProduct, error) {
	return nil, errors.New("no implementado")
}

func (r *txMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.MovementWithProduct, error) {
	return nil, errors.New("no implementado")
}

// ── StockCache ────────────────────────────────────────────────────────────────

type memCache struct {
	mu           sync.Mutex
	values       map[string]decimal.Decimal
	hits         int
	invalidation int
}

func newMemCache() *memCache {
	return &memCache{values: make(map[string]decimal.Decimal)}
}

func (c *memCache) Get(ctx context.Context, productID string) (decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stock, ok := c.values[productID]
	if ok {
		c.hits++
	}
	return stock, ok
}

func (c *memCache) Set(ctx context.Context, productID string, stock decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[productID] = stock
}

func (c *memCache) Invalidate(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, productID)
	c.invalidation++
}
