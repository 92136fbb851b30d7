package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/pkg/logger"
)

var _ inventory.StockCache = (*StockCache)(nil)

// StockCache cache de stock sobre Redis para lecturas de dashboard.
// Best-effort: un fallo de Redis se degrada a miss y la lectura cae al
// repositorio; la fuente de verdad siempre es la BD.
type StockCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// New construye el cache. TTL corto: el valor se invalida además en cada commit.
func New(client *redis.Client, ttl time.Duration, log *logger.Logger) *StockCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StockCache{client: client, ttl: ttl, log: log.WithComponent("stock-cache")}
}

func key(productID string) string {
	return "stock:" + productID
}

// Get devuelve el stock cacheado y si hubo hit.
func (c *StockCache) Get(ctx context.Context, productID string) (decimal.Decimal, bool) {
	val, err := c.client.Get(ctx, key(productID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("product_id", productID).Msg("cache get")
		}
		return decimal.Zero, false
	}
	stock, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false
	}
	return stock, true
}

// Set guarda el stock con TTL.
func (c *StockCache) Set(ctx context.Context, productID string, stock decimal.Decimal) {
	if err := c.client.Set(ctx, key(productID), stock.String(), c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("product_id", productID).Msg("cache set")
	}
}

// Invalidate borra la entrada; se llama después de cada movimiento comprometido.
func (c *StockCache) Invalidate(ctx context.Context, productID string) {
	if err := c.client.Del(ctx, key(productID)).Err(); err != nil {
		c.log.Warn().Err(err).Str("product_id", productID).Msg("cache invalidate")
	}
}
