// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"globalhub_backend/internal/feature/catalog/domain/entity"
	"globalhub_backend/internal/feature/catalog/usecase"
)

// CachingProductRepository decorates a ProductRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. The catalog changes rarely, so reads
// are served from cache for the configured TTL.
type CachingProductRepository struct {
	inner     usecase.ProductRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure CachingProductRepository implements ProductRepository.
var _ usecase.ProductRepository = (*CachingProductRepository)(nil)

// NewCachingProductRepository decorates a ProductRepository with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "products".
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository, namespace string) *CachingProductRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "products"
	}
	return &CachingProductRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey returns the cache key for the full active-product list.
func (c *CachingProductRepository) listKey() string {
	return fmt.Sprintf("%s:list", c.namespace)
}

// idKey returns the cache key for a single product.
func (c *CachingProductRepository) idKey(id string) string {
	return fmt.Sprintf("%s:id:%s", c.namespace, id)
}

// ListActive returns the active products, served from cache when possible.
// Cache failures fall through to the underlying repository.
func (c *CachingProductRepository) ListActive(ctx context.Context) ([]entity.Product, error) {
	if c.rdb == nil {
		return c.inner.ListActive(ctx)
	}

	if data, err := c.rdb.Get(ctx, c.listKey()).Bytes(); err == nil {
		var products []entity.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		// Corrupt cache entry; fall through and rebuild it
		slog.Warn("product list cache corrupt, refetching", "key", c.listKey())
	}

	products, err := c.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		if err := c.rdb.Set(ctx, c.listKey(), data, c.ttl).Err(); err != nil {
			slog.Warn("failed to cache product list", "error", err)
		}
	}
	return products, nil
}

// FindByID returns a single product, served from cache when possible.
// Not-found results are not cached; the catalog is small enough that
// negative caching buys nothing.
func (c *CachingProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	if data, err := c.rdb.Get(ctx, c.idKey(id)).Bytes(); err == nil {
		var product entity.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
		slog.Warn("product cache corrupt, refetching", "key", c.idKey(id))
	}

	product, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(product); err == nil {
		if err := c.rdb.Set(ctx, c.idKey(id), data, c.ttl).Err(); err != nil {
			slog.Warn("failed to cache product", "error", err, "id", id)
		}
	}
	return product, nil
}
