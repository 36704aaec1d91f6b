package di

import (
	storeadapters "globalhub_backend/internal/feature/store/adapters"
	"globalhub_backend/internal/feature/store/usecase"
	"globalhub_backend/internal/platform/cart"

	"github.com/redis/go-redis/v9"
)

// NewCartRepository creates a CartRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to an in-process store.
func NewCartRepository(rdb *redis.Client) usecase.CartRepository {
	if rdb != nil {
		return cart.NewCartRedis(rdb, "cart", 0)
	}
	return storeadapters.NewCartMemory()
}
