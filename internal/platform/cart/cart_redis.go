// Package cart provides the Redis-backed cart store.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"globalhub_backend/internal/feature/store/domain/entity"
	"globalhub_backend/internal/feature/store/usecase"

	"github.com/redis/go-redis/v9"
)

// DefaultCartTTL bounds how long an abandoned cart survives.
const DefaultCartTTL = 7 * 24 * time.Hour

// CartRedis implements usecase.CartRepository using Redis. The whole cart is
// stored as one JSON value per user; every mutation rewrites it synchronously,
// so the last write wins.
type CartRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Compile-time check to ensure CartRedis implements CartRepository.
var _ usecase.CartRepository = (*CartRedis)(nil)

// NewCartRedis creates a new CartRedis instance.
// If ttl is 0, it defaults to DefaultCartTTL.
func NewCartRedis(client *redis.Client, prefix string, ttl time.Duration) *CartRedis {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &CartRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// cartKey returns the Redis key for a user's cart.
func (r *CartRedis) cartKey(userID uint) string {
	return fmt.Sprintf("%s:%d", r.prefix, userID)
}

// Find retrieves the user's cart, or an empty cart when none exists.
func (r *CartRedis) Find(ctx context.Context, userID uint) (*entity.Cart, error) {
	data, err := r.client.Get(ctx, r.cartKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &entity.Cart{UserID: userID}, nil
		}
		return nil, err
	}

	var items []entity.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return &entity.Cart{UserID: userID, Items: items}, nil
}

// Save writes the full cart, refreshing its TTL.
func (r *CartRedis) Save(ctx context.Context, cart *entity.Cart) error {
	data, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	return r.client.Set(ctx, r.cartKey(cart.UserID), data, r.ttl).Err()
}

// Delete removes the user's cart. Absent keys are not an error, so clearing
// an empty cart stays idempotent.
func (r *CartRedis) Delete(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, r.cartKey(userID)).Err()
}
