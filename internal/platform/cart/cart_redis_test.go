package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalhub_backend/internal/feature/store/domain/entity"
)

// setupTestRedis starts a miniredis instance and returns a client bound to it.
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCartRedis_FindAbsent(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	repo := NewCartRedis(client, "cart", 0)

	cart, err := repo.Find(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestCartRedis_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	repo := NewCartRedis(client, "cart", 0)

	cart := &entity.Cart{UserID: 1, Items: []entity.CartItem{
		{Product: entity.Product{ID: "p1", Name: "MSU Hoodie", Price: 10.00, Category: "Apparel"}, Quantity: 3},
		{Product: entity.Product{ID: "p2", Name: "MSU Cap", Price: 10.00, Category: "Apparel"}, Quantity: 1},
	}}
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Find(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	// Insertion order survives the round trip
	assert.Equal(t, "p1", got.Items[0].Product.ID)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.Equal(t, 10.00, got.Items[0].Product.Price)

	// Abandoned carts expire eventually
	ttl := mr.TTL("cart:1")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, DefaultCartTTL)
}

func TestCartRedis_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	repo := NewCartRedis(client, "cart", 0)

	require.NoError(t, repo.Save(ctx, &entity.Cart{UserID: 1, Items: []entity.CartItem{
		{Product: entity.Product{ID: "p1", Price: 10.00}, Quantity: 5},
	}}))
	require.NoError(t, repo.Save(ctx, &entity.Cart{UserID: 1, Items: []entity.CartItem{
		{Product: entity.Product{ID: "p2", Price: 15.00}, Quantity: 1},
	}}))

	got, err := repo.Find(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p2", got.Items[0].Product.ID)
}

func TestCartRedis_Delete(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	repo := NewCartRedis(client, "cart", 0)

	require.NoError(t, repo.Save(ctx, &entity.Cart{UserID: 1, Items: []entity.CartItem{
		{Product: entity.Product{ID: "p1", Price: 10.00}, Quantity: 1},
	}}))

	require.NoError(t, repo.Delete(ctx, 1))
	cart, err := repo.Find(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Deleting an absent cart is not an error
	require.NoError(t, repo.Delete(ctx, 1))
}
