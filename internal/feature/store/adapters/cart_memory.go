// Package adapters provides repository implementations for the store feature.
package adapters

import (
	"context"
	"sync"

	"globalhub_backend/internal/feature/store/domain/entity"
	"globalhub_backend/internal/feature/store/usecase"
)

// cartMemory is an in-memory implementation of the CartRepository interface.
// It backs tests and serves as the fallback when Redis is unavailable;
// carts then live only as long as the process.
type cartMemory struct {
	mu    sync.RWMutex
	carts map[uint][]entity.CartItem
}

// Compile-time check to ensure cartMemory implements CartRepository.
var _ usecase.CartRepository = (*cartMemory)(nil)

// NewCartMemory creates a new instance of cartMemory.
func NewCartMemory() *cartMemory {
	return &cartMemory{carts: map[uint][]entity.CartItem{}}
}

// Find returns the user's cart, or an empty cart when none exists.
func (r *cartMemory) Find(ctx context.Context, userID uint) (*entity.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]entity.CartItem, len(r.carts[userID]))
	copy(items, r.carts[userID])
	return &entity.Cart{UserID: userID, Items: items}, nil
}

// Save stores the full cart, replacing any previous contents.
func (r *cartMemory) Save(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]entity.CartItem, len(cart.Items))
	copy(items, cart.Items)
	r.carts[cart.UserID] = items
	return nil
}

// Delete empties the user's cart. Deleting an absent cart is a no-op.
func (r *cartMemory) Delete(ctx context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}
