package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"globalhub_backend/internal/feature/store/domain/entity"
)

// setupOrderDB creates an in-memory SQLite database for testing.
func setupOrderDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Order{}, &entity.OrderItem{}))
	return db
}

func TestOrderMySQL_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderMySQL(setupOrderDB(t))

	order := &entity.Order{
		OrderNumber: "ord-123",
		UserID:      1,
		Subtotal:    45.00,
		Donation:    6.75,
		Shipping:    5.00,
		Total:       56.75,
		Status:      entity.OrderStatusCompleted,
		Items: []entity.OrderItem{
			{ProductID: "p1", Name: "MSU Hoodie", Price: 10.00, Quantity: 3},
			{ProductID: "p3", Name: "MSU Mug", Price: 15.00, Quantity: 1},
		},
	}
	require.NoError(t, repo.Create(ctx, order))
	assert.NotZero(t, order.ID)

	got, err := repo.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ord-123", got[0].OrderNumber)
	assert.Len(t, got[0].Items, 2)
	assert.Equal(t, "MSU Hoodie", got[0].Items[0].Name)
}

func TestOrderMySQL_ListByUserID(t *testing.T) {
	ctx := context.Background()
	db := setupOrderDB(t)
	repo := NewOrderMySQL(db)

	older := &entity.Order{OrderNumber: "ord-1", UserID: 1, Total: 5.00, Status: entity.OrderStatusCompleted}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer := &entity.Order{OrderNumber: "ord-2", UserID: 1, Total: 56.75, Status: entity.OrderStatusCompleted}
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, &entity.Order{OrderNumber: "ord-3", UserID: 2, Total: 5.00}))

	got, err := repo.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Most recent first
	assert.Equal(t, "ord-2", got[0].OrderNumber)
	assert.Equal(t, "ord-1", got[1].OrderNumber)

	empty, err := repo.ListByUserID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
