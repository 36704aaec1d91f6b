package adapters

import (
	"context"

	"globalhub_backend/internal/feature/store/domain/entity"
	"globalhub_backend/internal/feature/store/usecase"

	"gorm.io/gorm"
)

// orderMySQL はOrderRepositoryインターフェースのMySQL実装です。
type orderMySQL struct {
	db *gorm.DB
}

// orderMySQLがOrderRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.OrderRepository = (*orderMySQL)(nil)

// NewOrderMySQL は指定されたgorm.DB接続でorderMySQLの新しいインスタンスを生成します。
func NewOrderMySQL(db *gorm.DB) *orderMySQL {
	return &orderMySQL{db: db}
}

// Create は注文と注文アイテムをまとめて永続化します。
func (r *orderMySQL) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// ListByUserID は指定ユーザーの注文を新しい順に返します。
func (r *orderMySQL) ListByUserID(ctx context.Context, userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
