// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"globalhub_backend/internal/feature/catalog/domain/entity"
	"globalhub_backend/internal/feature/catalog/usecase"

	"gorm.io/gorm"
)

// productMySQL はProductRepositoryインターフェースのMySQL実装です。
type productMySQL struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productMySQL)(nil)

// NewProductRepository は指定されたDB接続でproductMySQLリポジトリの新しいインスタンスを生成します。
func NewProductRepository(db *gorm.DB) *productMySQL {
	return &productMySQL{db: db}
}

// ListActive はsort_key順にすべてのアクティブな商品を返します。
func (r *productMySQL) ListActive(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID はIDでアクティブな商品を取得します。
// 商品が存在しない場合、usecase.ErrProductNotFoundを返します。
func (r *productMySQL) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// eventMySQL はEventRepositoryインターフェースのMySQL実装です。
type eventMySQL struct {
	db *gorm.DB
}

var _ usecase.EventRepository = (*eventMySQL)(nil)

// NewEventRepository は指定されたDB接続でeventMySQLリポジトリの新しいインスタンスを生成します。
func NewEventRepository(db *gorm.DB) *eventMySQL {
	return &eventMySQL{db: db}
}

// ListActive はsort_key順にすべてのアクティブなイベントを返します。
func (r *eventMySQL) ListActive(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// jobMySQL はJobRepositoryインターフェースのMySQL実装です。
type jobMySQL struct {
	db *gorm.DB
}

var _ usecase.JobRepository = (*jobMySQL)(nil)

// NewJobRepository は指定されたDB接続でjobMySQLリポジトリの新しいインスタンスを生成します。
func NewJobRepository(db *gorm.DB) *jobMySQL {
	return &jobMySQL{db: db}
}

// ListActive はsort_key順にすべてのアクティブな求人を返します。
func (r *jobMySQL) ListActive(ctx context.Context) ([]entity.Job, error) {
	var jobs []entity.Job
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
