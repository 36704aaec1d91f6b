// Package usecase はstoreフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"globalhub_backend/internal/feature/store/domain/entity"
)

// CartRepository はカートのキーバリュー永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CartRepository interface {
	// Find は指定ユーザーのカートを取得します。
	// カートが存在しない場合は空のカートを返します（エラーにはなりません）。
	Find(ctx context.Context, userID uint) (*entity.Cart, error)

	// Save はカート全体を同期的に書き込みます。最後の書き込みが優先されます。
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete はカートを削除します。存在しないカートの削除はエラーになりません。
	Delete(ctx context.Context, userID uint) error
}

// ProductCatalog はカタログ側の商品参照を抽象化します。
// 商品が存在しない場合、ErrProductNotFoundを返します。
type ProductCatalog interface {
	FindByID(ctx context.Context, id string) (*entity.Product, error)
}

// CartUsecase はカート操作のビジネスロジックを提供します。
type CartUsecase struct {
	carts   CartRepository
	catalog ProductCatalog
}

// NewCartUsecase はCartUsecaseの新しいインスタンスを生成します。
func NewCartUsecase(carts CartRepository, catalog ProductCatalog) *CartUsecase {
	return &CartUsecase{carts: carts, catalog: catalog}
}

// Get は現在のカートを返します。カートが無い場合は空のカートです。
func (u *CartUsecase) Get(ctx context.Context, userID uint) (*entity.Cart, error) {
	return u.carts.Find(ctx, userID)
}

// Add は商品を1個カートに追加します。既存アイテムは数量+1、新規は数量1で追加されます。
// 商品が存在しない場合、ErrProductNotFoundを返します。
func (u *CartUsecase) Add(ctx context.Context, userID uint, productID string) (*entity.Cart, error) {
	product, err := u.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := u.carts.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Add(*product)

	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity はアイテムの数量をdeltaだけ増減します。
// 数量が0になったアイテムはカートから取り除かれます。
// 存在しないproductIDの指定は何もしません（no-op）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID uint, productID string, delta int) (*entity.Cart, error) {
	cart, err := u.carts.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.ApplyDelta(productID, delta)

	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear はカートを無条件で空にします。空のカートに対しても冪等に成功します。
func (u *CartUsecase) Clear(ctx context.Context, userID uint) error {
	return u.carts.Delete(ctx, userID)
}
