// Package handler はstoreフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"globalhub_backend/internal/feature/store/domain/entity"
	"globalhub_backend/internal/feature/store/transport/http/dto"
	"globalhub_backend/internal/feature/store/usecase"
	jwtmw "globalhub_backend/internal/platform/jwt"
)

// CartUsecase はカート操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CartUsecase interface {
	Get(ctx context.Context, userID uint) (*entity.Cart, error)
	Add(ctx context.Context, userID uint, productID string) (*entity.Cart, error)
	UpdateQuantity(ctx context.Context, userID uint, productID string, delta int) (*entity.Cart, error)
	Clear(ctx context.Context, userID uint) error
}

// CheckoutUsecase はチェックアウト操作のユースケースを定義します。
type CheckoutUsecase interface {
	Checkout(ctx context.Context, userID uint) (*entity.Order, error)
	Orders(ctx context.Context, userID uint) ([]entity.Order, error)
}

// CartHandler はカートとチェックアウトのHTTPリクエストを処理します。
type CartHandler struct {
	cart     CartUsecase
	checkout CheckoutUsecase
}

// NewCartHandler はCartHandlerの新しいインスタンスを生成します。
func NewCartHandler(cart CartUsecase, checkout CheckoutUsecase) *CartHandler {
	return &CartHandler{cart: cart, checkout: checkout}
}

// Get は現在のカートと表示用合計を返します。
func (h *CartHandler) Get(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	cart, err := h.cart.Get(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to load cart", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "totals": dto.NewTotalsRes(cart.Totals())})
}

// AddItem は商品をカートに追加するAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 商品が存在しない場合は404を返却
// - 成功時は200で更新後のカートを返却
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	cart, err := h.cart.Add(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		slog.Error("failed to add cart item", "error", err, "user_id", userID, "product_id", req.ProductID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "totals": dto.NewTotalsRes(cart.Totals())})
}

// UpdateQuantity はアイテム数量の増減APIエンドポイントを処理します。
// 数量が0になったアイテムは取り除かれ、未知のproductIdはno-opです。
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req dto.UpdateQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	productID := c.Param("productId")
	cart, err := h.cart.UpdateQuantity(c.Request.Context(), userID, productID, req.Delta)
	if err != nil {
		slog.Error("failed to update cart item", "error", err, "user_id", userID, "product_id", productID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "totals": dto.NewTotalsRes(cart.Totals())})
}

// Clear はカートを空にします。冪等な操作のため常に200を返します。
func (h *CartHandler) Clear(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if err := h.cart.Clear(c.Request.Context(), userID); err != nil {
		slog.Error("failed to clear cart", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Checkout はチェックアウト遷移を実行し、完了した注文を返します。
// 処理遅延を含むため、このエンドポイントは他より応答が遅くなります。
func (h *CartHandler) Checkout(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	order, err := h.checkout.Checkout(c.Request.Context(), userID)
	if err != nil {
		slog.Error("checkout failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// Orders は注文履歴を返します。
func (h *CartHandler) Orders(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	orders, err := h.checkout.Orders(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list orders", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
