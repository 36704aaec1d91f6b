// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"globalhub_backend/internal/feature/catalog/domain/entity"

	"github.com/gin-gonic/gin"
)

// CatalogUsecase はカタログ参照に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	ListEvents(ctx context.Context) ([]entity.Event, error)
	ListJobs(ctx context.Context) ([]entity.Job, error)
}

// CatalogHandler はカタログ参照のHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は新しい CatalogHandler を作成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts はアクティブな商品の一覧を取得するAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListEvents はアクティブなイベントの一覧を取得するAPIです。
func (h *CatalogHandler) ListEvents(c *gin.Context) {
	events, err := h.uc.ListEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListJobs はアクティブな求人の一覧を取得するAPIです。
func (h *CatalogHandler) ListJobs(c *gin.Context) {
	jobs, err := h.uc.ListJobs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}
