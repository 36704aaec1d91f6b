// Package handler はoutreachフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"globalhub_backend/internal/feature/outreach/transport/http/dto"
)

// OutreachUsecase はコンタクト文生成のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler)が定義します。
type OutreachUsecase interface {
	GenerateMessage(ctx context.Context, alumniName, role, company string) (string, error)
}

// OutreachHandler はコンタクト文生成のHTTPリクエストを処理します。
type OutreachHandler struct {
	uc OutreachUsecase
}

// NewOutreachHandler はOutreachHandlerの新しいインスタンスを生成します。
func NewOutreachHandler(uc OutreachUsecase) *OutreachHandler {
	return &OutreachHandler{uc: uc}
}

// Generate は卒業生向けコンタクト文を生成するAPIです。
// 生成失敗時はユースケース側で定型文に縮退するため、ここでのエラーは
// バリデーション起因のみです。
func (h *OutreachHandler) Generate(c *gin.Context) {
	var req dto.OutreachReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.uc.GenerateMessage(c.Request.Context(), req.AlumniName, req.Role, req.Company)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
