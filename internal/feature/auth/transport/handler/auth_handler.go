// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"globalhub_backend/internal/feature/auth/domain/entity"
	"globalhub_backend/internal/feature/auth/transport/http/dto"
	"globalhub_backend/internal/feature/auth/usecase"
	jwtmw "globalhub_backend/internal/platform/jwt"
)

// AuthUsecase は認証・セッション操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、プロフィールとJWTトークンを返します。
	Register(ctx context.Context, email, password, firstName, lastName string) (*entity.User, string, error)
	// Login はユーザーを認証し、保存済みプロフィールとJWTトークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// Logout はアクティブセッションを削除します。
	Logout(ctx context.Context, sessionID string) error
	// CurrentUser はアクティブセッションに紐づくユーザーを返します。
	CurrentUser(ctx context.Context, sessionID string) (*entity.User, error)
	// UpdateProfile は部分フィールドをマージしてプロフィールを保存します。
	UpdateProfile(ctx context.Context, sessionID string, update usecase.ProfileUpdate) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は409を返却
// - 成功時は201でプロフィールとトークンを返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateAccount) {
			// フィールドレベルのバリデーションメッセージとしてクライアントに表示される
			c.JSON(http.StatusConflict, gin.H{"error": "account with this email already exists"})
			return
		}
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（メールアドレスの存在有無は公開しない）
// - 認証成功時はプロフィールとJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout はアクティブセッションを削除します。冪等な操作のため常に200を返します。
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(jwtmw.ContextSessionID)
	if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Me は現在ログイン中のユーザーのプロフィールを返します。
func (h *AuthHandler) Me(c *gin.Context) {
	sessionID := c.GetString(jwtmw.ContextSessionID)
	user, err := h.auth.CurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		h.renderSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile はプロフィールの部分更新を処理します。
// - リクエストJSONをUpdateProfileReqにバインド
// - バリデーションエラー時は400を返却
// - セッションなしの場合は401を返却
// - メールアドレス重複時は409を返却
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := c.GetString(jwtmw.ContextSessionID)
	user, err := h.auth.UpdateProfile(c.Request.Context(), sessionID, usecase.ProfileUpdate{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Campus:         req.Campus,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
		PhoneNumber:    req.PhoneNumber,
		Bio:            req.Bio,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, gin.H{"error": "account with this email already exists"})
			return
		}
		h.renderSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// renderSessionError はセッション関連エラーをHTTPステータスに変換します。
// ErrNoActiveSessionは呼び出し側の契約違反だが、HTTP上は401として表面化させます。
func (h *AuthHandler) renderSessionError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrNoActiveSession) || errors.Is(err, usecase.ErrUserNotFound) {
		slog.Warn("request without active session", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	slog.Error("auth request failed", "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
