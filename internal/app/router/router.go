package router

import (
	"os"
	"strings"

	authhandler "globalhub_backend/internal/feature/auth/transport/handler"
	cataloghandler "globalhub_backend/internal/feature/catalog/transport/handler"
	outreachhandler "globalhub_backend/internal/feature/outreach/transport/handler"
	storehandler "globalhub_backend/internal/feature/store/transport/handler"
	"globalhub_backend/internal/platform/http/handler"
	jwtmw "globalhub_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(auth *authhandler.AuthHandler, catalog *cataloghandler.CatalogHandler,
	store *storehandler.CartHandler, outreach *outreachhandler.OutreachHandler) *gin.Engine {
	r := gin.Default()

	// SPAクライアント向けCORS設定（CORS_ORIGINSはカンマ区切り）
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)
	// カタログ参照（商品・イベント・求人）
	r.GET("/products", catalog.ListProducts)
	r.GET("/events", catalog.ListEvents)
	r.GET("/jobs", catalog.ListJobs)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	authGroup := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	authGroup.Use(jwtmw.AuthRequired())
	{
		authGroup.POST("/logout", auth.Logout)
		authGroup.GET("/me", auth.Me)
		authGroup.PATCH("/me", auth.UpdateProfile)

		authGroup.GET("/cart", store.Get)
		authGroup.POST("/cart/items", store.AddItem)
		authGroup.PATCH("/cart/items/:productId", store.UpdateQuantity)
		authGroup.DELETE("/cart", store.Clear)
		authGroup.POST("/checkout", store.Checkout)
		authGroup.GET("/orders", store.Orders)

		authGroup.POST("/outreach", outreach.Generate)
	}

	return r
}
