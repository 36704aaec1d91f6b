package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"globalhub_backend/internal/app/di"
	"globalhub_backend/internal/app/router"
	authadapters "globalhub_backend/internal/feature/auth/adapters"
	authhandler "globalhub_backend/internal/feature/auth/transport/handler"
	authusecase "globalhub_backend/internal/feature/auth/usecase"
	catalogadapters "globalhub_backend/internal/feature/catalog/adapters"
	cataloghandler "globalhub_backend/internal/feature/catalog/transport/handler"
	catalogusecase "globalhub_backend/internal/feature/catalog/usecase"
	"globalhub_backend/internal/feature/outreach/adapters/gemini"
	outreachhandler "globalhub_backend/internal/feature/outreach/transport/handler"
	outreachusecase "globalhub_backend/internal/feature/outreach/usecase"
	storeadapters "globalhub_backend/internal/feature/store/adapters"
	storehandler "globalhub_backend/internal/feature/store/transport/handler"
	storeusecase "globalhub_backend/internal/feature/store/usecase"
	"globalhub_backend/internal/platform/cache"
	infradb "globalhub_backend/internal/platform/db"
	infraredis "globalhub_backend/internal/platform/redis"
	jwtmw "globalhub_backend/internal/platform/jwt"
	"globalhub_backend/internal/shared/ratelimiter"
)

func main() {
	// .env（存在すれば）読み込み
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using environment variables")
	}

	// db
	db := infradb.OpenDB()

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := catalogadapters.SeedCatalog(db); err != nil {
			log.Fatalf("failed to seed catalog: %v", err)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions and carts will be in-process only.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb)
	productRepo := catalogadapters.NewProductRepository(db)
	eventRepo := catalogadapters.NewEventRepository(db)
	jobRepo := catalogadapters.NewJobRepository(db)
	orderRepo := storeadapters.NewOrderMySQL(db)
	cartRepo := di.NewCartRepository(rdb)

	// Redisキャッシュでラップ
	var products catalogusecase.ProductRepository = productRepo
	if rdb != nil {
		products = cache.NewCachingProductRepository(rdb, 10*time.Minute, productRepo, "products")
	}

	// Gemini（利用不可の場合は定型文フォールバックのみ）
	var generator outreachusecase.MessageGenerator
	if g, err := gemini.NewGeminiGenerator(context.Background()); err != nil {
		log.Println("[WARN] Gemini unavailable. Outreach will use canned templates:", err)
	} else {
		generator = g
	}

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen)
	catalogUC := catalogusecase.NewCatalogUsecase(products, eventRepo, jobRepo)
	cartUC := storeusecase.NewCartUsecase(cartRepo, storeadapters.NewCatalogSource(products))
	checkoutUC := storeusecase.NewCheckoutUsecase(cartRepo, orderRepo, nil)
	outreachUC := outreachusecase.NewOutreachUsecase(generator, ratelimiter.NewRateLimiter(30, time.Minute))

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)
	storeH := storehandler.NewCartHandler(cartUC, checkoutUC)
	outreachH := outreachhandler.NewOutreachHandler(outreachUC)

	// ルータ生成
	router := router.NewRouter(authH, catalogH, storeH, outreachH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
