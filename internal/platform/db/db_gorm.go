package db

import (
	"fmt"
	"log"
	"os"
	"time"

	authentity "globalhub_backend/internal/feature/auth/domain/entity"
	catalogentity "globalhub_backend/internal/feature/catalog/domain/entity"
	storeentity "globalhub_backend/internal/feature/store/domain/entity"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDB opens the GORM connection using DB_* environment variables.
// DB_DRIVER selects the dialect: "mysql" (default) or "postgres".
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	var dialector gorm.Dialector
	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			host, user, pass, name, port)
		dialector = gpostgres.Open(dsn)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			user, pass, host, port, name)
		dialector = gmysql.Open(dsn)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, カタログ, 注文）
		if err := db.AutoMigrate(
			&authentity.User{},
			&catalogentity.Product{},
			&catalogentity.Event{},
			&catalogentity.Job{},
			&storeentity.Order{},
			&storeentity.OrderItem{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
