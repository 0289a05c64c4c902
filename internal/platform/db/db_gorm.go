package db

import (
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	quoteadapters "krx_backend/internal/feature/quotes/adapters"
)

// OpenDB はデータベース接続を確立して返します。
// DATABASE_URL が設定されていればPostgreSQL、未設定であればローカルの
// SQLiteファイル（KRX_SQLITE_PATH、デフォルト krx.db）を使用します。
func OpenDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")

	open := func() (*gorm.DB, error) {
		if dsn != "" {
			return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		}
		path := os.Getenv("KRX_SQLITE_PATH")
		if path == "" {
			path = "krx.db"
		}
		return gorm.Open(gsqlite.Open(path), &gorm.Config{})
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = open()
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
		// マイグレーション（IndexQuote）
		if err := db.AutoMigrate(
			&quoteadapters.IndexQuoteModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
