package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"krx_backend/internal/app/router"
	"krx_backend/internal/feature/marketdata/adapters/krx"
	marketusecase "krx_backend/internal/feature/marketdata/usecase"
	markethandler "krx_backend/internal/feature/marketdata/transport/handler"
	quoteadapters "krx_backend/internal/feature/quotes/adapters"
	quotehandler "krx_backend/internal/feature/quotes/transport/handler"
	quotesusecase "krx_backend/internal/feature/quotes/usecase"
	"krx_backend/internal/platform/cache"
	infradb "krx_backend/internal/platform/db"
	infrahttp "krx_backend/internal/platform/http"
	infraredis "krx_backend/internal/platform/redis"
	"krx_backend/internal/shared/ratelimiter"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// KRX OpenAPIクライアント
	krxCfg := krx.LoadConfig()
	if krxCfg.APIKey == "" {
		log.Println("[WARN] KRX_OPENAPI_KEY is not set. Live market endpoints will fail.")
	}
	limiter, err := ratelimiter.NewRateLimiter(krxCfg.RateLimit, krxCfg.RatePeriod)
	if err != nil {
		log.Fatal(err)
	}
	krxClient := krx.NewClient(krxCfg, infrahttp.NewHTTPClient(krxCfg.Timeout), limiter)

	// Repository
	quoteRepo := quoteadapters.NewQuoteRepository(db)

	// Redisキャッシュでラップ
	ttl := cache.TimeUntilNext8AM()
	cachedQuoteRepo := cache.NewCachingQuoteRepository(rdb, ttl, quoteRepo, "quotes")

	// Usecase
	marketUC := marketusecase.NewMarketDataUsecase(krxClient)
	quotesUC := quotesusecase.NewQuotesUsecase(cachedQuoteRepo)

	// Handler
	marketH := markethandler.NewMarketHandler(marketUC)
	quoteH := quotehandler.NewQuoteHandler(quotesUC)

	// ルータ生成
	router := router.NewRouter(marketH, quoteH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
