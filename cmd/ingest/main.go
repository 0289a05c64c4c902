package main

import (
	"context"
	"log"
	"os"
	"time"

	"krx_backend/internal/feature/marketdata/adapters/krx"
	"krx_backend/internal/feature/quotes/adapters"
	"krx_backend/internal/feature/quotes/adapters/krxquotes"
	"krx_backend/internal/feature/quotes/usecase"
	"krx_backend/internal/platform/db"
	infrahttp "krx_backend/internal/platform/http"
	"krx_backend/internal/shared/ratelimiter"
)

func main() {
	// 基準日は引数で指定、未指定なら前日（韓国時間）
	basDd := baseDate(os.Args)

	gdb := db.OpenDB()

	cfg := krx.LoadConfig()
	if cfg.APIKey == "" {
		log.Fatal("KRX_OPENAPI_KEY is not set")
	}
	limiter, err := ratelimiter.NewRateLimiter(cfg.RateLimit, cfg.RatePeriod)
	if err != nil {
		log.Fatal(err)
	}

	krxClient := krx.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout), limiter)
	marketRepo := krxquotes.NewMarket(krxClient)
	quoteRepo := adapters.NewQuoteRepository(gdb)
	uc := usecase.NewIngestUsecase(marketRepo, quoteRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := uc.IngestAll(ctx, basDd); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok:", basDd)
}

// baseDate は第1引数をYYYYMMDDの基準日として返します。
// 引数がない場合は韓国時間の前日を使用します。
func baseDate(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	loc, _ := time.LoadLocation("Asia/Seoul")
	return time.Now().In(loc).AddDate(0, 0, -1).Format("20060102")
}
