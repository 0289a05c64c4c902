package usecase

import (
	"context"
	"log/slog"

	"krx_backend/internal/feature/quotes/domain/entity"
)

// ingestMarkets はデータ取得の対象となる市場のリストです。
var ingestMarkets = []string{entity.MarketKRX, entity.MarketKospi, entity.MarketKosdaq}

// MarketDataRepository は指数の日次市況データを取得するリポジトリのインターフェイスです。
// KRX OpenAPIクライアントの実装を抽象化します。
type MarketDataRepository interface {
	IndexDailyTrade(ctx context.Context, market, basDd string) ([]entity.IndexQuote, error)
}

// IngestUsecase は外部APIから指数クオートを取得し、データベースに永続化する
// ユースケースを定義します。
type IngestUsecase struct {
	market MarketDataRepository
	quote  QuoteRepository
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(market MarketDataRepository, quote QuoteRepository) *IngestUsecase {
	return &IngestUsecase{market: market, quote: quote}
}

// ingestOne は指定市場の指定基準日の指数クオートを外部リポジトリから取得し、
// データベースに一括で挿入（または更新）します。
func (iu *IngestUsecase) ingestOne(ctx context.Context, market, basDd string) error {
	qs, err := iu.market.IndexDailyTrade(ctx, market, basDd)
	if err != nil {
		return err
	}
	return iu.quote.UpsertBatch(ctx, qs)
}

// IngestAll は全対象市場（KRX, KOSPI, KOSDAQ）の指定基準日の指数クオートを
// 取得し、データベースに永続化します。リクエスト間のレートリミットは
// KRXクライアント側で適用されます。
func (iu *IngestUsecase) IngestAll(ctx context.Context, basDd string) error {
	for _, m := range ingestMarkets {
		if err := iu.ingestOne(ctx, m, basDd); err != nil {
			// 1つの市場でエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
			slog.Error("failed to ingest index quotes", "market", m, "basDd", basDd, "error", err)
			continue
		}
	}
	return nil
}
