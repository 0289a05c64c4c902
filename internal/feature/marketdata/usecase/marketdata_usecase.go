// Package usecase implements the business logic for the marketdata feature.
package usecase

import (
	"context"
	"log/slog"
)

// MarketRepository は日次市場データを取得するリポジトリのインターフェイスです。
// KRX OpenAPIクライアントの実装を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase)側で定義します。
type MarketRepository interface {
	Daily(ctx context.Context, endpoint, basDd string) ([]map[string]any, error)
}

// MarketDataUsecase は日次市場データの取得ユースケースを定義します。
type MarketDataUsecase struct {
	market MarketRepository
}

// NewMarketDataUsecase は新しい MarketDataUsecase を作成します。
func NewMarketDataUsecase(market MarketRepository) *MarketDataUsecase {
	return &MarketDataUsecase{market: market}
}

// GetDaily は指定エンドポイントの指定基準日のデータを型変換済みで返します。
func (u *MarketDataUsecase) GetDaily(ctx context.Context, endpoint, basDd string) ([]map[string]any, error) {
	records, err := u.market.Daily(ctx, endpoint, basDd)
	if err != nil {
		slog.Error("failed to fetch daily market data", "endpoint", endpoint, "basDd", basDd, "error", err)
		return nil, err
	}
	return records, nil
}
