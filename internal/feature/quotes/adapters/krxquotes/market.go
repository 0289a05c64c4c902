// Package krxquotes adapts the KRX OpenAPI client to the quotes feature,
// mapping converted index records onto IndexQuote entities.
package krxquotes

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"krx_backend/internal/feature/quotes/domain/entity"
	"krx_backend/internal/feature/quotes/usecase"
)

// IndexAPI は指数系エンドポイントのうち、このアダプタが利用する操作です。
type IndexAPI interface {
	GetKRXDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error)
	GetKospiDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error)
	GetKosdaqDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error)
}

// Market はKRX OpenAPIから指数クオートを取得するMarketDataRepository実装です。
type Market struct {
	api IndexAPI
}

// MarketがMarketDataRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketDataRepository = (*Market)(nil)

// NewMarket は指定されたKRXクライアントでMarketの新しいインスタンスを生成します。
func NewMarket(api IndexAPI) *Market {
	return &Market{api: api}
}

// IndexDailyTrade は指定市場の指数日次市況を取得し、IndexQuoteのスライスとして返します。
func (m *Market) IndexDailyTrade(ctx context.Context, market, basDd string) ([]entity.IndexQuote, error) {
	var (
		records []map[string]any
		err     error
	)
	switch market {
	case entity.MarketKRX:
		records, err = m.api.GetKRXDailyTrade(ctx, basDd)
	case entity.MarketKospi:
		records, err = m.api.GetKospiDailyTrade(ctx, basDd)
	case entity.MarketKosdaq:
		records, err = m.api.GetKosdaqDailyTrade(ctx, basDd)
	default:
		return nil, fmt.Errorf("unknown market %q", market)
	}
	if err != nil {
		return nil, err
	}

	quotes := make([]entity.IndexQuote, 0, len(records))
	for _, rec := range records {
		date, ok := asTime(rec["BAS_DD"])
		if !ok {
			// 基準日のないレコードは永続化できないためスキップ
			slog.Warn("skipping index record without base date", "market", market, "record", rec["IDX_NM"])
			continue
		}
		name := asString(rec["IDX_NM"])
		if name == "" {
			slog.Warn("skipping index record without index name", "market", market, "basDd", basDd)
			continue
		}

		quotes = append(quotes, entity.IndexQuote{
			Market:    market,
			IndexName: name,
			TradeDate: date,
			Open:      asFloat(rec["OPNPRC_IDX"]),
			High:      asFloat(rec["HGPRC_IDX"]),
			Low:       asFloat(rec["LWPRC_IDX"]),
			Close:     asFloat(rec["CLSPRC_IDX"]),
			Volume:    asInt(rec["ACC_TRDVOL"]),
			Value:     asFloat(rec["ACC_TRDVAL"]),
			FlucRate:  asFloat(rec["FLUC_RT"]),
		})
	}
	return quotes, nil
}

// 以下のヘルパーは変換済みレコードの値を取り出します。変換レイヤーは
// 欠損値を nil、パース不能値を文字列のまま返すため、期待と異なる型は
// ゼロ値として扱います。

func asTime(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	}
	return 0
}

func asInt(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case float64:
		return int64(x)
	}
	return 0
}
