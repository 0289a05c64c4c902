// Package usecase は指数クオート操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"krx_backend/internal/feature/quotes/domain/entity"
)

const (
	// DefaultOutputSize はデフォルトのクオート返却件数です。
	DefaultOutputSize = 30
	// MaxOutputSize はクオートの最大返却件数です。
	MaxOutputSize = 1000
)

// QuoteRepository は指数クオートの永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type QuoteRepository interface {
	// UpsertBatch はクオートを一括で挿入または更新します。
	UpsertBatch(ctx context.Context, quotes []entity.IndexQuote) error
	// Find は指定された指数名のクオートを新しい順に検索します。
	Find(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error)
}

// quotesUsecase は指数クオート参照のユースケースを定義します。
type quotesUsecase struct {
	quote QuoteRepository
}

// NewQuotesUsecase はquotesUsecaseの新しいインスタンスを生成します。
func NewQuotesUsecase(quote QuoteRepository) *quotesUsecase {
	return &quotesUsecase{quote: quote}
}

// GetQuotes は指定された指数名の日次クオートを新しい順に取得します。
func (qu *quotesUsecase) GetQuotes(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error) {
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}

	qs, err := qu.quote.Find(ctx, indexName, outputsize)
	if err != nil {
		return nil, err
	}

	return qs, nil
}
