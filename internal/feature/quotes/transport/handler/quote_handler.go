// Package handler はquotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"krx_backend/internal/feature/quotes/domain/entity"
	"krx_backend/internal/feature/quotes/transport/http/dto"
)

// QuotesUsecase は指数クオート操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuotesUsecase interface {
	GetQuotes(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error)
}

// QuoteHandler は指数クオートのHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuotesUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuotesUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuotesHandler は指数名を受け取り、日次クオートを新しい順にJSONで返します。
//
// エンドポイント例:
// GET /quotes/KOSPI?outputsize=30
func (h *QuoteHandler) GetQuotesHandler(c *gin.Context) {
	indexName := c.Param("index")
	// 未指定の場合はデフォルト値を使用
	outputsizeStr := c.DefaultQuery("outputsize", "30")
	// 文字列を整数に変換（失敗時は0となりusecase側でデフォルトが適用される）
	outputsize, _ := strconv.Atoi(outputsizeStr)

	quotes, err := h.uc.GetQuotes(c.Request.Context(), indexName, outputsize)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := make([]dto.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, dto.QuoteResponse{
			Market:    q.Market,
			IndexName: q.IndexName,
			TradeDate: q.TradeDate.UTC().Format("2006-01-02"),
			Open:      q.Open,
			High:      q.High,
			Low:       q.Low,
			Close:     q.Close,
			Volume:    q.Volume,
			Value:     q.Value,
			FlucRate:  q.FlucRate,
		})
	}
	c.JSON(http.StatusOK, out)
}
