package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"krx_backend/internal/feature/quotes/domain/entity"
	"krx_backend/internal/feature/quotes/transport/handler"
)

// mockQuotesUsecase はQuotesUsecaseインターフェースのモック実装です。
type mockQuotesUsecase struct {
	GetQuotesFunc func(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error)
}

func (m *mockQuotesUsecase) GetQuotes(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error) {
	return m.GetQuotesFunc(ctx, indexName, outputsize)
}

// TestQuoteHandler_GetQuotesHandler はGetQuotesHandlerのHTTPリクエスト/レスポンス処理をテストします。
func TestQuoteHandler_GetQuotesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDate := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockGetQuotes  func(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error)
		expectedStatus int
		expectedBody   string // JSON文字列として比較
	}{
		{
			name: "success: all parameters specified",
			url:  "/quotes/KOSPI?outputsize=10",
			mockGetQuotes: func(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error) {
				assert.Equal(t, "KOSPI", indexName)
				assert.Equal(t, 10, outputsize)
				return []entity.IndexQuote{
					{Market: "kospi", IndexName: "KOSPI", TradeDate: testDate, Open: 2650, High: 2670, Low: 2640, Close: 2655.28, Volume: 320482000, Value: 8.5, FlucRate: -0.55},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"market":"kospi","index_name":"KOSPI","trade_date":"2024-01-02","open":2650,"high":2670,"low":2640,"close":2655.28,"volume":320482000,"value":8.5,"fluc_rate":-0.55}]`,
		},
		{
			name: "success: default outputsize",
			url:  "/quotes/KOSDAQ",
			mockGetQuotes: func(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error) {
				assert.Equal(t, "KOSDAQ", indexName)
				assert.Equal(t, 30, outputsize) // デフォルト値
				return []entity.IndexQuote{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "error: usecase returns error",
			url:  "/quotes/KOSPI",
			mockGetQuotes: func(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error) {
				return nil, errors.New("db unavailable")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"db unavailable"}`,
		},
		{
			name: "edge case: invalid outputsize string is passed as zero",
			url:  "/quotes/KOSPI?outputsize=invalid",
			mockGetQuotes: func(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error) {
				// デフォルト値への変換はusecaseレイヤーで処理される
				assert.Equal(t, 0, outputsize)
				return []entity.IndexQuote{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockQuotesUsecase{GetQuotesFunc: tt.mockGetQuotes}
			h := handler.NewQuoteHandler(uc)

			r := gin.New()
			r.GET("/quotes/:index", h.GetQuotesHandler)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
