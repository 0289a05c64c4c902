// Package handler はmarketdataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"krx_backend/internal/feature/marketdata/adapters/krx"
	"krx_backend/internal/feature/marketdata/domain"
	"krx_backend/internal/feature/marketdata/transport/http/dto"
)

// MarketDataUsecase は日次市場データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketDataUsecase interface {
	GetDaily(ctx context.Context, endpoint, basDd string) ([]map[string]any, error)
}

// MarketHandler は日次市場データのHTTPリクエストを処理します。
type MarketHandler struct {
	uc MarketDataUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc MarketDataUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// GetDailyHandler はエンドポイント名と基準日を受け取り、型変換済みの
// 日次市場データをJSONで返します。
//
// エンドポイント例:
// GET /markets/kospi_dd_trd?date=20240101
func (h *MarketHandler) GetDailyHandler(c *gin.Context) {
	endpoint := c.Param("endpoint")

	// カタログに存在しないエンドポイントは404
	ep, ok := krx.Endpoints[endpoint]
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "unknown endpoint: " + endpoint})
		return
	}

	basDd := c.Query("date")

	records, err := h.uc.GetDaily(c.Request.Context(), endpoint, basDd)
	if err != nil {
		// 日付不正はクライアント側の誤り、それ以外は上流障害として扱う
		if errors.Is(err, domain.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MarketDailyResponse{
		Endpoint: endpoint,
		Name:     ep.Name,
		BasDd:    basDd,
		Records:  records,
	})
}
