package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	markethandler "krx_backend/internal/feature/marketdata/transport/handler"
	quotehandler "krx_backend/internal/feature/quotes/transport/handler"
	jwtmw "krx_backend/internal/platform/jwt"
)

// NewRouter はAPIの全ルートを設定したginエンジンを返します。
func NewRouter(market *markethandler.MarketHandler, quote *quotehandler.QuoteHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 認証必須のルート
	auth := r.Group("/")
	// リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		// KRX OpenAPIの生データ（型変換済み）をそのまま返すパススルー
		auth.GET("/markets/:endpoint", market.GetDailyHandler)
		// 永続化済みの指数クオート
		auth.GET("/quotes/:index", quote.GetQuotesHandler)
	}

	return r
}
