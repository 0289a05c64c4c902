package dto

// QuoteResponse は指数クオート取得APIの1件分のレスポンスです。
type QuoteResponse struct {
	Market    string  `json:"market"`
	IndexName string  `json:"index_name"`
	TradeDate string  `json:"trade_date"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
	Value     float64 `json:"value"`
	FlucRate  float64 `json:"fluc_rate"`
}

// ErrorResponse はエラー時の共通レスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}
