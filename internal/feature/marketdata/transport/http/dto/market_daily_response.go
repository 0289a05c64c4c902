package dto

// MarketDailyResponse は日次市場データ取得APIのレスポンスです。
type MarketDailyResponse struct {
	Endpoint string           `json:"endpoint"`
	Name     string           `json:"name"`
	BasDd    string           `json:"bas_dd"`
	Records  []map[string]any `json:"records"`
}

// ErrorResponse はエラー時の共通レスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}
