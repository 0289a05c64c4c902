package krx

import "context"

// API categories.
const (
	CategoryIDX = "idx" // 지수 (indices)
	CategorySTO = "sto" // 주식 (stocks)
	CategoryETP = "etp" // 증권상품 (exchange traded products)
	CategoryBON = "bon" // 채권 (bonds)
	CategoryDRV = "drv" // 파생상품 (derivatives)
	CategoryGEN = "gen" // 일반상품 (general commodities)
	CategoryESG = "esg" // ESG
)

// Endpoint はカタログ上の1エンドポイントのメタデータです。
type Endpoint struct {
	Category string // APIカテゴリ（URLパスの第1要素）
	Name     string // KRX公式の韓国語名称
}

// Endpoints は全31エンドポイントのカタログです。
// キーはURLパスの第2要素（エンドポイントパス）です。
var Endpoints = map[string]Endpoint{
	// 지수 (idx)
	"krx_dd_trd":     {CategoryIDX, "KRX 시리즈 일별시세정보"},
	"kospi_dd_trd":   {CategoryIDX, "KOSPI 시리즈 일별시세정보"},
	"kosdaq_dd_trd":  {CategoryIDX, "KOSDAQ 시리즈 일별시세정보"},
	"bon_dd_trd":     {CategoryIDX, "채권지수 시세정보"},
	"drvprod_dd_trd": {CategoryIDX, "파생상품지수 시세정보"},

	// 주식 (sto)
	"stk_bydd_trd":      {CategorySTO, "유가증권 일별매매정보"},
	"ksq_bydd_trd":      {CategorySTO, "코스닥 일별매매정보"},
	"knx_bydd_trd":      {CategorySTO, "코넥스 일별매매정보"},
	"sw_bydd_trd":       {CategorySTO, "신주인수권증권 일별매매정보"},
	"sr_bydd_trd":       {CategorySTO, "신주인수권증서 일별매매정보"},
	"stk_isu_base_info": {CategorySTO, "유가증권 종목기본정보"},
	"ksq_isu_base_info": {CategorySTO, "코스닥 종목기본정보"},
	"knx_isu_base_info": {CategorySTO, "코넥스 종목기본정보"},

	// ETP (etp)
	"etf_bydd_trd": {CategoryETP, "ETF 일별매매정보"},
	"etn_bydd_trd": {CategoryETP, "ETN 일별매매정보"},
	"elw_bydd_trd": {CategoryETP, "ELW 일별매매정보"},

	// 채권 (bon)
	"kts_bydd_trd": {CategoryBON, "국채전문유통시장 일별매매정보"},
	"bnd_bydd_trd": {CategoryBON, "일반채권시장 일별매매정보"},
	"smb_bydd_trd": {CategoryBON, "소액채권시장 일별매매정보"},

	// 파생상품 (drv)
	"fut_bydd_trd":       {CategoryDRV, "선물 일별매매정보 (주식선물外)"},
	"eqsfu_stk_bydd_trd": {CategoryDRV, "주식선물(유가) 일별매매정보"},
	"eqkfu_ksq_bydd_trd": {CategoryDRV, "주식선물(코스닥) 일별매매정보"},
	"opt_bydd_trd":       {CategoryDRV, "옵션 일별매매정보 (주식옵션外)"},
	"eqsop_bydd_trd":     {CategoryDRV, "주식옵션(유가) 일별매매정보"},
	"eqkop_bydd_trd":     {CategoryDRV, "주식옵션(코스닥) 일별매매정보"},

	// 일반상품 (gen)
	"oil_bydd_trd":  {CategoryGEN, "석유시장 일별매매정보"},
	"gold_bydd_trd": {CategoryGEN, "금시장 일별매매정보"},
	"ets_bydd_trd":  {CategoryGEN, "배출권 시장 일별매매정보"},

	// ESG (esg)
	"sri_bond_info":  {CategoryESG, "사회책임투자채권 정보"},
	"esg_etp_info":   {CategoryESG, "ESG 증권상품"},
	"esg_index_info": {CategoryESG, "ESG 지수"},
}

// ==================== 지수 (idx) ====================

// GetKRXDailyTrade はKRXシリーズの日別市況情報を取得します。
func (c *Client) GetKRXDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryIDX, "krx_dd_trd", basDd)
}

// GetKospiDailyTrade はKOSPIシリーズの日別市況情報を取得します。
func (c *Client) GetKospiDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryIDX, "kospi_dd_trd", basDd)
}

// GetKosdaqDailyTrade はKOSDAQシリーズの日別市況情報を取得します。
func (c *Client) GetKosdaqDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryIDX, "kosdaq_dd_trd", basDd)
}

// GetBondIndexDailyTrade は債券指数の市況情報を取得します。
func (c *Client) GetBondIndexDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryIDX, "bon_dd_trd", basDd)
}

// GetDerivativeIndexDailyTrade はデリバティブ指数の市況情報を取得します。
func (c *Client) GetDerivativeIndexDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryIDX, "drvprod_dd_trd", basDd)
}

// ==================== 주식 (sto) ====================

// GetStockDailyTrade は有価証券の日別売買情報を取得します。
func (c *Client) GetStockDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategorySTO, "stk_bydd_trd", basDd)
}

// GetKosdaqStockDailyTrade はKOSDAQの日別売買情報を取得します。
func (c *Client) GetKosdaqStockDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategorySTO, "ksq_bydd_trd", basDd)
}

// GetKonexDailyTrade はKONEXの日別売買情報を取得します。
func (c *Client) GetKonexDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategorySTO, "knx_bydd_trd", basDd)
}

// GetStockWarrantDailyTrade は新株引受権証券の日別売買情報を取得します。
func (c *Client) GetStockWarrantDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategorySTO, "sw_bydd_trd", basDd)
}

// GetSubscriptionRightDailyTrade は新株引受権証書の日別売買情報を取得します。
func (c *Client) GetSubscriptionRightDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategorySTO, "sr_bydd_trd", basDd)
}

// GetStockBaseInfo は有価証券の銘柄基本情報を取得します。
func (c *Client) GetStockBaseInfo(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategorySTO, "stk_isu_base_info", basDd)
}

// GetKosdaqStockBaseInfo はKOSDAQの銘柄基本情報を取得します。
func (c *Client) GetKosdaqStockBaseInfo(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategorySTO, "ksq_isu_base_info", basDd)
}

// GetKonexBaseInfo はKONEXの銘柄基本情報を取得します。
func (c *Client) GetKonexBaseInfo(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategorySTO, "knx_isu_base_info", basDd)
}

// ==================== ETP (etp) ====================

// GetETFDailyTrade はETFの日別売買情報を取得します。
func (c *Client) GetETFDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryETP, "etf_bydd_trd", basDd)
}

// GetETNDailyTrade はETNの日別売買情報を取得します。
func (c *Client) GetETNDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryETP, "etn_bydd_trd", basDd)
}

// GetELWDailyTrade はELWの日別売買情報を取得します。
func (c *Client) GetELWDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryETP, "elw_bydd_trd", basDd)
}

// ==================== 채권 (bon) ====================

// GetKTSBondDailyTrade は国債専門流通市場の日別売買情報を取得します。
func (c *Client) GetKTSBondDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryBON, "kts_bydd_trd", basDd)
}

// GetBondDailyTrade は一般債券市場の日別売買情報を取得します。
func (c *Client) GetBondDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryBON, "bnd_bydd_trd", basDd)
}

// GetSmallBondDailyTrade は小額債券市場の日別売買情報を取得します。
func (c *Client) GetSmallBondDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryBON, "smb_bydd_trd", basDd)
}

// ==================== 파생상품 (drv) ====================

// GetFuturesDailyTrade は先物（株式先物を除く）の日別売買情報を取得します。
func (c *Client) GetFuturesDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryDRV, "fut_bydd_trd", basDd)
}

// GetEquityStockFuturesDailyTrade は株式先物（有価）の日別売買情報を取得します。
func (c *Client) GetEquityStockFuturesDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryDRV, "eqsfu_stk_bydd_trd", basDd)
}

// GetEquityKosdaqFuturesDailyTrade は株式先物（KOSDAQ）の日別売買情報を取得します。
func (c *Client) GetEquityKosdaqFuturesDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryDRV, "eqkfu_ksq_bydd_trd", basDd)
}

// GetOptionDailyTrade はオプション（株式オプションを除く）の日別売買情報を取得します。
func (c *Client) GetOptionDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryDRV, "opt_bydd_trd", basDd)
}

// GetEquityStockOptionDailyTrade は株式オプション（有価）の日別売買情報を取得します。
func (c *Client) GetEquityStockOptionDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryDRV, "eqsop_bydd_trd", basDd)
}

// GetEquityKosdaqOptionDailyTrade は株式オプション（KOSDAQ）の日別売買情報を取得します。
func (c *Client) GetEquityKosdaqOptionDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryDRV, "eqkop_bydd_trd", basDd)
}

// ==================== 일반상품 (gen) ====================

// GetOilDailyTrade は石油市場の日別売買情報を取得します。
func (c *Client) GetOilDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryGEN, "oil_bydd_trd", basDd)
}

// GetGoldDailyTrade は金市場の日別売買情報を取得します。
func (c *Client) GetGoldDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryGEN, "gold_bydd_trd", basDd)
}

// GetEmissionsDailyTrade は排出権市場の日別売買情報を取得します。
func (c *Client) GetEmissionsDailyTrade(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryGEN, "ets_bydd_trd", basDd)
}

// ==================== ESG (esg) ====================

// GetSRIBondInfo は社会責任投資債券の情報を取得します。
func (c *Client) GetSRIBondInfo(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryESG, "sri_bond_info", basDd)
}

// GetESGETPInfo はESG証券商品の情報を取得します。
func (c *Client) GetESGETPInfo(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryESG, "esg_etp_info", basDd)
}

// GetESGIndexInfo はESG指数の情報を取得します。
func (c *Client) GetESGIndexInfo(ctx context.Context, basDd string) ([]map[string]any, error) {
	return c.daily(ctx, CategoryESG, "esg_index_info", basDd)
}
