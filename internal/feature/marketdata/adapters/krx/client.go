package krx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"

	"krx_backend/internal/feature/marketdata/convert"
	"krx_backend/internal/feature/marketdata/domain"
	"krx_backend/internal/shared/ratelimiter"
)

// basDdPattern は基準日パラメータのフォーマット（YYYYMMDD）検証用です。
var basDdPattern = regexp.MustCompile(`^\d{8}$`)

// Client はKRX OpenAPIから日次市場データを取得するクライアントです。
// 全エンドポイント呼び出しは単一のレートリミッタを共有し、
// レスポンスの文字列フィールドはフィールド名に基づいて型変換されます。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// NewClient は指定された設定・HTTPクライアント・レートリミッタで
// Clientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// outBlockResponse はKRX APIのレスポンス構造です。レコードは
// "OutBlock_1" キー配下に文字列フィールドのリストとして格納されます。
type outBlockResponse map[string]json.RawMessage

// daily は指定カテゴリ・エンドポイントの日次データを取得し、
// 型変換済みのレコード列として返します。
func (c *Client) daily(ctx context.Context, category, endpoint, basDd string) ([]map[string]any, error) {
	// 日付フォーマットを検証
	if !basDdPattern.MatchString(basDd) {
		return nil, fmt.Errorf("%w: %q (expected YYYYMMDD, e.g. 20240101)", domain.ErrInvalidDate, basDd)
	}

	// リクエスト前にレートリミットを適用
	c.limiter.WaitIfNeeded()

	// URLとクエリパラメータを構成
	q := url.Values{}
	q.Set("AUTH_KEY", c.cfg.APIKey)
	q.Set("basDd", basDd)
	u := fmt.Sprintf("%s/%s/%s?%s", c.cfg.BaseURL, category, endpoint, q.Encode())

	slog.Debug("krx request", "category", category, "endpoint", endpoint, "basDd", basDd)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// HTTPステータスをドメインエラーへマッピング
	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: invalid API key (401 Unauthorized)", domain.ErrAuthentication)
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: 429 Too Many Requests", domain.ErrRateLimit)
	case res.StatusCode >= 500:
		return nil, fmt.Errorf("%w: http %d", domain.ErrServer, res.StatusCode)
	case res.StatusCode >= 400:
		return nil, fmt.Errorf("%w: http %d", domain.ErrAPI, res.StatusCode)
	}

	// JSONレスポンスをデコード
	var payload outBlockResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON response: %v", domain.ErrAPI, err)
	}

	raw, ok := payload["OutBlock_1"]
	if !ok {
		// OutBlock_1を含まないレスポンスは空データとして扱う
		keys := make([]string, 0, len(payload))
		for k := range payload {
			keys = append(keys, k)
		}
		slog.Warn("unexpected response structure (no OutBlock_1)", "keys", keys)
		return []map[string]any{}, nil
	}

	var records []map[string]string
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: invalid OutBlock_1: %v", domain.ErrAPI, err)
	}

	slog.Debug("krx response", "endpoint", endpoint, "records", len(records))

	// データ型を変換して返す
	return convert.Response(records), nil
}

// Daily はエンドポイント名からカタログでカテゴリを解決して日次データを取得します。
// 型付きのエンドポイントメソッドに対する汎用版で、HTTPハンドラなど
// エンドポイント名を文字列で受け取る呼び出し元向けです。
func (c *Client) Daily(ctx context.Context, endpoint, basDd string) ([]map[string]any, error) {
	ep, ok := Endpoints[endpoint]
	if !ok {
		return nil, fmt.Errorf("%w: unknown endpoint %q", domain.ErrAPI, endpoint)
	}
	return c.daily(ctx, ep.Category, endpoint, basDd)
}
