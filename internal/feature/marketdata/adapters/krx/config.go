// Package krx provides a client for the KRX OpenAPI daily market data service.
package krx

import (
	"os"
	"strconv"
	"time"
)

// DefaultBaseURL is the production endpoint of the KRX OpenAPI.
const DefaultBaseURL = "https://data-dbg.krx.co.kr/svc/apis"

// Config holds configuration for the KRX OpenAPI client.
type Config struct {
	APIKey     string        // API key for authentication (AUTH_KEY query parameter)
	BaseURL    string        // Base URL for the API
	Timeout    time.Duration // HTTP request timeout
	RateLimit  int           // Max requests per RatePeriod
	RatePeriod time.Duration // Rolling window for the rate limit
}

// LoadConfig loads KRX OpenAPI configuration from environment variables.
// KRX_OPENAPI_KEY is required by the server; the remaining values fall back
// to the documented defaults (10 requests per second, 30s timeout).
func LoadConfig() Config {
	cfg := Config{
		APIKey:     os.Getenv("KRX_OPENAPI_KEY"),
		BaseURL:    os.Getenv("KRX_BASE_URL"),
		Timeout:    30 * time.Second,
		RateLimit:  10,
		RatePeriod: time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if v, err := strconv.Atoi(os.Getenv("KRX_RATE_LIMIT")); err == nil && v > 0 {
		cfg.RateLimit = v
	}
	if v, err := strconv.Atoi(os.Getenv("KRX_RATE_PERIOD_SECONDS")); err == nil && v > 0 {
		cfg.RatePeriod = time.Duration(v) * time.Second
	}
	return cfg
}
