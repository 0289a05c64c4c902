// Package domain defines domain-level errors for the marketdata feature.
package domain

import "errors"

// Domain errors for KRX OpenAPI operations.
// HTTP status codes and transport failures are mapped onto these sentinels by
// the adapter layer so that upper layers can branch with errors.Is.
var (
	// ErrAPI is the base error for KRX API failures that have no more
	// specific classification (unexpected status, malformed payload).
	ErrAPI = errors.New("krx api error")

	// ErrAuthentication indicates the API key was missing or rejected (401).
	ErrAuthentication = errors.New("krx authentication failed")

	// ErrRateLimit indicates the server-side request limit was exceeded (429).
	ErrRateLimit = errors.New("krx rate limit exceeded")

	// ErrInvalidDate indicates a base date not in YYYYMMDD format.
	ErrInvalidDate = errors.New("invalid base date format")

	// ErrNetwork indicates a transport-level failure (timeout, connection).
	ErrNetwork = errors.New("krx network error")

	// ErrServer indicates the server returned a 5xx status.
	ErrServer = errors.New("krx server error")
)
