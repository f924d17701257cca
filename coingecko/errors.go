package coingecko

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport failures, timeouts and non-2xx
	// responses without an API error envelope.
	ErrUnavailable = errors.New("coingecko: upstream unavailable")

	// ErrBadResponse means the body was not parseable as the expected shape.
	ErrBadResponse = errors.New("coingecko: unparseable response")

	// ErrNotFound means a well-formed response did not contain the
	// requested coin id.
	ErrNotFound = errors.New("coingecko: coin not found")

	// ErrIncomplete means the coin was present but a required currency
	// field was missing.
	ErrIncomplete = errors.New("coingecko: incomplete price data")

	// ErrInvalidFormat means a price field was present but not a valid
	// numeric value.
	ErrInvalidFormat = errors.New("coingecko: invalid price format")

	// ErrInvalidTicker means the ticker was empty after normalization.
	ErrInvalidTicker = errors.New("coingecko: invalid ticker")
)

// UpstreamError is an API-level error envelope returned by CoinGecko.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("coingecko: upstream error %d: %s", e.Code, e.Message)
}

// RateLimited reports whether the upstream rejected the call with a 429.
// Callers render this as a distinct "try again later" message.
func (e *UpstreamError) RateLimited() bool {
	return e.Code == 429
}
