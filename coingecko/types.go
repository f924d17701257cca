package coingecko

import "github.com/shopspring/decimal"

// CoinListEntry is one record of the /coins/list catalog.
type CoinListEntry struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// CoinCandidate is the subset of a catalog entry needed to offer a choice
// to the user when a ticker is ambiguous.
type CoinCandidate struct {
	ID          string
	DisplayName string
}

// PriceQuote is a validated simple/price result. The *Places counts are the
// number of fractional digits present in the upstream textual value, capped
// at 10, so replies carry the upstream precision instead of a fixed one.
type PriceQuote struct {
	CoinID    string
	USD       decimal.Decimal
	IDR       decimal.Decimal
	USDPlaces int
	IDRPlaces int
}

// ChartSeries holds parallel timestamp/value sequences for chart rendering.
type ChartSeries struct {
	Timestamps []float64
	Values     []float64
	Label      string
}

// statusEnvelope is CoinGecko's API-level error wrapper. It appears in the
// body regardless of the HTTP status code.
type statusEnvelope struct {
	Status *apiStatus `json:"status"`
}

type apiStatus struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}
