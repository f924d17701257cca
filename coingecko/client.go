package coingecko

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public CoinGecko v3 API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// DefaultTimeout bounds every outbound call. A hung upstream is reported
// the same way as an unreachable one.
const DefaultTimeout = 10 * time.Second

// Client talks to the CoinGecko API. It holds no state between calls.
type Client struct {
	rest   *resty.Client
	logger zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rest := resty.New()
	rest.SetBaseURL(baseURL)
	rest.SetTimeout(timeout)
	rest.SetHeader("Accept", "application/json")

	return &Client{
		rest:   rest,
		logger: log.With().Str("component", "coingecko").Logger(),
	}
}
