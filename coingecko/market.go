package coingecko

import (
	"context"
	"fmt"
)

// MaxChartPoints is the cap on points forwarded to the renderer. Points
// beyond the cap are dropped, not sampled.
const MaxChartPoints = 250

// SeriesPrices and SeriesMarketCaps name the series that can be charted.
const (
	SeriesPrices     = "prices"
	SeriesMarketCaps = "market_caps"
)

type marketChartResponse struct {
	Prices     [][2]float64 `json:"prices"`
	MarketCaps [][2]float64 `json:"market_caps"`
}

// MarketChart fetches historical market data for a coin over the given
// window (a day count or keyword accepted by the API) and splits the chosen
// series into parallel timestamp/value sequences, truncated to the first
// MaxChartPoints pairs.
func (c *Client) MarketChart(ctx context.Context, coinID, currency, days, series string) (*ChartSeries, error) {
	if days == "" {
		days = "1"
	}

	var doc marketChartResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		// the API always answers JSON; decode it even without a content type
		ForceContentType("application/json").
		SetQueryParams(map[string]string{
			"vs_currency": currency,
			"days":        days,
		}).
		SetResult(&doc).
		Get("/coins/" + coinID + "/market_chart")
	if err != nil {
		c.logger.Error().Err(err).Str("coin", coinID).Msg("market chart request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.IsSuccess() {
		c.logger.Error().Int("status", resp.StatusCode()).Str("coin", coinID).Msg("market chart request rejected")
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}

	pairs := doc.Prices
	if series == SeriesMarketCaps {
		pairs = doc.MarketCaps
	}
	if pairs == nil {
		return nil, fmt.Errorf("%w: no %s series for %s", ErrBadResponse, series, coinID)
	}

	if len(pairs) > MaxChartPoints {
		pairs = pairs[:MaxChartPoints]
	}

	out := &ChartSeries{
		Timestamps: make([]float64, 0, len(pairs)),
		Values:     make([]float64, 0, len(pairs)),
		Label:      coinID,
	}
	for _, p := range pairs {
		out.Timestamps = append(out.Timestamps, p[0])
		out.Values = append(out.Values, p[1])
	}
	return out, nil
}
