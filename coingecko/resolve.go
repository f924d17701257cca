package coingecko

import (
	"context"
	"fmt"
	"strings"
)

// Resolution is the outcome kind of a ticker lookup.
type Resolution int

const (
	ResolutionNotFound Resolution = iota
	ResolutionSingle
	ResolutionMultiple
)

// ResolutionResult is a tagged union: exactly one of CoinID (Single) or
// Candidates (Multiple) is populated, depending on Outcome.
type ResolutionResult struct {
	Outcome    Resolution
	CoinID     string
	Candidates []CoinCandidate
}

// NormalizeTicker strips one leading "$" sigil and lowercases the rest.
// Normalization is idempotent. An empty result is an invalid ticker.
func NormalizeTicker(ticker string) (string, error) {
	t := strings.TrimPrefix(ticker, "$")
	t = strings.ToLower(t)
	if t == "" {
		return "", ErrInvalidTicker
	}
	return t, nil
}

// ListCoins fetches the full coin catalog.
func (c *Client) ListCoins(ctx context.Context) ([]CoinListEntry, error) {
	var entries []CoinListEntry

	resp, err := c.rest.R().
		SetContext(ctx).
		// the API always answers JSON; decode it even without a content type
		ForceContentType("application/json").
		SetResult(&entries).
		Get("/coins/list")
	if err != nil {
		c.logger.Error().Err(err).Msg("coin list request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.IsSuccess() {
		c.logger.Error().Int("status", resp.StatusCode()).Msg("coin list request rejected")
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: empty coin list body", ErrBadResponse)
	}
	return entries, nil
}

// Resolve maps a raw ticker to zero, one or many coin ids. The catalog is
// fetched fresh on every call and filtered by case-insensitive symbol match;
// candidate order follows catalog order.
func (c *Client) Resolve(ctx context.Context, ticker string) (ResolutionResult, error) {
	norm, err := NormalizeTicker(ticker)
	if err != nil {
		return ResolutionResult{}, err
	}

	entries, err := c.ListCoins(ctx)
	if err != nil {
		return ResolutionResult{}, err
	}

	var candidates []CoinCandidate
	for _, e := range entries {
		if strings.ToLower(e.Symbol) == norm {
			candidates = append(candidates, CoinCandidate{ID: e.ID, DisplayName: e.Name})
		}
	}

	switch len(candidates) {
	case 0:
		return ResolutionResult{Outcome: ResolutionNotFound}, nil
	case 1:
		return ResolutionResult{Outcome: ResolutionSingle, CoinID: candidates[0].ID}, nil
	default:
		c.logger.Debug().Str("ticker", norm).Int("candidates", len(candidates)).Msg("ambiguous ticker")
		return ResolutionResult{Outcome: ResolutionMultiple, Candidates: candidates}, nil
	}
}
