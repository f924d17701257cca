package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxPlaces caps the display precision derived from upstream values.
const maxPlaces = 10

// SimplePrice fetches the current USD and IDR price for one coin id.
// The numeric fields are taken from their original textual representation so
// that upstream precision is preserved; each value's display precision is the
// count of digits after the decimal point in that text, capped at 10.
func (c *Client) SimplePrice(ctx context.Context, coinID string) (*PriceQuote, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		// the API always answers JSON; decode it even without a content type
		ForceContentType("application/json").
		SetQueryParams(map[string]string{
			"ids":           coinID,
			"vs_currencies": "usd,idr",
		}).
		Get("/simple/price")
	if err != nil {
		c.logger.Error().Err(err).Str("coin", coinID).Msg("price request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	body := resp.Body()

	// CoinGecko reports API-level failures (including 429) in a status
	// envelope, independent of the HTTP code.
	var env statusEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Status != nil && env.Status.ErrorCode != 0 {
		c.logger.Warn().Int("code", env.Status.ErrorCode).Str("coin", coinID).Msg("upstream error envelope")
		return nil, &UpstreamError{Code: env.Status.ErrorCode, Message: env.Status.ErrorMessage}
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}

	var doc map[string]map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	coin, ok := doc[coinID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, coinID)
	}

	usdRaw, usdOK := coin["usd"]
	idrRaw, idrOK := coin["idr"]
	if !usdOK || !idrOK {
		return nil, fmt.Errorf("%w: %s", ErrIncomplete, coinID)
	}

	usd, usdPlaces, err := parseAmount(usdRaw)
	if err != nil {
		return nil, err
	}
	idr, idrPlaces, err := parseAmount(idrRaw)
	if err != nil {
		return nil, err
	}

	return &PriceQuote{
		CoinID:    coinID,
		USD:       usd,
		IDR:       idr,
		USDPlaces: usdPlaces,
		IDRPlaces: idrPlaces,
	}, nil
}

// parseAmount converts the raw JSON text of a price field. The whole string
// must parse, otherwise the value is reported as malformed.
func parseAmount(raw json.RawMessage) (decimal.Decimal, int, error) {
	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)

	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	return value, displayPlaces(text, value), nil
}

// displayPlaces derives the display precision of a value from its textual
// form, clamped to [0, maxPlaces]. Exponent-form input is counted from the
// normalized value, so 1.5e3 renders as 1500, not 1500.0.
func displayPlaces(text string, v decimal.Decimal) int {
	if strings.ContainsAny(text, "eE") {
		places := int(-v.Exponent())
		if places < 0 {
			places = 0
		}
		if places > maxPlaces {
			places = maxPlaces
		}
		return places
	}
	return fractionalDigits(text)
}

// fractionalDigits counts digits after the decimal point in the textual
// form, clamped to [0, maxPlaces]. No decimal point means zero.
func fractionalDigits(text string) int {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return 0
	}
	frac := text[dot+1:]
	if len(frac) > maxPlaces {
		return maxPlaces
	}
	return len(frac)
}
