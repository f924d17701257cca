package coingecko

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
)

func priceClient(t *testing.T, body string) *Client {
	t.Helper()
	return newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
}

func TestSimplePricePreservesSourcePrecision(t *testing.T) {
	c := priceClient(t, `{"bitcoin": {"usd": 50000.5, "idr": 799000000}}`)

	quote, err := c.SimplePrice(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if quote.CoinID != "bitcoin" {
		t.Errorf("coin id = %q", quote.CoinID)
	}
	if quote.USD.String() != "50000.5" || quote.USDPlaces != 1 {
		t.Errorf("usd = %s with %d places, want 50000.5 with 1", quote.USD, quote.USDPlaces)
	}
	if quote.IDR.String() != "799000000" || quote.IDRPlaces != 0 {
		t.Errorf("idr = %s with %d places, want 799000000 with 0", quote.IDR, quote.IDRPlaces)
	}
}

func TestSimplePriceQuotedNumber(t *testing.T) {
	c := priceClient(t, `{"tether": {"usd": "1.004", "idr": 15000}}`)

	quote, err := c.SimplePrice(context.Background(), "tether")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if quote.USD.String() != "1.004" || quote.USDPlaces != 3 {
		t.Errorf("usd = %s with %d places, want 1.004 with 3", quote.USD, quote.USDPlaces)
	}
}

func TestSimplePricePrecisionCap(t *testing.T) {
	c := priceClient(t, `{"shiba": {"usd": 0.000012345678901234, "idr": 0.19}}`)

	quote, err := c.SimplePrice(context.Background(), "shiba")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if quote.USDPlaces != 10 {
		t.Errorf("usd places = %d, want capped 10", quote.USDPlaces)
	}
	if quote.IDRPlaces != 2 {
		t.Errorf("idr places = %d, want 2", quote.IDRPlaces)
	}
}

func TestSimplePriceRateLimited(t *testing.T) {
	c := priceClient(t, `{"status": {"error_code": 429, "error_message": "rate limited"}}`)

	_, err := c.SimplePrice(context.Background(), "bitcoin")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if !upstream.RateLimited() {
		t.Fatalf("code %d not reported as rate limited", upstream.Code)
	}
}

func TestSimplePriceOtherUpstreamError(t *testing.T) {
	c := priceClient(t, `{"status": {"error_code": 10005, "error_message": "nope"}}`)

	_, err := c.SimplePrice(context.Background(), "bitcoin")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if upstream.RateLimited() {
		t.Fatal("code 10005 must not be reported as rate limited")
	}
	if upstream.Message != "nope" {
		t.Errorf("message = %q", upstream.Message)
	}
}

func TestSimplePriceNotFound(t *testing.T) {
	for _, body := range []string{`{}`, `{"ethereum": {"usd": 1, "idr": 2}}`} {
		c := priceClient(t, body)
		_, err := c.SimplePrice(context.Background(), "bitcoin")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("body %s: err = %v, want ErrNotFound", body, err)
		}
	}
}

func TestSimplePriceIncomplete(t *testing.T) {
	// idr missing: incomplete data, not a format problem.
	c := priceClient(t, `{"bitcoin": {"usd": 50000.5}}`)
	_, err := c.SimplePrice(context.Background(), "bitcoin")
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
}

func TestSimplePriceInvalidFormat(t *testing.T) {
	c := priceClient(t, `{"bitcoin": {"usd": true, "idr": 799000000}}`)
	_, err := c.SimplePrice(context.Background(), "bitcoin")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestSimplePriceUnparseableBody(t *testing.T) {
	c := priceClient(t, `<!doctype html>`)
	_, err := c.SimplePrice(context.Background(), "bitcoin")
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("err = %v, want ErrBadResponse", err)
	}
}

func TestDisplayPlaces(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"799000000", 0},
		{"50000.5", 1},
		{"1.004", 3},
		{"0.12345678901234", 10},
		// exponent forms count from the normalized value
		{"1.5e3", 0},  // 1500
		{"1.5e-7", 8}, // 0.00000015
		{"1e-12", 10}, // clamped
	}
	for _, c := range cases {
		v, err := decimal.NewFromString(c.in)
		if err != nil {
			t.Fatalf("parse %q: %v", c.in, err)
		}
		if got := displayPlaces(c.in, v); got != c.want {
			t.Errorf("displayPlaces(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
