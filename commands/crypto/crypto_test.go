package crypto

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"CoinBot/coingecko"
)

func TestPriceMessageSuccess(t *testing.T) {
	quote := &coingecko.PriceQuote{
		CoinID:    "bitcoin",
		USD:       decimal.RequireFromString("50000.5"),
		IDR:       decimal.RequireFromString("799000000"),
		USDPlaces: 1,
		IDRPlaces: 0,
	}
	got := priceMessage("bitcoin", quote, nil)
	want := "ℹ️ bitcoin price: $50,000.5 / Rp.799.000.000"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPriceMessageRateLimitedIsDistinct(t *testing.T) {
	limited := priceMessage("bitcoin", nil, &coingecko.UpstreamError{Code: 429, Message: "rate limited"})
	generic := priceMessage("bitcoin", nil, &coingecko.UpstreamError{Code: 10005, Message: "nope"})

	if limited == generic {
		t.Fatal("rate-limited message must differ from the generic upstream message")
	}
	if !strings.Contains(limited, "try again") {
		t.Errorf("rate-limited message %q carries no retry hint", limited)
	}
}

func TestPriceMessageCategories(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{coingecko.ErrNotFound, "no such coin id"},
		{coingecko.ErrIncomplete, "missing usd/idr"},
		{coingecko.ErrInvalidFormat, "malformed price"},
		{coingecko.ErrUnavailable, "failed to call API data"},
	}
	seen := make(map[string]bool)
	for _, c := range cases {
		got := priceMessage("bitcoin", nil, fmt.Errorf("wrap: %w", c.err))
		if !strings.Contains(got, c.want) {
			t.Errorf("err %v: got %q, want substring %q", c.err, got, c.want)
		}
		if seen[got] {
			t.Errorf("message %q reused across categories", got)
		}
		seen[got] = true
	}
}

func TestSelectOptionsOrderAndText(t *testing.T) {
	cands := []coingecko.CoinCandidate{
		{ID: "batcat", DisplayName: "Batcat"},
		{ID: "basic-attention-token", DisplayName: "Basic Attention Token"},
	}
	opts := selectOptions(cands)
	if len(opts) != 2 {
		t.Fatalf("got %d options", len(opts))
	}
	if opts[0].Value != "batcat" || opts[1].Value != "basic-attention-token" {
		t.Errorf("catalog order not preserved: %+v", opts)
	}
	if opts[0].Label != "Batcat" {
		t.Errorf("label = %q", opts[0].Label)
	}
	if opts[1].Description != "CoinGecko ID: basic-attention-token" {
		t.Errorf("description = %q", opts[1].Description)
	}
}

func TestSelectOptionsCappedAtMenuLimit(t *testing.T) {
	cands := make([]coingecko.CoinCandidate, 40)
	for i := range cands {
		cands[i] = coingecko.CoinCandidate{ID: fmt.Sprintf("coin-%d", i), DisplayName: fmt.Sprintf("Coin %d", i)}
	}
	opts := selectOptions(cands)
	if len(opts) != maxSelectOptions {
		t.Fatalf("got %d options, want %d", len(opts), maxSelectOptions)
	}
	if opts[0].Value != "coin-0" || opts[24].Value != "coin-24" {
		t.Errorf("cap must keep the first candidates in order")
	}
}

func TestCoinsMessageShortList(t *testing.T) {
	entries := []coingecko.CoinListEntry{
		{ID: "bitcoin"}, {ID: "ethereum"},
	}
	got := coinsMessage(entries)
	want := "- bitcoin\n- ethereum"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCoinsMessageCutsAtMessageLimit(t *testing.T) {
	entries := make([]coingecko.CoinListEntry, 500)
	for i := range entries {
		entries[i] = coingecko.CoinListEntry{ID: fmt.Sprintf("coin-number-%04d", i)}
	}
	got := coinsMessage(entries)
	if len(got) > maxMessageLen {
		t.Fatalf("message length %d exceeds %d", len(got), maxMessageLen)
	}
	if !strings.Contains(got, "more") {
		t.Error("long list must mention the cut entries")
	}
	if !strings.HasPrefix(got, "- coin-number-0000\n") {
		t.Errorf("message starts with %q", got[:20])
	}
}
