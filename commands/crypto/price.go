package crypto

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"CoinBot/bot"
	"CoinBot/coingecko"
	"CoinBot/format"
	"CoinBot/utils"
)

// SelectPrefix marks coin disambiguation select menus. The suffix is the
// originating ticker, carried for logging only; the handler trusts the
// submitted value.
const SelectPrefix = "coin_select_"

// Discord allows at most 25 options in one select menu.
const maxSelectOptions = 25

// Price handles /price. The coingecko_id option is the unambiguous form and
// wins when both options are given; a ticker goes through catalog resolution
// and may need a disambiguation step.
func Price(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var ticker, coinID string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "ticker":
			ticker = opt.StringValue()
		case "coingecko_id":
			coinID = opt.StringValue()
		}
	}

	if coinID != "" {
		utils.Respond(s, i, fetchPriceMessage(b, coinID))
		return
	}
	if ticker == "" {
		utils.RespondEphemeral(s, i, "❌ provide a ticker or a coingecko_id.")
		return
	}

	res, err := b.Gecko.Resolve(context.Background(), ticker)
	if err != nil {
		utils.Respond(s, i, resolveErrorMessage(ticker, err))
		return
	}

	switch res.Outcome {
	case coingecko.ResolutionSingle:
		utils.Respond(s, i, fetchPriceMessage(b, res.CoinID))
	case coingecko.ResolutionMultiple:
		norm, _ := coingecko.NormalizeTicker(ticker)
		log.Debug().Str("ticker", norm).Int("candidates", len(res.Candidates)).Msg("offering coin selection")
		utils.RespondWithComponents(s, i,
			fmt.Sprintf("Ticker %q matches several coins, pick one:", norm),
			[]discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							MenuType:    discordgo.StringSelectMenu,
							CustomID:    SelectPrefix + norm,
							Placeholder: "Select a coin",
							Options:     selectOptions(res.Candidates),
						},
					},
				},
			})
	default:
		utils.Respond(s, i, fmt.Sprintf("❌ no CoinGecko coin matches ticker %q.", ticker))
	}
}

// selectOptions builds one option per candidate, in catalog order, capped at
// Discord's menu limit.
func selectOptions(candidates []coingecko.CoinCandidate) []discordgo.SelectMenuOption {
	if len(candidates) > maxSelectOptions {
		candidates = candidates[:maxSelectOptions]
	}
	opts := make([]discordgo.SelectMenuOption, 0, len(candidates))
	for _, c := range candidates {
		opts = append(opts, discordgo.SelectMenuOption{
			Label:       c.DisplayName,
			Value:       c.ID,
			Description: "CoinGecko ID: " + c.ID,
		})
	}
	return opts
}

// fetchPriceMessage runs the price fetch for one resolved coin id and maps
// the outcome to its user-facing reply.
func fetchPriceMessage(b *bot.Bot, coinID string) string {
	quote, err := b.Gecko.SimplePrice(context.Background(), coinID)
	return priceMessage(coinID, quote, err)
}

// priceMessage renders a quote or maps each failure category to exactly one
// user-facing message.
func priceMessage(coinID string, quote *coingecko.PriceQuote, err error) string {
	if err != nil {
		var upstream *coingecko.UpstreamError
		switch {
		case errors.As(err, &upstream):
			if upstream.RateLimited() {
				return "❌ CoinGecko is rate limiting requests right now, try again in a minute."
			}
			return fmt.Sprintf("❌ %s: CoinGecko error %d: %s", coinID, upstream.Code, upstream.Message)
		case errors.Is(err, coingecko.ErrNotFound):
			return fmt.Sprintf("❌ %s: no such coin id on CoinGecko.", coinID)
		case errors.Is(err, coingecko.ErrIncomplete):
			return fmt.Sprintf("❌ %s: price data is missing usd/idr.", coinID)
		case errors.Is(err, coingecko.ErrInvalidFormat):
			return fmt.Sprintf("❌ %s: CoinGecko returned a malformed price.", coinID)
		default:
			return fmt.Sprintf("❌ %s: price: error failed to call API data.", coinID)
		}
	}

	usd := format.Decimal(quote.USD, quote.USDPlaces, format.US)
	idr := format.Decimal(quote.IDR, quote.IDRPlaces, format.Indonesian)
	return fmt.Sprintf("ℹ️ %s price: $%s / Rp.%s", coinID, usd, idr)
}

// resolveErrorMessage distinguishes bad user input from upstream trouble.
func resolveErrorMessage(ticker string, err error) string {
	if errors.Is(err, coingecko.ErrInvalidTicker) {
		return fmt.Sprintf("❌ %q is not a valid ticker.", ticker)
	}
	return "❌ failed to fetch the CoinGecko coin list, try again later."
}
