package crypto

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"CoinBot/bot"
	"CoinBot/quickchart"
	"CoinBot/utils"
)

// Market handles /market: historical market data rendered as a hosted line
// chart image.
func Market(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	days := "1"
	var tokenID, currency string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "token_id":
			tokenID = opt.StringValue()
		case "currency":
			currency = opt.StringValue()
		case "days":
			days = opt.StringValue()
		}
	}

	ctx := context.Background()
	series, err := b.Gecko.MarketChart(ctx, tokenID, currency, days, b.Cfg.MarketSeries)
	if err != nil {
		utils.Respond(s, i, "❌ coins: error failed to call API data.")
		return
	}

	url, err := b.Charts.Render(ctx, quickchart.TypeLine, series.Timestamps, series.Label, series.Values)
	if err != nil {
		utils.Respond(s, i, fmt.Sprintf("❌ %s: no chart available.", tokenID))
		return
	}

	utils.Respond(s, i, fmt.Sprintf("📈 %s (%s, %sd): %s", tokenID, currency, days, url))
}
