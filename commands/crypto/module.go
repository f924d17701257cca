package crypto

import (
	"github.com/bwmarrin/discordgo"

	"CoinBot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "Crypto",
		Description: "Cryptocurrency prices and market charts from CoinGecko",
		Version:     "1.0.0",
		Author:      "Bot Team",
		Category:    "Finance",
		Config: map[string]interface{}{
			"vs_currencies":    "usd,idr",
			"max_chart_points": 250,
		},
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        "coins",
				Description: "List of available tokens from Coingecko.",
				Handler:     Coins,
			},
			{
				Name:        "price",
				Description: "Get the price of a crypto token using ID or ticker symbol",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "ticker",
						Description: "Ticker ($) symbol of the token",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "coingecko_id",
						Description: "Coingecko ID of the token",
						Required:    false,
					},
				},
				Handler: Price,
			},
			{
				Name:        "market",
				Description: "Get market chart of a crypto token (1 day interval).",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "token_id",
						Description: "(Coingecko) Id of the token",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "currency",
						Description: "(Coingecko) Currency for the price",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "days",
						Description: "Chart window in days (default 1)",
						Required:    false,
					},
				},
				Handler: Market,
			},
		},
		Components: []commands.ComponentInfo{
			{Prefix: SelectPrefix, Handler: CoinSelected},
		},
	}

	commands.RegisterModule(module)
}
