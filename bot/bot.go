package bot

import (
	"github.com/bwmarrin/discordgo"

	"CoinBot/coingecko"
	"CoinBot/config"
	"CoinBot/quickchart"
)

// Bot bundles the Discord session with the upstream API clients. It holds
// no mutable state across events; disambiguation hand-off lives in the
// select menu itself.
type Bot struct {
	Client *discordgo.Session
	Gecko  *coingecko.Client
	Charts *quickchart.Client
	Cfg    *config.Config
}

func NewBot(cfg *config.Config) (*Bot, error) {
	client, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}
	// Slash commands and components only, no privileged intents needed.
	client.Identify.Intents = discordgo.IntentsGuilds

	return &Bot{
		Client: client,
		Gecko:  coingecko.NewClient(cfg.CoinGeckoURL, cfg.RequestTimeout),
		Charts: quickchart.NewClient(cfg.QuickChartURL, cfg.RequestTimeout),
		Cfg:    cfg,
	}, nil
}
