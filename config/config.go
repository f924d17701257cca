package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"CoinBot/coingecko"
	"CoinBot/quickchart"
)

// Config holds all application configuration, loaded from the environment.
type Config struct {
	DiscordToken   string
	GuildID        string
	LogLevel       string
	RequestTimeout time.Duration
	CoinGeckoURL   string
	QuickChartURL  string
	MarketSeries   string
}

// Load reads configuration from environment variables. A missing bot token
// is a fatal startup condition and is reported as an error.
func Load() (*Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, errors.New("DISCORD_TOKEN is not set")
	}

	cfg := &Config{
		DiscordToken:   token,
		GuildID:        os.Getenv("GUILD_ID"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		RequestTimeout: time.Duration(getEnvIntWithDefault("REQUEST_TIMEOUT", 10)) * time.Second,
		CoinGeckoURL:   getEnvWithDefault("COINGECKO_URL", coingecko.DefaultBaseURL),
		QuickChartURL:  getEnvWithDefault("QUICKCHART_URL", quickchart.DefaultBaseURL),
		MarketSeries:   getEnvWithDefault("MARKET_SERIES", coingecko.SeriesPrices),
	}

	if cfg.MarketSeries != coingecko.SeriesPrices && cfg.MarketSeries != coingecko.SeriesMarketCaps {
		cfg.MarketSeries = coingecko.SeriesPrices
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
