package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"CoinBot/bot"
	"CoinBot/commands"
	_ "CoinBot/commands/crypto"
	_ "CoinBot/commands/general"
	"CoinBot/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	b, err := bot.NewBot(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("creating bot")
	}

	b.Client.AddHandler(handleSlashCommands(b))
	b.Client.AddHandler(handleComponents(b))

	if err := b.Client.Open(); err != nil {
		log.Fatal().Err(err).Msg("opening gateway connection")
	}
	defer b.Client.Close()

	commands.RegisterAllSlashCommands(b.Client, cfg.GuildID)

	log.Info().Msg("Bot is running. Press Ctrl+C to exit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")
}

func handleSlashCommands(b *bot.Bot) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		name := i.ApplicationCommandData().Name
		handler, ok := commands.SlashCommandHandlers[name]
		if !ok {
			return
		}
		log.Debug().Str("command", name).Msg("received slash command")
		handler(b, s, i)
	}
}
