package main

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"CoinBot/bot"
	"CoinBot/commands"
)

// handleComponents routes message component interactions (select menus) to
// the module that registered their CustomID prefix.
func handleComponents(b *bot.Bot) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionMessageComponent {
			return
		}
		customID := i.MessageComponentData().CustomID
		handler, ok := commands.ComponentHandler(customID)
		if !ok {
			return
		}
		log.Debug().Str("custom_id", customID).Msg("received component interaction")
		handler(b, s, i)
	}
}
