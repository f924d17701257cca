package general

import (
	"github.com/bwmarrin/discordgo"

	"CoinBot/bot"
	"CoinBot/utils"
)

func Ping(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	utils.Respond(s, i, "Pong!")
}
