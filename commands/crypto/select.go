package crypto

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"CoinBot/bot"
	"CoinBot/utils"
)

// CoinSelected handles the follow-up of a disambiguation prompt. The chosen
// value is a coin id previously offered by Price; it is routed into the same
// price fetch as the direct coingecko_id path.
func CoinSelected(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}
	coinID := data.Values[0]

	ticker := strings.TrimPrefix(data.CustomID, SelectPrefix)
	log.Debug().Str("ticker", ticker).Str("coin", coinID).Msg("coin selected")

	utils.UpdateMessage(s, i, fetchPriceMessage(b, coinID))
}
