package crypto

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"CoinBot/bot"
	"CoinBot/coingecko"
	"CoinBot/utils"
)

// Discord rejects messages longer than 2000 characters.
const maxMessageLen = 2000

// Coins handles /coins: the catalog ids, one per line. The catalog is far
// larger than one message, so the list is cut at the message limit with a
// count of what was left out.
func Coins(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	entries, err := b.Gecko.ListCoins(context.Background())
	if err != nil {
		utils.Respond(s, i, "❌ coins: error failed to call API data.")
		return
	}

	utils.Respond(s, i, coinsMessage(entries))
}

func coinsMessage(entries []coingecko.CoinListEntry) string {
	if len(entries) == 0 {
		return "No coins listed on CoinGecko right now."
	}

	// Leave room for the "… and N more" tail.
	const tailRoom = 32

	var sb strings.Builder
	for n, e := range entries {
		line := "- " + e.ID + "\n"
		if sb.Len()+len(line) > maxMessageLen-tailRoom {
			fmt.Fprintf(&sb, "… and %d more", len(entries)-n)
			break
		}
		sb.WriteString(line)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
