package general

import (
	"CoinBot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "General",
		Description: "General utility commands",
		Version:     "1.0.0",
		Author:      "Bot Team",
		Category:    "General",
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        "ping",
				Description: "Check that the bot is alive",
				Handler:     Ping,
			},
		},
	}

	commands.RegisterModule(module)
}
