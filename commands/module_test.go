package commands

import (
	"testing"

	"github.com/bwmarrin/discordgo"

	"CoinBot/bot"
)

func TestRegisterModuleCompilesHandlers(t *testing.T) {
	noop := func(*bot.Bot, *discordgo.Session, *discordgo.InteractionCreate) {}

	RegisterModule(&ModuleInfo{
		Name: "Test",
		SlashCommands: []SlashCommandInfo{
			{Name: "testcmd", Description: "x", Handler: noop},
		},
		Components: []ComponentInfo{
			{Prefix: "test_select_", Handler: noop},
		},
	})

	if _, ok := SlashCommandHandlers["testcmd"]; !ok {
		t.Error("slash handler not compiled")
	}
	if _, ok := ComponentHandler("test_select_btc"); !ok {
		t.Error("component handler not matched by prefix")
	}
	if _, ok := ComponentHandler("other_thing"); ok {
		t.Error("unrelated custom id must not match")
	}

	cmds := GetAllSlashCommands()
	found := false
	for _, c := range cmds {
		if c.Name == "testcmd" {
			found = true
		}
	}
	if !found {
		t.Error("registered command missing from registration set")
	}
}
