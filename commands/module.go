package commands

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"CoinBot/bot"
)

// HandlerFunc is the signature for slash command and component handlers.
type HandlerFunc func(*bot.Bot, *discordgo.Session, *discordgo.InteractionCreate)

// SlashCommandInfo holds information about a slash command.
type SlashCommandInfo struct {
	Name        string                                `json:"name"`
	Description string                                `json:"description"`
	Options     []*discordgo.ApplicationCommandOption `json:"options"`
	Handler     HandlerFunc                           `json:"-"`
}

// ComponentInfo routes message component interactions (select menus,
// buttons) whose CustomID starts with Prefix.
type ComponentInfo struct {
	Prefix  string      `json:"prefix"`
	Handler HandlerFunc `json:"-"`
}

// ModuleInfo represents a complete module with its commands and metadata.
type ModuleInfo struct {
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Version       string                 `json:"version"`
	Author        string                 `json:"author"`
	Category      string                 `json:"category"`
	SlashCommands []SlashCommandInfo     `json:"slash_commands"`
	Components    []ComponentInfo        `json:"components"`
	Config        map[string]interface{} `json:"config"`
}

// Global registries, populated by module init() functions.
var (
	RegisteredModules    = make(map[string]*ModuleInfo)
	SlashCommandHandlers = make(map[string]HandlerFunc)
	componentHandlers    []ComponentInfo
)

// RegisterModule registers a module and compiles its handler maps.
func RegisterModule(module *ModuleInfo) {
	RegisteredModules[module.Name] = module

	for _, slashCmd := range module.SlashCommands {
		SlashCommandHandlers[slashCmd.Name] = slashCmd.Handler
	}
	componentHandlers = append(componentHandlers, module.Components...)
}

// ComponentHandler returns the handler registered for a component CustomID,
// matched by prefix.
func ComponentHandler(customID string) (HandlerFunc, bool) {
	for _, c := range componentHandlers {
		if strings.HasPrefix(customID, c.Prefix) {
			return c.Handler, true
		}
	}
	return nil, false
}

// GetAllSlashCommands returns all registered slash commands for registration.
func GetAllSlashCommands() []*discordgo.ApplicationCommand {
	var cmds []*discordgo.ApplicationCommand
	for _, module := range RegisteredModules {
		for _, slashCmd := range module.SlashCommands {
			cmds = append(cmds, &discordgo.ApplicationCommand{
				Name:        slashCmd.Name,
				Description: slashCmd.Description,
				Options:     slashCmd.Options,
			})
		}
	}
	return cmds
}
