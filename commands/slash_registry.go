package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// commandNeedsUpdate checks if an existing command needs to be updated
func commandNeedsUpdate(existing, desired *discordgo.ApplicationCommand) bool {
	if existing.Name != desired.Name {
		return true
	}
	if existing.Description != desired.Description {
		return true
	}
	if len(existing.Options) != len(desired.Options) {
		return true
	}
	for i, option := range existing.Options {
		if i >= len(desired.Options) {
			return true
		}
		desiredOption := desired.Options[i]
		if option.Name != desiredOption.Name ||
			option.Description != desiredOption.Description ||
			option.Type != desiredOption.Type ||
			option.Required != desiredOption.Required {
			return true
		}
	}
	return false
}

// RegisterAllSlashCommands registers and updates slash commands from all
// modules, deleting any remotely-registered command no module owns anymore.
func RegisterAllSlashCommands(s *discordgo.Session, guildID string) {
	existingCommands, err := s.ApplicationCommands(s.State.User.ID, guildID)
	if err != nil {
		log.Error().Err(err).Msg("fetching existing commands")
		return
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existingCommands {
		existingMap[cmd.Name] = cmd
	}

	for _, desired := range GetAllSlashCommands() {
		if existing, exists := existingMap[desired.Name]; exists {
			if commandNeedsUpdate(existing, desired) {
				log.Info().Str("command", desired.Name).Msg("updating slash command")
				if _, err := s.ApplicationCommandEdit(s.State.User.ID, guildID, existing.ID, desired); err != nil {
					log.Error().Err(err).Str("command", desired.Name).Msg("updating command")
				}
			}
			delete(existingMap, desired.Name)
		} else {
			log.Info().Str("command", desired.Name).Msg("creating slash command")
			if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, desired); err != nil {
				log.Error().Err(err).Str("command", desired.Name).Msg("creating command")
			}
		}
	}

	for _, cmd := range existingMap {
		log.Info().Str("command", cmd.Name).Msg("deleting unused slash command")
		if err := s.ApplicationCommandDelete(s.State.User.ID, guildID, cmd.ID); err != nil {
			log.Error().Err(err).Str("command", cmd.Name).Msg("deleting command")
		}
	}
}
