package common

import "github.com/bwmarrin/discordgo"

// IntOption returns the named integer option
func IntOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) (int64, bool) {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionInteger {
			return opt.IntValue(), true
		}
	}
	return 0, false
}

// StringOption returns the named string option
func StringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue(), true
		}
	}
	return "", false
}

// UserOption returns the named user option, resolved through the interaction data
func UserOption(s *discordgo.Session, options []*discordgo.ApplicationCommandInteractionDataOption, name string) (*discordgo.User, bool) {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionUser {
			return opt.UserValue(s), true
		}
	}
	return nil, false
}
