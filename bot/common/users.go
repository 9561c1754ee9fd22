package common

import (
	"strconv"

	"casinobot/config"

	"github.com/bwmarrin/discordgo"
)

// InteractionUser returns whoever triggered the interaction, in a guild or a DM
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// InteractionUserID returns the triggering user's ID, empty when unknown
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if user := InteractionUser(i); user != nil {
		return user.ID
	}
	return ""
}

// ParseUserID converts a Discord user ID string to int64
func ParseUserID(userID string) (int64, error) {
	return strconv.ParseInt(userID, 10, 64)
}

// FormatUserID converts an int64 user ID to string
func FormatUserID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// GetUserMention returns a Discord mention string for a user
func GetUserMention(userID int64) string {
	return "<@" + FormatUserID(userID) + ">"
}

// DisplayName prefers the guild nickname over the global name over the username
func DisplayName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	user := InteractionUser(i)
	if user == nil {
		return "Unknown"
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// CanAdjustBalances reports whether the member holds Administrator or is listed in ADMIN_DISCORD_IDS
func CanAdjustBalances(i *discordgo.InteractionCreate) bool {
	if i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	id, err := ParseUserID(InteractionUserID(i))
	if err != nil {
		return false
	}
	return config.Get().IsAdmin(id)
}

// Player resolves the triggering user's numeric ID and display name
func Player(i *discordgo.InteractionCreate) (int64, string, error) {
	user := InteractionUser(i)
	if user == nil {
		return 0, "", NewUserError("Unable to process request. Please try again.", "interaction has no user")
	}
	id, err := ParseUserID(user.ID)
	if err != nil {
		return 0, "", &BotError{
			UserMessage: "Unable to process request. Please try again.",
			LogMessage:  "failed to parse Discord ID " + user.ID,
			Ephemeral:   true,
			Err:         err,
		}
	}
	return id, DisplayName(i), nil
}
