package common

import (
	"errors"
	"fmt"

	"casinobot/application"
	"casinobot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string // Message shown to Discord user
	LogMessage  string // Internal message for logging
	Ephemeral   bool   // Whether the error message should be ephemeral
	Err         error  // Underlying error
	Context     any    // Additional context for logging
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error for user-caused issues (validation, insufficient funds, etc)
func NewUserError(userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
		Ephemeral:   true,
	}
}

// NewSystemError creates an error for system issues (database, unexpected state, etc)
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: "Something went wrong. Please try again later.",
		LogMessage:  logMessage,
		Ephemeral:   true,
		Err:         err,
	}
}

// UserMessageFor turns an operation error into the text shown to the player
func UserMessageFor(err error) string {
	var botErr *BotError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &botErr):
		return botErr.UserMessage
	case errors.Is(err, entities.ErrInvalidBet):
		return "Your bet must be at least 1 " + Currency + "."
	case errors.Is(err, entities.ErrInsufficientBalance):
		return "You don't have enough " + Currency + " for that bet."
	case errors.Is(err, entities.ErrAlreadyClaimed):
		return "You already claimed your daily reward today. Come back tomorrow!"
	case errors.Is(err, entities.ErrSessionExpired):
		return "This game has ended. Start a new one with a slash command."
	case errors.Is(err, application.ErrInvalidAmount):
		return "The amount must be a positive number."
	default:
		return "Something went wrong. Please try again later."
	}
}

// RespondWithError sends an error message as an interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// FollowUpWithError sends an error message as a follow-up to a deferred interaction
func FollowUpWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Content: fmt.Sprintf("❌ %s", message),
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Errorf("Error sending follow-up error message: %v", err)
	}
}

// HandleError logs err and shows the player the matching message.
// Expected outcomes like an insufficient balance are not logged as errors.
func HandleError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, deferred bool) {
	fields := log.Fields{
		"user_id": InteractionUserID(i),
		"error":   err.Error(),
	}
	if i.Type == discordgo.InteractionApplicationCommand {
		fields["command"] = i.ApplicationCommandData().Name
	}

	var botErr *BotError
	switch {
	case errors.As(err, &botErr):
		fields["user_message"] = botErr.UserMessage
		fields["context"] = botErr.Context
		log.WithFields(fields).Error(botErr.LogMessage)
	case entities.IsDomainError(err), errors.Is(err, application.ErrInvalidAmount):
		log.WithFields(fields).Debug("Rejected player action")
	default:
		log.WithFields(fields).Error("Unexpected error in bot command")
	}

	message := UserMessageFor(err)
	if deferred {
		FollowUpWithError(s, i, message)
	} else {
		RespondWithError(s, i, message)
	}
}
