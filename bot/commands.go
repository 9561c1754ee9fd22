package bot

import (
	"fmt"

	"casinobot/bot/common"

	"github.com/bwmarrin/discordgo"
)

// commandDefinitions lists every slash command the bot serves
func commandDefinitions() []*discordgo.ApplicationCommand {
	minBet := float64(common.MinBetAmount)
	minAmount := 1.0

	betOption := func(description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "bet",
			Description: description,
			Required:    true,
			MinValue:    &minBet,
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "slots",
			Description: "Spin the slot machine",
			Options:     []*discordgo.ApplicationCommandOption{betOption("Coins to bet per spin")},
		},
		{
			Name:        "blackjack",
			Description: "Play a hand of blackjack against the dealer",
			Options:     []*discordgo.ApplicationCommandOption{betOption("Coins to bet on the hand")},
		},
		{
			Name:        "coinflip",
			Description: "Double or nothing on a coin toss",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "guess",
					Description: "Heads or tails",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Heads", Value: "heads"},
						{Name: "Tails", Value: "tails"},
					},
				},
				betOption("Coins to bet on the toss"),
			},
		},
		{
			Name:        "daily_reward",
			Description: "Claim your daily coins",
		},
		{
			Name:        "leaderboard",
			Description: "Show the richest players",
		},
		{
			Name:        "profile",
			Description: "Show balance, stats and challenge progress",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Whose profile to show, yours by default",
					Required:    false,
				},
			},
		},
		{
			Name:        "add_balance",
			Description: "Credit coins to a player (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Player to credit",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Coins to add",
					Required:    true,
					MinValue:    &minAmount,
				},
			},
		},
		{
			Name:        "help",
			Description: "How to play",
		},
		{
			Name:        "tos",
			Description: "Terms of service",
		},
	}
}

// registerCommands registers all slash commands with Discord, scoped to the guild when one is configured
func (b *Bot) registerCommands() error {
	commands := commandDefinitions()

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands)
	if err != nil {
		return fmt.Errorf("cannot register %d commands: %w", len(commands), err)
	}

	return nil
}
