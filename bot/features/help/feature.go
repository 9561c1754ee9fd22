package help

import (
	"fmt"

	"casinobot/bot/common"
	"casinobot/config"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature serves the static /help and /tos texts
type Feature struct {
	session *discordgo.Session
}

// NewFeature creates a new help feature instance
func NewFeature(s *discordgo.Session) *Feature {
	return &Feature{session: s}
}

// HandleCommand handles /help and /tos
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var embed *discordgo.MessageEmbed
	switch i.ApplicationCommandData().Name {
	case "tos":
		embed = buildTermsEmbed()
	default:
		embed = buildHelpEmbed(config.Get())
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, true); err != nil {
		log.Errorf("Error responding to %s command: %v", i.ApplicationCommandData().Name, err)
	}
}

// HandleInteraction is not used for help (no button interactions)
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {}

func buildHelpEmbed(cfg *config.Config) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎲 Casino commands",
		Description: fmt.Sprintf("Everyone starts with %s. Bets are whole %s, at least 1.", common.FormatAmount(cfg.StartingBalance), common.Currency),
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "/balance", Value: "Show your balance."},
			{Name: "/slots <bet>", Value: "Spin a 3×3 machine. Three of a kind on any row, column or diagonal pays. Adjust your bet with the buttons and keep spinning."},
			{Name: "/blackjack <bet>", Value: "Play a hand against the dealer. Dealer stands on 17. A win pays 1:1."},
			{Name: "/coinflip <guess> <bet>", Value: "Call heads or tails. Double or nothing."},
			{Name: "/daily_reward", Value: fmt.Sprintf("Claim %s once per day.", common.FormatAmount(cfg.DailyReward))},
			{Name: "/leaderboard", Value: "The richest players."},
			{Name: "/profile [user]", Value: "Balance, stats and challenge progress."},
			{Name: "/tos", Value: "Terms of service."},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Game buttons stop working after %s of inactivity.", cfg.SessionTimeout),
		},
	}
}

func buildTermsEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📜 Terms of service",
		Description: "Coins are play money. They have no cash value and cannot be bought, sold or exchanged.\n\n" +
			"Balances may be reset or adjusted by administrators at any time.\n\n" +
			"Abandoned blackjack hands forfeit their stake.\n\n" +
			"By playing you agree to these terms.",
		Color: common.ColorInfo,
	}
}
