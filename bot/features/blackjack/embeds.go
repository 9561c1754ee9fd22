package blackjack

import (
	"fmt"

	"casinobot/bot/common"
	"casinobot/bot/session"
	"casinobot/domain/games/blackjack"

	"github.com/bwmarrin/discordgo"
)

const customIDPrefix = "blackjack"

const (
	actionHit   = "hit"
	actionStand = "stand"
)

// Game is the state of one blackjack hand
type Game struct {
	Name      string
	Hand      *blackjack.Round
	Balance   int64
	ChannelID string
	MessageID string
}

// buildHandEmbed renders the table. The dealer's hole card stays hidden until the hand settles.
func buildHandEmbed(g Game) *discordgo.MessageEmbed {
	hand := g.Hand

	dealer := common.FormatHiddenHand(hand.Dealer)
	if hand.IsSettled() {
		dealer = common.FormatHand(hand.Dealer)
	}

	embed := &discordgo.MessageEmbed{
		Title: "🃏 Blackjack",
		Color: outcomeColor(hand.Outcome),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Your hand", Value: common.FormatHand(hand.Player), Inline: true},
			{Name: "Dealer", Value: dealer, Inline: true},
			{Name: "Bet", Value: common.FormatAmount(hand.Bet), Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: g.Name},
	}

	if hand.IsSettled() {
		embed.Description = describeOutcome(hand)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Balance", Value: common.FormatAmount(g.Balance), Inline: true,
		})
	} else {
		embed.Description = "Hit or stand?"
	}

	return embed
}

// buildExpiredEmbed is shown when a hand is abandoned
func buildExpiredEmbed(g Game) *discordgo.MessageEmbed {
	embed := buildHandEmbed(g)
	embed.Color = common.ColorWarning
	embed.Description = fmt.Sprintf("Hand abandoned. Your stake of %s was forfeited.", common.FormatAmount(g.Hand.Bet))
	return embed
}

func describeOutcome(hand *blackjack.Round) string {
	switch hand.Outcome {
	case blackjack.OutcomeWin:
		return fmt.Sprintf("🎉 You win **%s**!", common.FormatAmount(hand.Net()))
	case blackjack.OutcomePush:
		return "🤝 Push. Your bet is returned."
	case blackjack.OutcomeBust:
		return fmt.Sprintf("💥 Bust! You lose %s.", common.FormatAmount(hand.Bet))
	case blackjack.OutcomeLoss:
		return fmt.Sprintf("Dealer wins. You lose %s.", common.FormatAmount(hand.Bet))
	}
	return ""
}

func outcomeColor(outcome blackjack.Outcome) int {
	switch outcome {
	case blackjack.OutcomeWin:
		return common.ColorSuccess
	case blackjack.OutcomePush:
		return common.ColorWarning
	case blackjack.OutcomeLoss, blackjack.OutcomeBust:
		return common.ColorDanger
	}
	return common.ColorPrimary
}

func buildComponents(key session.Key) []discordgo.MessageComponent {
	id := key.SessionID.String()
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Hit",
					Style:    discordgo.PrimaryButton,
					CustomID: common.CustomID(customIDPrefix, actionHit, id),
				},
				discordgo.Button{
					Label:    "Stand",
					Style:    discordgo.SecondaryButton,
					CustomID: common.CustomID(customIDPrefix, actionStand, id),
				},
			},
		},
	}
}
