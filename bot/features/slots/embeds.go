package slots

import (
	"fmt"

	"casinobot/bot/common"
	"casinobot/bot/session"
	"casinobot/domain/games/slots"

	"github.com/bwmarrin/discordgo"
)

const customIDPrefix = "slots"

// Button actions
const (
	actionDown = "down"
	actionUp   = "up"
	actionSpin = "spin"
	actionStop = "stop"
)

// buildSpinningEmbed shows one animation frame
func buildSpinningEmbed(name string, bet int64, grid slots.Grid) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎰 Slots",
		Description: common.FormatGrid(grid),
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Player", Value: name, Inline: true},
			{Name: "Bet", Value: common.FormatAmount(bet), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Spinning..."},
	}
}

// buildGameEmbed shows the last spin and the running session
func buildGameEmbed(g Game) *discordgo.MessageEmbed {
	color := common.ColorDanger
	if g.LastWinnings > 0 {
		color = common.ColorSuccess
	}

	return &discordgo.MessageEmbed{
		Title:       "🎰 Slots",
		Description: common.FormatGrid(g.LastGrid),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Result", Value: describeSpin(g), Inline: false},
			{Name: "Bet", Value: common.FormatAmount(g.Bet), Inline: true},
			{Name: "Balance", Value: common.FormatAmount(g.Balance), Inline: true},
			{Name: "Session", Value: fmt.Sprintf("%d spins, %s", g.Spins, common.FormatNet(g.Net)), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: g.Name},
	}
}

// buildClosedEmbed is the final state of a stopped or expired session
func buildClosedEmbed(g Game, footer string) *discordgo.MessageEmbed {
	embed := buildGameEmbed(g)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	return embed
}

func describeSpin(g Game) string {
	if g.LastLine == "" {
		return "No winning line. Better luck next spin!"
	}
	return fmt.Sprintf("%s on the %s pays %d× → **%s**",
		g.LastSymbol, g.LastLine, g.LastMultiplier, common.FormatAmount(g.LastWinnings))
}

// buildComponents renders the bet controls. Buttons that would be rejected are disabled.
func buildComponents(key session.Key, g Game) []discordgo.MessageComponent {
	id := key.SessionID.String()
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "-1",
					Style:    discordgo.SecondaryButton,
					CustomID: common.CustomID(customIDPrefix, actionDown, id),
					Disabled: g.Bet <= common.MinBetAmount,
				},
				discordgo.Button{
					Label:    "+1",
					Style:    discordgo.SecondaryButton,
					CustomID: common.CustomID(customIDPrefix, actionUp, id),
					Disabled: g.Bet+1 > g.Balance,
				},
				discordgo.Button{
					Label:    "Spin",
					Style:    discordgo.SuccessButton,
					Emoji:    &discordgo.ComponentEmoji{Name: "🎰"},
					CustomID: common.CustomID(customIDPrefix, actionSpin, id),
					Disabled: g.Bet > g.Balance,
				},
				discordgo.Button{
					Label:    "Stop",
					Style:    discordgo.DangerButton,
					CustomID: common.CustomID(customIDPrefix, actionStop, id),
				},
			},
		},
	}
}
