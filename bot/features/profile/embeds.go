package profile

import (
	"fmt"
	"strings"

	"casinobot/bot/common"
	"casinobot/domain/entities"
	"casinobot/domain/utils"

	"github.com/bwmarrin/discordgo"
)

func buildProfileEmbed(name string, p *entities.Profile) *discordgo.MessageEmbed {
	general := p.General
	if general == nil {
		general = &entities.GameStats{}
	}
	bj := p.Blackjack
	if bj == nil {
		bj = &entities.GameStats{}
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📇 %s", name),
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "💰 Balance",
				Value:  common.FormatAmount(p.Account.Balance),
				Inline: false,
			},
			{
				Name:   "🎰 All games",
				Value:  formatStats(general),
				Inline: true,
			},
			{
				Name:   "🃏 Blackjack",
				Value:  formatStats(bj),
				Inline: true,
			},
		},
	}

	symbol := general.MostCommonSymbol
	if symbol == "" {
		symbol = "None yet"
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Most common symbol",
		Value:  symbol,
		Inline: false,
	})

	if p.Challenge != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🏆 Challenges",
			Value:  fmt.Sprintf("Today: **%d** wins\nThis week: **%d** wins", p.Challenge.DailyWins, p.Challenge.WeeklyWins),
			Inline: false,
		})
	}

	return embed
}

func formatStats(s *entities.GameStats) string {
	if s.GamesPlayed == 0 {
		return "No games played"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Played: **%d**\n", s.GamesPlayed)
	fmt.Fprintf(&b, "Won: **%d** / Lost: **%d**\n", s.Wins, s.Losses)
	fmt.Fprintf(&b, "Win rate: **%s**\n", utils.FormatWinRate(s.WinRate()))
	fmt.Fprintf(&b, "Total earned: **%s**\n", common.FormatAmount(s.TotalEarned))
	fmt.Fprintf(&b, "Largest win: **%s**", common.FormatAmount(s.LargestWin))
	return b.String()
}
