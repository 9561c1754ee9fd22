package leaderboard

import (
	"fmt"
	"strings"

	"casinobot/bot/common"
	"casinobot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

var medals = []string{"🥇", "🥈", "🥉"}

func buildLeaderboardEmbed(entries []*entities.LeaderboardEntry) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🏆 Leaderboard",
		Color: common.ColorGold,
	}

	if len(entries) == 0 {
		embed.Description = "Nobody has played yet. Be the first!"
		return embed
	}

	var b strings.Builder
	for i, entry := range entries {
		prefix := fmt.Sprintf("**%d.**", entry.Rank)
		if i < len(medals) {
			prefix = medals[i]
		}
		fmt.Fprintf(&b, "%s %s: **%s**\n", prefix, common.GetUserMention(entry.DiscordID), common.FormatAmount(entry.Balance))
	}
	embed.Description = strings.TrimSuffix(b.String(), "\n")
	return embed
}
