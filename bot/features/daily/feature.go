package daily

import (
	"context"
	"fmt"
	"time"

	"casinobot/bot/common"
	"casinobot/config"
	"casinobot/domain/entities"
	"casinobot/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Casino is the part of the application the daily reward feature needs
type Casino interface {
	ClaimDaily(ctx context.Context, discordID int64, username string) (*entities.Account, error)
}

// Feature represents the daily reward feature
type Feature struct {
	session *discordgo.Session
	casino  Casino
	now     func() time.Time
}

// NewFeature creates a new daily reward feature instance
func NewFeature(s *discordgo.Session, casino Casino) *Feature {
	return &Feature{
		session: s,
		casino:  casino,
		now:     time.Now,
	}
}

// HandleCommand handles /daily_reward
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, name, err := common.Player(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	account, err := f.casino.ClaimDaily(ctx, discordID, name)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	cfg := config.Get()
	embed := buildClaimEmbed(name, cfg.DailyReward, account.Balance, utils.NextDailyWindow(f.now(), cfg.Location()))
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to daily reward command: %v", err)
	}
}

// HandleInteraction is not used for the daily reward (no button interactions)
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {}

func buildClaimEmbed(name string, reward, balance int64, next time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎁 Daily Reward",
		Description: fmt.Sprintf("%s claimed **%s**!", name, common.FormatAmount(reward)),
		Color:       common.ColorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: common.FormatAmount(balance), Inline: true},
			{Name: "Next reward", Value: common.FormatDiscordTimestamp(next, "R"), Inline: true},
		},
	}
}
