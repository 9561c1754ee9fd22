package admin

import (
	"context"
	"fmt"

	"casinobot/bot/common"
	"casinobot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Casino is the part of the application the admin feature needs
type Casino interface {
	AddBalance(ctx context.Context, discordID int64, username string, amount int64, grantedBy int64) (*entities.Account, error)
}

// Feature represents the balance administration feature
type Feature struct {
	session *discordgo.Session
	casino  Casino
}

// NewFeature creates a new admin feature instance
func NewFeature(s *discordgo.Session, casino Casino) *Feature {
	return &Feature{
		session: s,
		casino:  casino,
	}
}

// HandleCommand handles /add_balance <user> <amount>
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if !common.CanAdjustBalances(i) {
		common.RespondWithError(s, i, "You don't have permission to add balance.")
		return
	}

	adminID, _, err := common.Player(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	options := i.ApplicationCommandData().Options
	target, ok := common.UserOption(s, options, "user")
	if !ok || target == nil {
		common.RespondWithError(s, i, "Pick a user to credit.")
		return
	}
	amount, _ := common.IntOption(options, "amount")

	targetID, err := common.ParseUserID(target.ID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to parse add_balance target"), false)
		return
	}

	account, err := f.casino.AddBalance(ctx, targetID, target.Username, amount, adminID)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	if err := common.RespondWithContent(s, i, grantMessage(targetID, amount, account.Balance), false); err != nil {
		log.Errorf("Error responding to add_balance command: %v", err)
	}
}

// HandleInteraction is not used for admin commands (no button interactions)
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {}

func grantMessage(targetID, amount, balance int64) string {
	return fmt.Sprintf("✅ Added **%s** to %s. New balance: **%s**",
		common.FormatAmount(amount), common.GetUserMention(targetID), common.FormatAmount(balance))
}
