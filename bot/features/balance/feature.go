package balance

import (
	"context"
	"fmt"

	"casinobot/bot/common"
	"casinobot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Casino is the part of the application the balance feature needs
type Casino interface {
	Account(ctx context.Context, discordID int64, username string) (*entities.Account, error)
}

// Feature represents the balance feature
type Feature struct {
	session *discordgo.Session
	casino  Casino
}

// NewFeature creates a new balance feature instance
func NewFeature(s *discordgo.Session, casino Casino) *Feature {
	return &Feature{
		session: s,
		casino:  casino,
	}
}

// HandleCommand handles /balance
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, name, err := common.Player(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	// First lookup creates the account
	account, err := f.casino.Account(ctx, discordID, name)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	if err := common.RespondWithContent(s, i, balanceMessage(name, account.Balance), true); err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

// HandleInteraction is not used for balance (no button interactions)
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {}

func balanceMessage(name string, balance int64) string {
	return fmt.Sprintf("%s, your current balance: **%s**", name, common.FormatAmount(balance))
}
