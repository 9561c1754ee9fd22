package profile

import (
	"context"

	"casinobot/bot/common"
	"casinobot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Casino is the part of the application the profile feature needs
type Casino interface {
	Profile(ctx context.Context, discordID int64, username string) (*entities.Profile, error)
}

// Feature represents the profile feature
type Feature struct {
	session *discordgo.Session
	casino  Casino
}

// NewFeature creates a new profile feature instance
func NewFeature(s *discordgo.Session, casino Casino) *Feature {
	return &Feature{
		session: s,
		casino:  casino,
	}
}

// HandleCommand handles /profile [user]
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, name, err := common.Player(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	// Looking at someone else's profile
	if target, ok := common.UserOption(s, i.ApplicationCommandData().Options, "user"); ok && target != nil {
		if target.Bot {
			common.RespondWithError(s, i, "Bots don't play at this casino.")
			return
		}
		discordID, err = common.ParseUserID(target.ID)
		if err != nil {
			common.HandleError(s, i, common.NewSystemError(err, "failed to parse profile target"), false)
			return
		}
		name = target.Username
		if target.GlobalName != "" {
			name = target.GlobalName
		}
	}

	profile, err := f.casino.Profile(ctx, discordID, name)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	if err := common.RespondWithEmbed(s, i, buildProfileEmbed(name, profile), nil, false); err != nil {
		log.Errorf("Error responding to profile command: %v", err)
	}
}

// HandleInteraction is not used for profile (no button interactions)
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {}
