package leaderboard

import (
	"bytes"
	"context"

	"casinobot/bot/common"
	"casinobot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const imageName = "leaderboard.png"

// Casino is the part of the application the leaderboard feature needs
type Casino interface {
	Leaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
}

// Feature represents the leaderboard feature
type Feature struct {
	session   *discordgo.Session
	casino    Casino
	generator *ImageGenerator
}

// NewFeature creates a new leaderboard feature instance
func NewFeature(s *discordgo.Session, casino Casino) *Feature {
	return &Feature{
		session:   s,
		casino:    casino,
		generator: NewImageGenerator(),
	}
}

// HandleCommand handles /leaderboard
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	// Rendering can take a moment
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring leaderboard response: %v", err)
		return
	}

	// Zero limit uses the configured size
	entries, err := f.casino.Leaderboard(ctx, 0)
	if err != nil {
		common.HandleError(s, i, err, true)
		return
	}

	embed := buildLeaderboardEmbed(entries)
	edit := &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}

	imageData, err := f.generator.Generate(entries)
	if err != nil {
		log.WithError(err).Error("Failed to generate leaderboard image")
	} else {
		embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + imageName}
		edit.Files = []*discordgo.File{{
			Name:        imageName,
			ContentType: "image/png",
			Reader:      bytes.NewReader(imageData),
		}}
	}

	if _, err := s.InteractionResponseEdit(i.Interaction, edit); err != nil {
		log.Errorf("Error sending leaderboard: %v", err)
	}
}

// HandleInteraction is not used for the leaderboard (no button interactions)
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {}
