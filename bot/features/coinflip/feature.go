package coinflip

import (
	"context"
	"fmt"

	"casinobot/bot/common"
	"casinobot/config"
	"casinobot/domain/games/coinflip"
	"casinobot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Casino is the part of the application the coinflip feature needs
type Casino interface {
	PlayCoinflip(ctx context.Context, discordID int64, username string, guess coinflip.Side, bet int64) (*interfaces.CoinflipRound, error)
}

// Feature represents the coinflip feature
type Feature struct {
	session *discordgo.Session
	casino  Casino
}

// NewFeature creates a new coinflip feature instance
func NewFeature(s *discordgo.Session, casino Casino) *Feature {
	return &Feature{
		session: s,
		casino:  casino,
	}
}

// HandleCommand handles /coinflip
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, name, err := common.Player(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	options := i.ApplicationCommandData().Options
	rawGuess, _ := common.StringOption(options, "guess")
	guess, err := coinflip.ParseSide(rawGuess)
	if err != nil {
		common.HandleError(s, i, common.NewUserError("Pick heads or tails.", err.Error()), false)
		return
	}
	bet, _ := common.IntOption(options, "bet")

	round, err := f.casino.PlayCoinflip(ctx, userID, name, guess, bet)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring coinflip response: %v", err)
		return
	}

	cfg := config.Get()
	err = common.Animate(cfg.AnimationFrames, cfg.AnimationDelay, func(n int) error {
		return common.UpdateMessage(s, i, buildFlippingEmbed(name, bet, n), nil)
	})
	if err != nil {
		log.Errorf("Error animating coinflip: %v", err)
		return
	}

	if err := common.UpdateMessage(s, i, buildResultEmbed(name, round), nil); err != nil {
		log.Errorf("Error showing coinflip result: %v", err)
	}
}

// HandleInteraction is not used for coinflip (no button interactions)
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {}

// buildFlippingEmbed alternates faces while the coin is in the air
func buildFlippingEmbed(name string, bet int64, frame int) *discordgo.MessageEmbed {
	face := coinflip.Heads
	if frame%2 == 1 {
		face = coinflip.Tails
	}
	return &discordgo.MessageEmbed{
		Title:       "🪙 Coinflip",
		Description: fmt.Sprintf("The coin spins... **%s**", faceLabel(face)),
		Color:       common.ColorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%s bet %s", name, common.FormatAmount(bet))},
	}
}

func buildResultEmbed(name string, round *interfaces.CoinflipRound) *discordgo.MessageEmbed {
	outcome := round.Outcome

	embed := &discordgo.MessageEmbed{
		Title: "🪙 Coinflip",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Guess", Value: faceLabel(outcome.Guess), Inline: true},
			{Name: "Result", Value: faceLabel(outcome.Result), Inline: true},
			{Name: "Balance", Value: common.FormatAmount(round.Result.NewBalance), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: name},
	}

	if outcome.Won() {
		embed.Color = common.ColorSuccess
		embed.Description = fmt.Sprintf("🎉 You called it! **%s**", common.FormatNet(outcome.Net))
	} else {
		embed.Color = common.ColorDanger
		embed.Description = fmt.Sprintf("Not this time. **%s**", common.FormatNet(outcome.Net))
	}
	return embed
}

func faceLabel(side coinflip.Side) string {
	if side == coinflip.Heads {
		return "Heads"
	}
	return "Tails"
}
