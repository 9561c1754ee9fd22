package slots

import (
	"context"
	"errors"

	"casinobot/bot/common"
	"casinobot/bot/session"
	"casinobot/config"
	"casinobot/domain/entities"
	"casinobot/domain/games"
	"casinobot/domain/games/slots"
	"casinobot/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleSlots(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, name, err := common.Player(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	bet, _ := common.IntOption(i.ApplicationCommandData().Options, "bet")

	// The first spin is settled before anything is shown
	round, err := f.casino.PlaySlots(ctx, userID, name, bet)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	game := Game{Name: name, Bet: bet}
	game.apply(round)
	key := f.sessions.Start(userID, game)
	observability.GetMetrics().UpdateActiveSessions(gameName, 1)

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring slots response: %v", err)
		return
	}

	if err := f.reveal(s, i, key, game); err != nil {
		log.Errorf("Error rendering slots spin: %v", err)
		return
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Warnf("Failed to look up slots message: %v", err)
		return
	}

	err = f.sessions.With(key, func(g *Game) (bool, error) {
		g.ChannelID = msg.ChannelID
		g.MessageID = msg.ID
		return false, nil
	})
	if err != nil {
		log.Debugf("Slots session %s ended before its message was recorded: %v", key.SessionID, err)
	}
}

func (f *Feature) handleSpin(s *discordgo.Session, i *discordgo.InteractionCreate, key session.Key, name string) {
	ctx := context.Background()

	err := f.sessions.With(key, func(g *Game) (bool, error) {
		round, err := f.casino.PlaySlots(ctx, key.UserID, name, g.Bet)
		if err != nil {
			return false, err
		}
		g.apply(round)
		if i.Message != nil {
			g.ChannelID = i.Message.ChannelID
			g.MessageID = i.Message.ID
		}

		if err := common.DeferUpdate(s, i); err != nil {
			log.Errorf("Error acknowledging slots spin: %v", err)
			return false, nil
		}
		if err := f.reveal(s, i, key, *g); err != nil {
			log.Errorf("Error rendering slots spin: %v", err)
		}
		return false, nil
	})
	if err != nil {
		f.respondSessionError(s, i, err)
	}
}

func (f *Feature) handleBetChange(s *discordgo.Session, i *discordgo.InteractionCreate, key session.Key, delta int64) {
	err := f.sessions.With(key, func(g *Game) (bool, error) {
		g.adjustBet(delta)
		f.updateMessage(s, i, buildGameEmbed(*g), buildComponents(key, *g))
		return false, nil
	})
	if err != nil {
		f.respondSessionError(s, i, err)
	}
}

func (f *Feature) handleStop(s *discordgo.Session, i *discordgo.InteractionCreate, key session.Key) {
	err := f.sessions.With(key, func(g *Game) (bool, error) {
		f.updateMessage(s, i, buildClosedEmbed(*g, "Thanks for playing!"), []discordgo.MessageComponent{})
		return true, nil
	})
	if err != nil {
		f.respondSessionError(s, i, err)
		return
	}
	observability.GetMetrics().UpdateActiveSessions(gameName, -1)
}

// reveal animates random grids on the interaction message and settles on the real one
func (f *Feature) reveal(s *discordgo.Session, i *discordgo.InteractionCreate, key session.Key, g Game) error {
	cfg := config.Get()

	err := common.Animate(cfg.AnimationFrames, cfg.AnimationDelay, func(int) error {
		frame := buildSpinningEmbed(g.Name, g.Bet, slots.GenerateGrid(games.DefaultRandom))
		return common.UpdateMessage(s, i, frame, []discordgo.MessageComponent{})
	})
	if err != nil {
		return err
	}

	return common.UpdateMessage(s, i, buildGameEmbed(g), buildComponents(key, g))
}

// updateMessage replaces the clicked message in place
func (f *Feature) updateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		log.Errorf("Error updating slots message: %v", err)
	}
}

func (f *Feature) respondSessionError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	if errors.Is(err, entities.ErrSessionExpired) {
		common.RespondWithError(s, i, "This slots session has ended. Start a new one with /slots.")
		return
	}
	common.HandleError(s, i, err, false)
}
