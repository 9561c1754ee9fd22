package blackjack

import (
	"context"
	"errors"
	"time"

	"casinobot/bot/common"
	"casinobot/bot/session"
	"casinobot/domain/entities"
	"casinobot/domain/games/blackjack"
	"casinobot/domain/interfaces"
	"casinobot/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const gameName = "blackjack"

// Casino is the part of the application the blackjack feature needs
type Casino interface {
	StartBlackjack(ctx context.Context, discordID int64, username string, bet int64) (*interfaces.BlackjackRound, error)
	ActBlackjack(ctx context.Context, discordID int64, hand *blackjack.Round, action interfaces.BlackjackAction) (*interfaces.BlackjackRound, error)
}

// Feature represents the blackjack feature
type Feature struct {
	session  *discordgo.Session
	casino   Casino
	sessions *session.Registry[Game]
}

// NewFeature creates a new blackjack feature instance
func NewFeature(s *discordgo.Session, casino Casino, timeout time.Duration) *Feature {
	f := &Feature{
		session:  s,
		casino:   casino,
		sessions: session.NewRegistry[Game](timeout),
	}
	f.sessions.OnExpire(f.expire)
	return f
}

// Sweep closes idle hands
func (f *Feature) Sweep() int {
	return f.sessions.Sweep()
}

// HandleCommand handles /blackjack
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, name, err := common.Player(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	bet, _ := common.IntOption(i.ApplicationCommandData().Options, "bet")

	round, err := f.casino.StartBlackjack(ctx, userID, name, bet)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	game := Game{Name: name, Hand: round.Hand, Balance: round.Result.NewBalance}
	key := f.sessions.Start(userID, game)
	observability.GetMetrics().UpdateActiveSessions(gameName, 1)

	if err := common.RespondWithEmbed(s, i, buildHandEmbed(game), buildComponents(key), false); err != nil {
		log.Errorf("Error responding to blackjack command: %v", err)
		return
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Warnf("Failed to look up blackjack message: %v", err)
		return
	}
	err = f.sessions.With(key, func(g *Game) (bool, error) {
		g.ChannelID = msg.ChannelID
		g.MessageID = msg.ID
		return false, nil
	})
	if err != nil {
		log.Debugf("Blackjack session %s ended before its message was recorded: %v", key.SessionID, err)
	}
}

// HandleInteraction handles hit and stand buttons
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	action, rawID, ok := common.ParseCustomID(customIDPrefix, i.MessageComponentData().CustomID)
	if !ok || (action != actionHit && action != actionStand) {
		common.RespondWithError(s, i, "Unknown blackjack interaction")
		return
	}

	userID, _, err := common.Player(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	sessionID, err := uuid.Parse(rawID)
	if err != nil {
		log.Warnf("Malformed blackjack session id %q: %v", rawID, err)
		common.RespondWithError(s, i, "This hand has ended.")
		return
	}
	key := session.Key{UserID: userID, SessionID: sessionID}

	settled := false
	err = f.sessions.With(key, func(g *Game) (bool, error) {
		round, err := f.casino.ActBlackjack(ctx, userID, g.Hand, interfaces.BlackjackAction(action))
		if err != nil {
			return false, err
		}
		g.Hand = round.Hand
		g.Balance = round.Result.NewBalance
		settled = round.Hand.IsSettled()

		var components []discordgo.MessageComponent
		if !settled {
			components = buildComponents(key)
		}
		err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{buildHandEmbed(*g)},
				Components: emptyIfNil(components),
			},
		})
		if err != nil {
			log.Errorf("Error updating blackjack message: %v", err)
		}
		return settled, nil
	})
	if err != nil {
		if errors.Is(err, entities.ErrSessionExpired) {
			common.RespondWithError(s, i, "This hand has ended. Deal a new one with /blackjack.")
			return
		}
		common.HandleError(s, i, err, false)
		return
	}

	if settled {
		observability.GetMetrics().UpdateActiveSessions(gameName, -1)
	}
}

// expire runs when a hand is abandoned; the stake was already taken
func (f *Feature) expire(key session.Key, g Game) {
	metrics := observability.GetMetrics()
	metrics.RecordSessionExpired(gameName)
	metrics.UpdateActiveSessions(gameName, -1)

	log.WithFields(log.Fields{
		"user_id":    key.UserID,
		"session_id": key.SessionID,
		"bet":        g.Hand.Bet,
	}).Info("Blackjack hand abandoned")

	if g.ChannelID == "" || g.MessageID == "" {
		return
	}

	embeds := []*discordgo.MessageEmbed{buildExpiredEmbed(g)}
	components := []discordgo.MessageComponent{}
	_, err := f.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    g.ChannelID,
		ID:         g.MessageID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		log.Warnf("Failed to close abandoned blackjack message %s: %v", g.MessageID, err)
	}
}

func emptyIfNil(components []discordgo.MessageComponent) []discordgo.MessageComponent {
	if components == nil {
		return []discordgo.MessageComponent{}
	}
	return components
}
