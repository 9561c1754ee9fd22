package slots

import (
	"context"
	"time"

	"casinobot/bot/common"
	"casinobot/bot/session"
	"casinobot/domain/interfaces"
	"casinobot/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const gameName = "slots"

// Casino is the part of the application the slots feature needs
type Casino interface {
	PlaySlots(ctx context.Context, discordID int64, username string, bet int64) (*interfaces.SlotsRound, error)
}

// Feature represents the slots feature
type Feature struct {
	session  *discordgo.Session
	casino   Casino
	sessions *session.Registry[Game]
}

// NewFeature creates a new slots feature instance
func NewFeature(s *discordgo.Session, casino Casino, timeout time.Duration) *Feature {
	f := &Feature{
		session:  s,
		casino:   casino,
		sessions: session.NewRegistry[Game](timeout),
	}
	f.sessions.OnExpire(f.expire)
	return f
}

// Sweep closes idle sessions
func (f *Feature) Sweep() int {
	return f.sessions.Sweep()
}

// HandleCommand handles /slots
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleSlots(s, i)
}

// HandleInteraction routes slots buttons
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	action, rawID, ok := common.ParseCustomID(customIDPrefix, i.MessageComponentData().CustomID)
	if !ok {
		common.RespondWithError(s, i, "Unknown slots interaction")
		return
	}

	userID, name, err := common.Player(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	sessionID, err := uuid.Parse(rawID)
	if err != nil {
		log.Warnf("Malformed slots session id %q: %v", rawID, err)
		common.RespondWithError(s, i, "This game has ended.")
		return
	}
	key := session.Key{UserID: userID, SessionID: sessionID}

	switch action {
	case actionUp:
		f.handleBetChange(s, i, key, 1)
	case actionDown:
		f.handleBetChange(s, i, key, -1)
	case actionSpin:
		f.handleSpin(s, i, key, name)
	case actionStop:
		f.handleStop(s, i, key)
	default:
		log.Warnf("Unknown slots action: %s", action)
		common.RespondWithError(s, i, "Unknown slots interaction")
	}
}

// expire runs when a session is dropped for inactivity
func (f *Feature) expire(key session.Key, g Game) {
	metrics := observability.GetMetrics()
	metrics.RecordSessionExpired(gameName)
	metrics.UpdateActiveSessions(gameName, -1)

	log.WithFields(log.Fields{
		"user_id":    key.UserID,
		"session_id": key.SessionID,
		"spins":      g.Spins,
	}).Debug("Slots session expired")

	if g.ChannelID == "" || g.MessageID == "" {
		return
	}

	embeds := []*discordgo.MessageEmbed{buildClosedEmbed(g, "Session expired")}
	components := []discordgo.MessageComponent{}
	_, err := f.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    g.ChannelID,
		ID:         g.MessageID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		log.Warnf("Failed to close expired slots message %s: %v", g.MessageID, err)
	}
}
