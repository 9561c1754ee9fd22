package application

import (
	"context"

	"casinobot/domain/events"
	"casinobot/domain/interfaces"
	"casinobot/infrastructure"
	"casinobot/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// EventSubscriber is the in-process bus as seen by the application layer
type EventSubscriber interface {
	Subscribe(eventType events.EventType, handler infrastructure.Handler)
}

// RoundMetrics is the slice of the metrics provider fed by events
type RoundMetrics interface {
	RecordRound(game, outcome string, bet, winnings int64)
	RecordBalanceTransaction(transactionType string)
}

// RegisterApplicationSubscriptions wires committed domain events to metrics and the leaderboard cache.
// metrics and cache may be nil.
func RegisterApplicationSubscriptions(subscriber EventSubscriber, metrics RoundMetrics, cache interfaces.LeaderboardCache) {
	if metrics != nil {
		subscriber.Subscribe(events.EventTypeRoundSettled, func(ctx context.Context, event events.Event) {
			settled, ok := event.(events.RoundSettledEvent)
			if !ok {
				return
			}
			metrics.RecordRound(string(settled.Game), roundOutcome(settled), settled.Bet, settled.Winnings)
		})
	}

	subscriber.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		change, ok := event.(events.BalanceChangeEvent)
		if !ok {
			return
		}
		if metrics != nil {
			metrics.RecordBalanceTransaction(string(change.TransactionType))
		}
		if cache == nil {
			return
		}
		if err := cache.SetBalance(ctx, change.UserID, change.Username, change.NewBalance); err != nil {
			log.WithError(err).WithField("userID", change.UserID).Warn("Failed to update leaderboard cache")
		}
	})

	subscriber.Subscribe(events.EventTypeDailyRewardClaimed, func(ctx context.Context, event events.Event) {
		claimed, ok := event.(events.DailyRewardClaimedEvent)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"userID":     claimed.UserID,
			"reward":     claimed.Reward,
			"newBalance": claimed.NewBalance,
		}).Info("Daily reward claimed")
	})
}

func roundOutcome(e events.RoundSettledEvent) string {
	switch {
	case e.Winnings > e.Bet:
		return observability.OutcomeWin
	case e.Winnings == e.Bet:
		return observability.OutcomePush
	default:
		return observability.OutcomeLoss
	}
}
