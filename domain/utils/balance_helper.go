package utils

import (
	"context"
	"fmt"

	"casinobot/domain/entities"
	"casinobot/domain/events"
	"casinobot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// RecordBalanceChange records a balance history entry and emits the matching events.
// Every balance mutation in the system goes through here.
func RecordBalanceChange(ctx context.Context, balanceHistoryRepo interfaces.BalanceHistoryRepository, eventPublisher interfaces.EventPublisher, history *entities.BalanceHistory) error {
	if err := balanceHistoryRepo.Record(ctx, history); err != nil {
		return fmt.Errorf("failed to record balance history: %w", err)
	}

	username, _ := history.TransactionMetadata["username"].(string)
	event := events.BalanceChangeEvent{
		UserID:          history.DiscordID,
		Username:        username,
		OldBalance:      history.BalanceBefore,
		NewBalance:      history.BalanceAfter,
		TransactionType: history.TransactionType,
		ChangeAmount:    history.ChangeAmount,
	}
	log.WithFields(log.Fields{
		"userID":          event.UserID,
		"oldBalance":      event.OldBalance,
		"newBalance":      event.NewBalance,
		"transactionType": event.TransactionType,
		"changeAmount":    event.ChangeAmount,
	}).Debug("Publishing BalanceChangeEvent")
	if err := eventPublisher.Publish(event); err != nil {
		log.WithError(err).Error("Failed to publish balance change event")
	}

	if history.TransactionType == entities.TransactionTypeInitial {
		created := events.AccountCreatedEvent{
			UserID:         history.DiscordID,
			Username:       username,
			InitialBalance: history.BalanceAfter,
		}
		if err := eventPublisher.Publish(created); err != nil {
			log.WithError(err).Error("Failed to publish account created event")
		}
	}

	return nil
}
