package cmd

import (
	"context"
	"fmt"

	"casinobot/application"
	"casinobot/config"
	"casinobot/database"
	"casinobot/infrastructure"

	log "github.com/sirupsen/logrus"
)

// AddBalance credits a user from the command line. No subscribers run, so events are dropped.
func AddBalance(ctx context.Context, discordID, amount int64) error {
	cfg := config.Get()
	ConfigureLogging(cfg)

	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	uowFactory := infrastructure.NewUnitOfWorkFactory(db, infrastructure.NewNoopEventPublisher())
	casino := application.NewCasino(uowFactory, infrastructure.NewUserLocker(), nil, nil)

	account, err := casino.AddBalance(ctx, discordID, "", amount, 0)
	if err != nil {
		return fmt.Errorf("failed to add balance: %w", err)
	}

	log.WithFields(log.Fields{
		"discord_id":  discordID,
		"amount":      amount,
		"new_balance": account.Balance,
	}).Info("Balance added")
	return nil
}
