package testutil

import (
	"context"
	"testing"

	"casinobot/database"
	"casinobot/domain/entities"

	"github.com/stretchr/testify/require"
)

// CreateTestAccount inserts an account with the given balance
func CreateTestAccount(t *testing.T, db *database.DB, discordID int64, username string, balance int64) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		`INSERT INTO accounts (discord_id, username, balance) VALUES ($1, $2, $3)`,
		discordID, username, balance)
	require.NoError(t, err)
}

// CreateTestBalanceHistory creates a test balance history entry
func CreateTestBalanceHistory(discordID int64, transactionType entities.TransactionType) *entities.BalanceHistory {
	return &entities.BalanceHistory{
		DiscordID:       discordID,
		BalanceBefore:   100,
		BalanceAfter:    90,
		ChangeAmount:    -10,
		TransactionType: transactionType,
		TransactionMetadata: map[string]any{
			"test": true,
		},
	}
}

// CreateTestBalanceHistoryWithAmounts creates a test balance history with specific amounts
func CreateTestBalanceHistoryWithAmounts(discordID int64, before, after, change int64, transactionType entities.TransactionType) *entities.BalanceHistory {
	history := CreateTestBalanceHistory(discordID, transactionType)
	history.BalanceBefore = before
	history.BalanceAfter = after
	history.ChangeAmount = change
	return history
}
