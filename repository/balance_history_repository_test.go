package repository

import (
	"context"
	"testing"

	"casinobot/domain/entities"
	"casinobot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceHistoryRepository_Record(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewBalanceHistoryRepository(testDB.DB)
	ctx := context.Background()
	testutil.CreateTestAccount(t, testDB.DB, 1001, "alice", 100)

	t.Run("successful record creation", func(t *testing.T) {
		history := testutil.CreateTestBalanceHistory(1001, entities.TransactionTypeSlotsBet)

		require.NoError(t, repo.Record(ctx, history))
		assert.NotZero(t, history.ID)
		assert.False(t, history.CreatedAt.IsZero())
	})

	t.Run("record with nil metadata", func(t *testing.T) {
		history := testutil.CreateTestBalanceHistory(1001, entities.TransactionTypeSlotsBet)
		history.TransactionMetadata = nil

		require.NoError(t, repo.Record(ctx, history))
		assert.NotZero(t, history.ID)
	})
}

func TestBalanceHistoryRepository_GetByUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewBalanceHistoryRepository(testDB.DB)
	ctx := context.Background()
	testutil.CreateTestAccount(t, testDB.DB, 1001, "alice", 100)
	testutil.CreateTestAccount(t, testDB.DB, 2002, "bob", 100)

	histories, err := repo.GetByUser(ctx, 1001, 10)
	require.NoError(t, err)
	assert.Empty(t, histories)

	for i := 0; i < 5; i++ {
		before := int64(100 - i*10)
		history := testutil.CreateTestBalanceHistoryWithAmounts(1001, before, before-10, -10, entities.TransactionTypeCoinflipBet)
		history.TransactionMetadata = map[string]any{"round": i}
		require.NoError(t, repo.Record(ctx, history))
	}
	require.NoError(t, repo.Record(ctx, testutil.CreateTestBalanceHistory(2002, entities.TransactionTypeSlotsBet)))

	histories, err = repo.GetByUser(ctx, 1001, 3)
	require.NoError(t, err)
	require.Len(t, histories, 3)

	// Newest first; JSON numbers come back as float64
	assert.Equal(t, float64(4), histories[0].TransactionMetadata["round"])
	assert.Equal(t, entities.TransactionTypeCoinflipBet, histories[0].TransactionType)
	for _, h := range histories {
		assert.Equal(t, int64(1001), h.DiscordID)
	}
}
