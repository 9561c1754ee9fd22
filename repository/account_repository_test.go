package repository

import (
	"context"
	"testing"
	"time"

	"casinobot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateIfAbsent(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates missing account", func(t *testing.T) {
		created, err := repo.CreateIfAbsent(ctx, 1001, "alice", 100)
		require.NoError(t, err)
		assert.True(t, created)

		account, err := repo.Get(ctx, 1001)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "alice", account.Username)
		assert.Equal(t, int64(100), account.Balance)
		assert.Nil(t, account.LastClaimDate)
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		require.NoError(t, repo.UpdateBalance(ctx, 1001, 40))

		created, err := repo.CreateIfAbsent(ctx, 1001, "alice2", 100)
		require.NoError(t, err)
		assert.False(t, created)

		account, err := repo.Get(ctx, 1001)
		require.NoError(t, err)
		assert.Equal(t, int64(40), account.Balance)
		assert.Equal(t, "alice", account.Username)
	})
}

func TestAccountRepository_GetMissing(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewAccountRepository(testDB.DB)

	account, err := repo.Get(context.Background(), 424242)
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestAccountRepository_UpdateBalance_MissingAccount(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewAccountRepository(testDB.DB)

	err := repo.UpdateBalance(context.Background(), 424242, 10)
	assert.Error(t, err)
}

func TestAccountRepository_UsernameAndClaimDate(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()
	testutil.CreateTestAccount(t, testDB.DB, 1001, "alice", 100)

	require.NoError(t, repo.UpdateUsername(ctx, 1001, "alice_renamed"))

	claimDate := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetLastClaimDate(ctx, 1001, claimDate))

	account, err := repo.Get(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "alice_renamed", account.Username)
	require.NotNil(t, account.LastClaimDate)
	assert.True(t, account.HasClaimedOn(claimDate))
}

func TestAccountRepository_GetTopByBalance(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	testutil.CreateTestAccount(t, testDB.DB, 1, "low", 10)
	testutil.CreateTestAccount(t, testDB.DB, 2, "high", 900)
	testutil.CreateTestAccount(t, testDB.DB, 3, "mid", 300)
	testutil.CreateTestAccount(t, testDB.DB, 4, "tied", 300)

	accounts, err := repo.GetTopByBalance(ctx, 3)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, int64(2), accounts[0].DiscordID)
	assert.Equal(t, int64(3), accounts[1].DiscordID)
	assert.Equal(t, int64(4), accounts[2].DiscordID)
}
