package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"casinobot/config"
	"casinobot/domain/entities"
	"casinobot/domain/events"
	"casinobot/domain/games/blackjack"
	"casinobot/domain/interfaces"
	"casinobot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64            { return r.f }
func (r fixedRandom) IntN(int) int                { return r.n }
func (r fixedRandom) Shuffle(int, func(i, j int)) {}

// recordingLocker tracks which users were locked and whether every lock was released
type recordingLocker struct {
	mu     sync.Mutex
	locked []int64
	held   int
}

func (l *recordingLocker) Lock(discordID int64) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locked = append(l.locked, discordID)
	l.held++
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.held--
	}
}

var casinoNow = time.Date(2024, 5, 15, 15, 0, 0, 0, time.UTC)

func newCasinoForTest(t *testing.T, rng fixedRandom, cache interfaces.LeaderboardCache) (*Casino, *testhelpers.MockUnitOfWork, *testhelpers.MockUnitOfWorkFactory, *recordingLocker) {
	config.SetTestConfig(config.NewTestConfig())
	t.Cleanup(config.ResetConfig)

	uow := testhelpers.NewMockUnitOfWork()
	factory := &testhelpers.MockUnitOfWorkFactory{UoW: uow}
	locker := &recordingLocker{}

	casino := NewCasino(factory, locker, cache, rng)
	casino.now = func() time.Time { return casinoNow }
	return casino, uow, factory, locker
}

func TestCasino_Account_Commits(t *testing.T) {
	casino, uow, _, locker := newCasinoForTest(t, fixedRandom{}, nil)
	ctx := context.Background()

	uow.AccountRepo.On("GetForUpdate", ctx, int64(1)).
		Return(&entities.Account{DiscordID: 1, Username: "alice", Balance: 100}, nil)

	account, err := casino.Account(ctx, 1, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance)
	assert.True(t, uow.Committed)
	assert.Equal(t, []int64{1}, locker.locked)
	assert.Zero(t, locker.held)
}

func TestCasino_PlaySlots_LossCommitsRound(t *testing.T) {
	casino, uow, _, _ := newCasinoForTest(t, fixedRandom{f: 0.99}, nil)
	ctx := context.Background()

	uow.AccountRepo.On("GetForUpdate", ctx, int64(1)).
		Return(&entities.Account{DiscordID: 1, Username: "alice", Balance: 100}, nil)
	uow.AccountRepo.On("UpdateBalance", ctx, int64(1), int64(90)).Return(nil)
	uow.BalanceHistoryRepo.On("Record", ctx, mock.AnythingOfType("*entities.BalanceHistory")).Return(nil)
	uow.StatsRepo.On("Get", ctx, int64(1), entities.StatsFamilyGeneral).Return(nil, nil)
	uow.StatsRepo.On("Upsert", ctx, mock.AnythingOfType("*entities.GameStats")).Return(nil)

	round, err := casino.PlaySlots(ctx, 1, "alice", 10)
	require.NoError(t, err)

	assert.Equal(t, int64(90), round.Result.NewBalance)
	assert.Equal(t, int64(-10), round.Result.Net)
	assert.Nil(t, round.Outcome.Line)
	assert.True(t, uow.Committed)

	require.Len(t, uow.Published, 2)
	assert.IsType(t, events.BalanceChangeEvent{}, uow.Published[0])
	assert.IsType(t, events.RoundSettledEvent{}, uow.Published[1])
	uow.ChallengeRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCasino_PlaySlots_DomainErrorIsNotWrapped(t *testing.T) {
	casino, uow, _, locker := newCasinoForTest(t, fixedRandom{}, nil)
	ctx := context.Background()

	uow.AccountRepo.On("GetForUpdate", ctx, int64(1)).
		Return(&entities.Account{DiscordID: 1, Username: "alice", Balance: 5}, nil)

	_, err := casino.PlaySlots(ctx, 1, "alice", 10)
	require.ErrorIs(t, err, entities.ErrInsufficientBalance)
	assert.False(t, errors.Is(err, entities.ErrStorageFailure))
	assert.False(t, uow.Committed)
	assert.True(t, uow.RolledBack)
	assert.Zero(t, locker.held)
}

func TestCasino_StorageFailureRollsBack(t *testing.T) {
	casino, uow, _, _ := newCasinoForTest(t, fixedRandom{}, nil)
	ctx := context.Background()

	uow.AccountRepo.On("GetForUpdate", ctx, int64(1)).Return(nil, errors.New("connection reset"))

	_, err := casino.PlayCoinflip(ctx, 1, "alice", "heads", 10)
	require.ErrorIs(t, err, entities.ErrStorageFailure)

	var storageErr *entities.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "coinflip", storageErr.Op)
	assert.True(t, uow.RolledBack)
	assert.Empty(t, uow.Published)
}

func TestCasino_BeginAndCommitFailures(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		casino, uow, _, _ := newCasinoForTest(t, fixedRandom{}, nil)
		uow.BeginErr = errors.New("pool exhausted")

		_, err := casino.Account(context.Background(), 1, "alice")
		assert.ErrorIs(t, err, entities.ErrStorageFailure)
	})

	t.Run("commit", func(t *testing.T) {
		casino, uow, _, _ := newCasinoForTest(t, fixedRandom{}, nil)
		ctx := context.Background()
		uow.CommitErr = errors.New("serialization failure")
		uow.AccountRepo.On("GetForUpdate", ctx, int64(1)).
			Return(&entities.Account{DiscordID: 1, Username: "alice", Balance: 100}, nil)

		_, err := casino.Account(ctx, 1, "alice")
		assert.ErrorIs(t, err, entities.ErrStorageFailure)
		assert.Empty(t, uow.Published)
	})
}

func TestCasino_ActBlackjack_RejectsSettledHand(t *testing.T) {
	casino, _, factory, _ := newCasinoForTest(t, fixedRandom{}, nil)

	hand, err := blackjack.NewRoundWithDeck(blackjack.NewStackedDeck("K", "Q", "10", "7"), 10)
	require.NoError(t, err)
	require.NoError(t, hand.Stand())

	_, err = casino.ActBlackjack(context.Background(), 1, hand, interfaces.BlackjackHit)
	assert.ErrorIs(t, err, entities.ErrSessionExpired)

	_, err = casino.ActBlackjack(context.Background(), 1, nil, interfaces.BlackjackStand)
	assert.ErrorIs(t, err, entities.ErrSessionExpired)
	assert.Zero(t, factory.Created)
}

func TestCasino_ClaimDaily_AlreadyClaimed(t *testing.T) {
	casino, uow, _, _ := newCasinoForTest(t, fixedRandom{}, nil)
	ctx := context.Background()

	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	uow.AccountRepo.On("GetForUpdate", ctx, int64(1)).
		Return(&entities.Account{DiscordID: 1, Username: "alice", Balance: 100, LastClaimDate: &today}, nil)

	_, err := casino.ClaimDaily(ctx, 1, "alice")
	assert.ErrorIs(t, err, entities.ErrAlreadyClaimed)
	assert.False(t, uow.Committed)
}

func TestCasino_AddBalance(t *testing.T) {
	casino, uow, _, _ := newCasinoForTest(t, fixedRandom{}, nil)
	ctx := context.Background()

	uow.AccountRepo.On("GetForUpdate", ctx, int64(2)).
		Return(&entities.Account{DiscordID: 2, Username: "bob", Balance: 40}, nil)
	uow.AccountRepo.On("UpdateBalance", ctx, int64(2), int64(65)).Return(nil)
	uow.BalanceHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *entities.BalanceHistory) bool {
		return h.TransactionType == entities.TransactionTypeAdminAdjustment && h.ChangeAmount == 25
	})).Return(nil)

	account, err := casino.AddBalance(ctx, 2, "bob", 25, 999999)
	require.NoError(t, err)
	assert.Equal(t, int64(65), account.Balance)
	assert.True(t, uow.Committed)
}

func TestCasino_AddBalance_InvalidAmount(t *testing.T) {
	casino, _, factory, _ := newCasinoForTest(t, fixedRandom{}, nil)

	_, err := casino.AddBalance(context.Background(), 2, "bob", 0, 999999)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Zero(t, factory.Created)
}

func TestCasino_Leaderboard_DefaultsToConfiguredSize(t *testing.T) {
	casino, uow, _, locker := newCasinoForTest(t, fixedRandom{}, nil)
	ctx := context.Background()

	uow.AccountRepo.On("GetTopByBalance", ctx, 5).Return([]*entities.Account{
		{DiscordID: 1, Username: "alice", Balance: 300},
		{DiscordID: 2, Username: "bob", Balance: 200},
	}, nil)

	entries, err := casino.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "bob", entries[1].Username)
	assert.Empty(t, locker.locked)
}

func TestCasino_RebuildLeaderboard(t *testing.T) {
	cache := new(testhelpers.MockLeaderboardCache)
	casino, uow, _, _ := newCasinoForTest(t, fixedRandom{}, cache)
	ctx := context.Background()

	accounts := []*entities.Account{{DiscordID: 1, Username: "alice", Balance: 300}}
	uow.AccountRepo.On("GetTopByBalance", ctx, leaderboardCacheDepth).Return(accounts, nil)
	cache.On("Rebuild", ctx, accounts).Return(nil)

	require.NoError(t, casino.RebuildLeaderboard(ctx))
	cache.AssertExpectations(t)
}

func TestCasino_RebuildLeaderboard_NoCache(t *testing.T) {
	casino, _, factory, _ := newCasinoForTest(t, fixedRandom{}, nil)

	require.NoError(t, casino.RebuildLeaderboard(context.Background()))
	assert.Zero(t, factory.Created)
}
