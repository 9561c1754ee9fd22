package application

import (
	"context"
	"sync"
	"testing"

	"casinobot/config"
	"casinobot/domain/entities"
	"casinobot/domain/events"
	"casinobot/domain/games"
	"casinobot/domain/games/blackjack"
	"casinobot/domain/games/coinflip"
	"casinobot/domain/interfaces"
	"casinobot/infrastructure"
	"casinobot/repository"
	"casinobot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasinoIntegration_ConcurrentRoundsKeepBalanceConsistent(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	config.SetTestConfig(config.NewTestConfig())
	t.Cleanup(config.ResetConfig)

	ctx := context.Background()
	publisher := &infrastructure.RecordingPublisher{}
	casino := NewCasino(
		infrastructure.NewUnitOfWorkFactory(testDB.DB, publisher),
		infrastructure.NewUserLocker(),
		nil,
		games.NewSeededRandom(42),
	)

	const rounds = 20
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		net int64
	)
	for i := 0; i < rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			round, err := casino.PlayCoinflip(ctx, 5001, "alice", coinflip.Heads, 1)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			net += round.Result.Net
			mu.Unlock()
		}()
	}
	wg.Wait()

	account, err := repository.NewAccountRepository(testDB.DB).Get(ctx, 5001)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, 100+net, account.Balance)

	stats, err := repository.NewStatsRepository(testDB.DB).Get(ctx, 5001, entities.StatsFamilyGeneral)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(rounds), stats.GamesPlayed)
	assert.Equal(t, int64(rounds), stats.Wins+stats.Losses)

	settled := 0
	for _, event := range publisher.Events() {
		if event.Type() == events.EventTypeRoundSettled {
			settled++
		}
	}
	assert.Equal(t, rounds, settled)
}

func TestCasinoIntegration_BlackjackWinCountsChallenge(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	config.SetTestConfig(config.NewTestConfig())
	t.Cleanup(config.ResetConfig)

	ctx := context.Background()
	casino := NewCasino(
		infrastructure.NewUnitOfWorkFactory(testDB.DB, &infrastructure.RecordingPublisher{}),
		infrastructure.NewUserLocker(),
		nil,
		nil,
	)

	dealt, err := casino.StartBlackjack(ctx, 5002, "bob", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(90), dealt.Result.NewBalance)

	// Replace the shuffled hand with a known winner before standing
	hand, err := blackjack.NewRoundWithDeck(blackjack.NewStackedDeck("K", "Q", "10", "7"), 10)
	require.NoError(t, err)

	settled, err := casino.ActBlackjack(ctx, 5002, hand, interfaces.BlackjackStand)
	require.NoError(t, err)
	assert.Equal(t, blackjack.OutcomeWin, settled.Hand.Outcome)
	assert.Equal(t, int64(110), settled.Result.NewBalance)

	challenge, err := repository.NewChallengeRepository(testDB.DB).Get(ctx, 5002)
	require.NoError(t, err)
	require.NotNil(t, challenge)
	assert.Equal(t, int64(1), challenge.DailyWins)
	assert.Equal(t, int64(1), challenge.WeeklyWins)

	bjStats, err := repository.NewStatsRepository(testDB.DB).Get(ctx, 5002, entities.StatsFamilyBlackjack)
	require.NoError(t, err)
	require.NotNil(t, bjStats)
	assert.Equal(t, int64(1), bjStats.Wins)
	assert.Equal(t, int64(10), bjStats.TotalEarned)
}
