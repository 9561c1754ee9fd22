package application

import (
	"sync"
	"testing"

	"casinobot/domain/entities"
	"casinobot/domain/events"
	"casinobot/domain/testhelpers"
	"casinobot/infrastructure"
	"casinobot/infrastructure/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedRound struct {
	game, outcome string
	bet, winnings int64
}

type fakeRoundMetrics struct {
	mu           sync.Mutex
	rounds       []recordedRound
	transactions []string
}

func (m *fakeRoundMetrics) RecordRound(game, outcome string, bet, winnings int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds = append(m.rounds, recordedRound{game, outcome, bet, winnings})
}

func (m *fakeRoundMetrics) RecordBalanceTransaction(transactionType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, transactionType)
}

func TestSubscriptions_RoundSettledRecordsOutcome(t *testing.T) {
	bus := infrastructure.NewBus()
	metrics := &fakeRoundMetrics{}
	RegisterApplicationSubscriptions(bus, metrics, nil)

	require.NoError(t, bus.Publish(events.RoundSettledEvent{UserID: 1, Game: entities.GameBlackjack, Bet: 10, Winnings: 10}))
	bus.Wait()

	require.Len(t, metrics.rounds, 1)
	assert.Equal(t, recordedRound{"blackjack", observability.OutcomePush, 10, 10}, metrics.rounds[0])
}

func TestSubscriptions_BalanceChangeUpdatesCache(t *testing.T) {
	bus := infrastructure.NewBus()
	metrics := &fakeRoundMetrics{}
	cache := new(testhelpers.MockLeaderboardCache)
	cache.On("SetBalance", mock.Anything, int64(7), "alice", int64(150)).Return(nil).Once()
	RegisterApplicationSubscriptions(bus, metrics, cache)

	require.NoError(t, bus.Publish(events.BalanceChangeEvent{
		UserID:          7,
		Username:        "alice",
		OldBalance:      100,
		NewBalance:      150,
		TransactionType: entities.TransactionTypeDailyReward,
		ChangeAmount:    50,
	}))
	bus.Wait()

	cache.AssertExpectations(t)
	assert.Equal(t, []string{"daily_reward"}, metrics.transactions)
}

func TestRoundOutcome(t *testing.T) {
	tests := []struct {
		name     string
		bet      int64
		winnings int64
		want     string
	}{
		{"win", 10, 20, observability.OutcomeWin},
		{"push", 10, 10, observability.OutcomePush},
		{"loss", 10, 0, observability.OutcomeLoss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundOutcome(events.RoundSettledEvent{Bet: tt.bet, Winnings: tt.winnings}))
		})
	}
}
