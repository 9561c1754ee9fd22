package blackjack

import (
	"testing"

	"casinobot/domain/entities"
	"casinobot/domain/games"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []Card
		want  int
	}{
		{"blackjack", []Card{"A", "K"}, 21},
		{"two aces", []Card{"A", "A"}, 12},
		{"two aces and nine", []Card{"A", "A", "9"}, 21},
		{"soft hand hardens", []Card{"A", "5", "K"}, 16},
		{"bust", []Card{"K", "Q", "2"}, 22},
		{"four aces", []Card{"A", "A", "A", "A"}, 14},
		{"faces are ten", []Card{"J", "Q"}, 20},
		{"number cards", []Card{"2", "3", "10"}, 15},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HandValue(tt.cards))
		})
	}
}

func TestNewDeck_HasFourOfEachRank(t *testing.T) {
	t.Parallel()

	deck := NewDeck(games.NewSeededRandom(3))
	require.Equal(t, 52, deck.Remaining())

	counts := make(map[Card]int)
	for deck.Remaining() > 0 {
		card, err := deck.Draw()
		require.NoError(t, err)
		counts[card]++
	}
	assert.Len(t, counts, 13)
	for rank, n := range counts {
		assert.Equal(t, 4, n, "rank %s", rank)
	}

	_, err := deck.Draw()
	assert.ErrorIs(t, err, ErrDeckEmpty)
}

func TestNewRoundWithDeck_DealOrder(t *testing.T) {
	t.Parallel()

	round, err := NewRoundWithDeck(NewStackedDeck("2", "3", "4", "5", "6"), 10)
	require.NoError(t, err)

	assert.Equal(t, Hand{"2", "3"}, round.Player)
	assert.Equal(t, Hand{"4", "5"}, round.Dealer)
	assert.Equal(t, StatePlayerTurn, round.State)
	assert.Equal(t, Card("4"), round.DealerUpCard())
}

func TestRound_HitBust(t *testing.T) {
	t.Parallel()

	round, err := NewRoundWithDeck(NewStackedDeck("K", "Q", "5", "6", "2", "9"), 10)
	require.NoError(t, err)

	require.NoError(t, round.Hit())

	assert.Equal(t, StateSettled, round.State)
	assert.Equal(t, OutcomeBust, round.Outcome)
	assert.Len(t, round.Dealer, 2, "dealer does not draw after a player bust")
	assert.Equal(t, int64(-10), round.Net())
	assert.Equal(t, int64(0), round.Payout())

	err = round.Hit()
	assert.ErrorIs(t, err, ErrRoundSettled)
	assert.ErrorIs(t, err, entities.ErrSessionExpired)
	assert.ErrorIs(t, round.Stand(), entities.ErrSessionExpired)
}

func TestRound_HitWithoutBustKeepsTurn(t *testing.T) {
	t.Parallel()

	round, err := NewRoundWithDeck(NewStackedDeck("5", "6", "K", "7", "4"), 10)
	require.NoError(t, err)

	require.NoError(t, round.Hit())
	assert.Equal(t, StatePlayerTurn, round.State)
	assert.Equal(t, 15, round.Player.Value())
	assert.Equal(t, int64(0), round.Payout())
}

func TestRound_Stand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		deal        []Card
		wantOutcome Outcome
		wantNet     int64
		wantPayout  int64
		wantDealer  int
	}{
		{
			name:        "dealer draws to twenty and wins",
			deal:        []Card{"K", "9", "5", "6", "3", "2", "4"},
			wantOutcome: OutcomeLoss,
			wantNet:     -10,
			wantPayout:  0,
			wantDealer:  20,
		},
		{
			name:        "dealer busts",
			deal:        []Card{"K", "2", "K", "6", "K"},
			wantOutcome: OutcomeWin,
			wantNet:     10,
			wantPayout:  20,
			wantDealer:  26,
		},
		{
			name:        "push",
			deal:        []Card{"K", "8", "Q", "8"},
			wantOutcome: OutcomePush,
			wantNet:     0,
			wantPayout:  10,
			wantDealer:  18,
		},
		{
			name:        "player higher",
			deal:        []Card{"K", "Q", "10", "7"},
			wantOutcome: OutcomeWin,
			wantNet:     10,
			wantPayout:  20,
			wantDealer:  17,
		},
		{
			name:        "dealer stands on soft seventeen",
			deal:        []Card{"10", "6", "A", "6"},
			wantOutcome: OutcomeLoss,
			wantNet:     -10,
			wantPayout:  0,
			wantDealer:  17,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			round, err := NewRoundWithDeck(NewStackedDeck(tt.deal...), 10)
			require.NoError(t, err)
			require.NoError(t, round.Stand())

			assert.Equal(t, StateSettled, round.State)
			assert.Equal(t, tt.wantOutcome, round.Outcome)
			assert.Equal(t, tt.wantNet, round.Net())
			assert.Equal(t, tt.wantPayout, round.Payout())
			assert.Equal(t, tt.wantDealer, round.Dealer.Value())
		})
	}
}

func TestRound_DealerAlwaysReachesSeventeen(t *testing.T) {
	t.Parallel()

	rng := games.NewSeededRandom(11)
	for i := 0; i < 500; i++ {
		round, err := NewRound(rng, 5)
		require.NoError(t, err)
		require.NoError(t, round.Stand())

		assert.GreaterOrEqual(t, round.Dealer.Value(), DealerStandsOn)
		assert.Contains(t, []int64{-5, 0, 5}, round.Net())
	}
}
