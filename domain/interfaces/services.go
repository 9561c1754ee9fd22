package interfaces

import (
	"context"
	"time"

	"casinobot/domain/entities"
	"casinobot/domain/games/blackjack"
	"casinobot/domain/games/coinflip"
	"casinobot/domain/games/slots"
)

// LedgerService defines the interface for balance operations.
// Every mutation runs against a row locked for the current transaction.
type LedgerService interface {
	// GetAccount returns the account, creating it with the starting balance on first use
	GetAccount(ctx context.Context, discordID int64, username string) (*entities.Account, error)

	// GetBalance returns the balance, creating the account on first use
	GetBalance(ctx context.Context, discordID int64) (int64, error)

	// SetBalance overwrites the balance without sign validation
	SetBalance(ctx context.Context, discordID int64, amount int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error)

	// AdjustBalance applies a signed delta
	AdjustBalance(ctx context.Context, discordID int64, delta int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error)

	// Debit validates and takes a bet
	Debit(ctx context.Context, discordID int64, username string, bet int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error)

	// Credit pays out winnings; zero amounts leave no history
	Credit(ctx context.Context, discordID int64, amount int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error)
}

// StatsService defines the interface for recording round statistics
type StatsService interface {
	// Record folds one round into a stats family
	Record(ctx context.Context, discordID int64, family entities.StatsFamily, winnings, bet int64, grid []string) (*entities.GameStats, error)

	// RecordRound records a settled round into every family it belongs to
	RecordRound(ctx context.Context, result *entities.RoundResult, grid []string) error

	// Get returns a family record, empty when the user has not played
	Get(ctx context.Context, discordID int64, family entities.StatsFamily) (*entities.GameStats, error)
}

// ChallengeService defines the interface for challenge windows and the daily reward
type ChallengeService interface {
	// ResetIfExpired zeroes counters whose window has rolled over
	ResetIfExpired(ctx context.Context, discordID int64, now time.Time) (*entities.Challenge, error)

	// RecordWin counts a win for games that qualify
	RecordWin(ctx context.Context, discordID int64, game entities.Game, now time.Time) (*entities.Challenge, error)

	// Qualifies reports whether wins in the game count toward challenges
	Qualifies(game entities.Game) bool

	// ClaimDaily grants the daily reward once per calendar day
	ClaimDaily(ctx context.Context, discordID int64, username string, now time.Time) (*entities.Account, error)
}

// LeaderboardService defines the interface for balance rankings
type LeaderboardService interface {
	Top(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
}

// SlotsRound is a settled spin
type SlotsRound struct {
	Result  entities.RoundResult
	Outcome slots.Outcome
}

// BlackjackRound is a hand after the last action taken on it
type BlackjackRound struct {
	Result entities.RoundResult
	Hand   *blackjack.Round
}

// CoinflipRound is a settled toss
type CoinflipRound struct {
	Result  entities.RoundResult
	Outcome coinflip.Outcome
}

// BlackjackAction is a player decision
type BlackjackAction string

const (
	BlackjackHit   BlackjackAction = "hit"
	BlackjackStand BlackjackAction = "stand"
)

// CasinoService defines the interface for playing rounds
type CasinoService interface {
	PlaySlots(ctx context.Context, discordID int64, username string, bet int64) (*SlotsRound, error)
	StartBlackjack(ctx context.Context, discordID int64, username string, bet int64) (*BlackjackRound, error)
	ActBlackjack(ctx context.Context, discordID int64, hand *blackjack.Round, action BlackjackAction) (*BlackjackRound, error)
	PlayCoinflip(ctx context.Context, discordID int64, username string, guess coinflip.Side, bet int64) (*CoinflipRound, error)
	GetProfile(ctx context.Context, discordID int64, username string, now time.Time) (*entities.Profile, error)
}
