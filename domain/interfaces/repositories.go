package interfaces

import (
	"context"
	"time"

	"casinobot/domain/entities"
	"casinobot/domain/events"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// Get retrieves an account without locking, nil when it does not exist
	Get(ctx context.Context, discordID int64) (*entities.Account, error)

	// GetForUpdate retrieves an account and locks its row until the transaction ends, nil when it does not exist
	GetForUpdate(ctx context.Context, discordID int64) (*entities.Account, error)

	// CreateIfAbsent inserts an account with the given balance and reports whether it was created
	CreateIfAbsent(ctx context.Context, discordID int64, username string, initialBalance int64) (bool, error)

	// UpdateBalance overwrites the balance
	UpdateBalance(ctx context.Context, discordID int64, newBalance int64) error

	// UpdateUsername refreshes the stored display name
	UpdateUsername(ctx context.Context, discordID int64, username string) error

	// SetLastClaimDate stamps the calendar date of a daily reward claim
	SetLastClaimDate(ctx context.Context, discordID int64, date time.Time) error

	// GetTopByBalance returns the richest accounts, highest first
	GetTopByBalance(ctx context.Context, limit int) ([]*entities.Account, error)
}

// StatsRepository defines the interface for per-family game statistics
type StatsRepository interface {
	// Get returns the record for a user and family, nil when none exists
	Get(ctx context.Context, discordID int64, family entities.StatsFamily) (*entities.GameStats, error)

	// Upsert writes the whole record
	Upsert(ctx context.Context, stats *entities.GameStats) error
}

// ChallengeRepository defines the interface for challenge counters
type ChallengeRepository interface {
	// Get returns the user's counters, nil when none exist
	Get(ctx context.Context, discordID int64) (*entities.Challenge, error)

	// Upsert writes the whole record
	Upsert(ctx context.Context, challenge *entities.Challenge) error
}

// BalanceHistoryRepository defines the interface for balance history tracking
type BalanceHistoryRepository interface {
	// Record creates a new balance history entry
	Record(ctx context.Context, history *entities.BalanceHistory) error

	// GetByUser returns balance history for a specific user, newest first
	GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.BalanceHistory, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TransactionalEventPublisher buffers events until the surrounding transaction finishes
type TransactionalEventPublisher interface {
	EventPublisher
	Flush(ctx context.Context) error
	Discard()
}

// LeaderboardCache is a read-through cache of balances ordered for ranking
type LeaderboardCache interface {
	// Top returns up to limit entries, ok=false when the cache is empty or unavailable
	Top(ctx context.Context, limit int) (entries []*entities.LeaderboardEntry, ok bool, err error)

	// SetBalance updates one account's score
	SetBalance(ctx context.Context, discordID int64, username string, balance int64) error

	// Rebuild replaces the cache contents
	Rebuild(ctx context.Context, accounts []*entities.Account) error
}
