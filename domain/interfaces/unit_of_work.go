package interfaces

import "context"

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes buffered events
	Commit() error

	// Rollback rolls back the transaction and drops buffered events
	Rollback() error

	// Repository getters, only valid between Begin and Commit/Rollback
	AccountRepository() AccountRepository
	StatsRepository() StatsRepository
	ChallengeRepository() ChallengeRepository
	BalanceHistoryRepository() BalanceHistoryRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
