package testhelpers

import (
	"context"

	"casinobot/domain/events"
	"casinobot/domain/interfaces"
)

// MockUnitOfWork hands out mock repositories and records its lifecycle
type MockUnitOfWork struct {
	AccountRepo        *MockAccountRepository
	StatsRepo          *MockStatsRepository
	ChallengeRepo      *MockChallengeRepository
	BalanceHistoryRepo *MockBalanceHistoryRepository

	BeginErr  error
	CommitErr error

	Began      bool
	Committed  bool
	RolledBack bool

	pending   []events.Event
	Published []events.Event
}

// NewMockUnitOfWork returns a unit of work with fresh repository mocks
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		AccountRepo:        new(MockAccountRepository),
		StatsRepo:          new(MockStatsRepository),
		ChallengeRepo:      new(MockChallengeRepository),
		BalanceHistoryRepo: new(MockBalanceHistoryRepository),
	}
}

func (u *MockUnitOfWork) Begin(ctx context.Context) error {
	if u.BeginErr != nil {
		return u.BeginErr
	}
	u.Began = true
	return nil
}

func (u *MockUnitOfWork) Commit() error {
	if u.CommitErr != nil {
		return u.CommitErr
	}
	u.Committed = true
	u.Published = append(u.Published, u.pending...)
	u.pending = nil
	return nil
}

func (u *MockUnitOfWork) Rollback() error {
	if !u.Committed {
		u.RolledBack = true
	}
	u.pending = nil
	return nil
}

func (u *MockUnitOfWork) AccountRepository() interfaces.AccountRepository { return u.AccountRepo }

func (u *MockUnitOfWork) StatsRepository() interfaces.StatsRepository { return u.StatsRepo }

func (u *MockUnitOfWork) ChallengeRepository() interfaces.ChallengeRepository { return u.ChallengeRepo }

func (u *MockUnitOfWork) BalanceHistoryRepository() interfaces.BalanceHistoryRepository {
	return u.BalanceHistoryRepo
}

func (u *MockUnitOfWork) EventBus() interfaces.EventPublisher { return (*bufferingPublisher)(u) }

// bufferingPublisher holds events until the unit of work commits
type bufferingPublisher MockUnitOfWork

func (p *bufferingPublisher) Publish(event events.Event) error {
	p.pending = append(p.pending, event)
	return nil
}

// MockUnitOfWorkFactory always returns the same unit of work
type MockUnitOfWorkFactory struct {
	UoW     *MockUnitOfWork
	Created int
}

func (f *MockUnitOfWorkFactory) Create() interfaces.UnitOfWork {
	f.Created++
	return f.UoW
}
