package testhelpers

import (
	"context"
	"time"

	"casinobot/domain/entities"
	"casinobot/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Get(ctx context.Context, discordID int64) (*entities.Account, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetForUpdate(ctx context.Context, discordID int64) (*entities.Account, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) CreateIfAbsent(ctx context.Context, discordID int64, username string, initialBalance int64) (bool, error) {
	args := m.Called(ctx, discordID, username, initialBalance)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, discordID int64, newBalance int64) error {
	args := m.Called(ctx, discordID, newBalance)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateUsername(ctx context.Context, discordID int64, username string) error {
	args := m.Called(ctx, discordID, username)
	return args.Error(0)
}

func (m *MockAccountRepository) SetLastClaimDate(ctx context.Context, discordID int64, date time.Time) error {
	args := m.Called(ctx, discordID, date)
	return args.Error(0)
}

func (m *MockAccountRepository) GetTopByBalance(ctx context.Context, limit int) ([]*entities.Account, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Account), args.Error(1)
}

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Get(ctx context.Context, discordID int64, family entities.StatsFamily) (*entities.GameStats, error) {
	args := m.Called(ctx, discordID, family)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameStats), args.Error(1)
}

func (m *MockStatsRepository) Upsert(ctx context.Context, stats *entities.GameStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// MockChallengeRepository is a mock implementation of ChallengeRepository
type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) Get(ctx context.Context, discordID int64) (*entities.Challenge, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) Upsert(ctx context.Context, challenge *entities.Challenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

// MockBalanceHistoryRepository is a mock implementation of BalanceHistoryRepository
type MockBalanceHistoryRepository struct {
	mock.Mock
}

func (m *MockBalanceHistoryRepository) Record(ctx context.Context, history *entities.BalanceHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockBalanceHistoryRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.BalanceHistory, error) {
	args := m.Called(ctx, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BalanceHistory), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockLeaderboardCache is a mock implementation of LeaderboardCache
type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) Top(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, bool, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]*entities.LeaderboardEntry), args.Bool(1), args.Error(2)
}

func (m *MockLeaderboardCache) SetBalance(ctx context.Context, discordID int64, username string, balance int64) error {
	args := m.Called(ctx, discordID, username, balance)
	return args.Error(0)
}

func (m *MockLeaderboardCache) Rebuild(ctx context.Context, accounts []*entities.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

// MockTransactionalEventPublisher is a mock implementation of TransactionalEventPublisher
type MockTransactionalEventPublisher struct {
	mock.Mock
}

func (m *MockTransactionalEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockTransactionalEventPublisher) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransactionalEventPublisher) Discard() {
	m.Called()
}
