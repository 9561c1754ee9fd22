package testhelpers

import (
	"context"
	"time"

	"casinobot/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockLedgerService is a mock implementation of LedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetAccount(ctx context.Context, discordID int64, username string) (*entities.Account, error) {
	args := m.Called(ctx, discordID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockLedgerService) GetBalance(ctx context.Context, discordID int64) (int64, error) {
	args := m.Called(ctx, discordID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) SetBalance(ctx context.Context, discordID int64, amount int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error) {
	args := m.Called(ctx, discordID, amount, txType, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockLedgerService) AdjustBalance(ctx context.Context, discordID int64, delta int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error) {
	args := m.Called(ctx, discordID, delta, txType, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockLedgerService) Debit(ctx context.Context, discordID int64, username string, bet int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error) {
	args := m.Called(ctx, discordID, username, bet, txType, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockLedgerService) Credit(ctx context.Context, discordID int64, amount int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error) {
	args := m.Called(ctx, discordID, amount, txType, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Record(ctx context.Context, discordID int64, family entities.StatsFamily, winnings, bet int64, grid []string) (*entities.GameStats, error) {
	args := m.Called(ctx, discordID, family, winnings, bet, grid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameStats), args.Error(1)
}

func (m *MockStatsService) RecordRound(ctx context.Context, result *entities.RoundResult, grid []string) error {
	args := m.Called(ctx, result, grid)
	return args.Error(0)
}

func (m *MockStatsService) Get(ctx context.Context, discordID int64, family entities.StatsFamily) (*entities.GameStats, error) {
	args := m.Called(ctx, discordID, family)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameStats), args.Error(1)
}

// MockChallengeService is a mock implementation of ChallengeService
type MockChallengeService struct {
	mock.Mock
}

func (m *MockChallengeService) ResetIfExpired(ctx context.Context, discordID int64, now time.Time) (*entities.Challenge, error) {
	args := m.Called(ctx, discordID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Challenge), args.Error(1)
}

func (m *MockChallengeService) RecordWin(ctx context.Context, discordID int64, game entities.Game, now time.Time) (*entities.Challenge, error) {
	args := m.Called(ctx, discordID, game, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Challenge), args.Error(1)
}

func (m *MockChallengeService) Qualifies(game entities.Game) bool {
	args := m.Called(game)
	return args.Bool(0)
}

func (m *MockChallengeService) ClaimDaily(ctx context.Context, discordID int64, username string, now time.Time) (*entities.Account, error) {
	args := m.Called(ctx, discordID, username, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}
