package services

import (
	"context"
	"fmt"

	"casinobot/domain/entities"
	"casinobot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type leaderboardService struct {
	accountRepo interfaces.AccountRepository
	cache       interfaces.LeaderboardCache
}

// NewLeaderboardService creates a leaderboard service. cache may be nil.
func NewLeaderboardService(accountRepo interfaces.AccountRepository, cache interfaces.LeaderboardCache) interfaces.LeaderboardService {
	return &leaderboardService{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Top serves from the cache when it has data, otherwise from the database
func (s *leaderboardService) Top(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	if s.cache != nil {
		entries, ok, err := s.cache.Top(ctx, limit)
		if err != nil {
			log.WithError(err).Warn("Leaderboard cache read failed, falling back to database")
		} else if ok {
			return entries, nil
		}
	}

	accounts, err := s.accountRepo.GetTopByBalance(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top accounts: %w", err)
	}

	entries := make([]*entities.LeaderboardEntry, len(accounts))
	for i, account := range accounts {
		entries[i] = &entities.LeaderboardEntry{
			Rank:      i + 1,
			DiscordID: account.DiscordID,
			Username:  account.Username,
			Balance:   account.Balance,
		}
	}
	return entries, nil
}
