package services

import (
	"context"
	"fmt"

	"casinobot/domain/entities"
	"casinobot/domain/interfaces"
)

type statsService struct {
	statsRepo interfaces.StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo interfaces.StatsRepository) interfaces.StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Record(ctx context.Context, discordID int64, family entities.StatsFamily, winnings, bet int64, grid []string) (*entities.GameStats, error) {
	stats, err := s.Get(ctx, discordID, family)
	if err != nil {
		return nil, err
	}

	stats.Apply(winnings, bet, grid)

	if err := s.statsRepo.Upsert(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to save %s stats for %d: %w", family, discordID, err)
	}
	return stats, nil
}

// RecordRound writes the general record for every game and the blackjack record for blackjack hands
func (s *statsService) RecordRound(ctx context.Context, result *entities.RoundResult, grid []string) error {
	if _, err := s.Record(ctx, result.DiscordID, entities.StatsFamilyGeneral, result.Winnings, result.Bet, grid); err != nil {
		return err
	}
	if result.Game == entities.GameBlackjack {
		if _, err := s.Record(ctx, result.DiscordID, entities.StatsFamilyBlackjack, result.Winnings, result.Bet, nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *statsService) Get(ctx context.Context, discordID int64, family entities.StatsFamily) (*entities.GameStats, error) {
	stats, err := s.statsRepo.Get(ctx, discordID, family)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s stats for %d: %w", family, discordID, err)
	}
	if stats == nil {
		stats = entities.NewGameStats(discordID, family)
	}
	return stats, nil
}
