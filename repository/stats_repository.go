package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"casinobot/database"
	"casinobot/domain/entities"

	"github.com/jackc/pgx/v5"
)

// StatsRepository implements the StatsRepository interface
type StatsRepository struct {
	q queryable
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{q: db.Pool}
}

func newStatsRepository(tx queryable) *StatsRepository {
	return &StatsRepository{q: tx}
}

// Get returns the record for a user and family
func (r *StatsRepository) Get(ctx context.Context, discordID int64, family entities.StatsFamily) (*entities.GameStats, error) {
	query := `
		SELECT discord_id, family, games_played, wins, losses, total_earned,
		       largest_win, most_common_symbol, symbol_counts, updated_at
		FROM game_stats
		WHERE discord_id = $1 AND family = $2
	`

	var stats entities.GameStats
	var countsJSON []byte
	err := r.q.QueryRow(ctx, query, discordID, family).Scan(
		&stats.DiscordID,
		&stats.Family,
		&stats.GamesPlayed,
		&stats.Wins,
		&stats.Losses,
		&stats.TotalEarned,
		&stats.LargestWin,
		&stats.MostCommonSymbol,
		&countsJSON,
		&stats.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s stats for %d: %w", family, discordID, err)
	}

	stats.SymbolCounts = make(map[string]int64)
	if len(countsJSON) > 0 {
		if err := json.Unmarshal(countsJSON, &stats.SymbolCounts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal symbol counts: %w", err)
		}
	}

	return &stats, nil
}

// Upsert writes the whole record
func (r *StatsRepository) Upsert(ctx context.Context, stats *entities.GameStats) error {
	counts := stats.SymbolCounts
	if counts == nil {
		counts = map[string]int64{}
	}
	countsJSON, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to marshal symbol counts: %w", err)
	}

	query := `
		INSERT INTO game_stats
		(discord_id, family, games_played, wins, losses, total_earned, largest_win, most_common_symbol, symbol_counts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (discord_id, family) DO UPDATE SET
			games_played = EXCLUDED.games_played,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			total_earned = EXCLUDED.total_earned,
			largest_win = EXCLUDED.largest_win,
			most_common_symbol = EXCLUDED.most_common_symbol,
			symbol_counts = EXCLUDED.symbol_counts,
			updated_at = NOW()
		RETURNING updated_at
	`
	err = r.q.QueryRow(ctx, query,
		stats.DiscordID,
		stats.Family,
		stats.GamesPlayed,
		stats.Wins,
		stats.Losses,
		stats.TotalEarned,
		stats.LargestWin,
		stats.MostCommonSymbol,
		countsJSON,
	).Scan(&stats.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert %s stats for %d: %w", stats.Family, stats.DiscordID, err)
	}
	return nil
}
