package repository

import (
	"context"
	"errors"
	"fmt"

	"casinobot/database"
	"casinobot/domain/entities"

	"github.com/jackc/pgx/v5"
)

// ChallengeRepository implements the ChallengeRepository interface
type ChallengeRepository struct {
	q queryable
}

// NewChallengeRepository creates a new challenge repository
func NewChallengeRepository(db *database.DB) *ChallengeRepository {
	return &ChallengeRepository{q: db.Pool}
}

func newChallengeRepository(tx queryable) *ChallengeRepository {
	return &ChallengeRepository{q: tx}
}

// Get returns the user's counters
func (r *ChallengeRepository) Get(ctx context.Context, discordID int64) (*entities.Challenge, error) {
	query := `
		SELECT discord_id, daily_wins, weekly_wins, last_daily_reset, last_weekly_reset
		FROM challenges
		WHERE discord_id = $1
	`

	var challenge entities.Challenge
	err := r.q.QueryRow(ctx, query, discordID).Scan(
		&challenge.DiscordID,
		&challenge.DailyWins,
		&challenge.WeeklyWins,
		&challenge.LastDailyReset,
		&challenge.LastWeeklyReset,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenges for %d: %w", discordID, err)
	}
	return &challenge, nil
}

// Upsert writes the whole record
func (r *ChallengeRepository) Upsert(ctx context.Context, challenge *entities.Challenge) error {
	query := `
		INSERT INTO challenges (discord_id, daily_wins, weekly_wins, last_daily_reset, last_weekly_reset)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (discord_id) DO UPDATE SET
			daily_wins = EXCLUDED.daily_wins,
			weekly_wins = EXCLUDED.weekly_wins,
			last_daily_reset = EXCLUDED.last_daily_reset,
			last_weekly_reset = EXCLUDED.last_weekly_reset
	`
	_, err := r.q.Exec(ctx, query,
		challenge.DiscordID,
		challenge.DailyWins,
		challenge.WeeklyWins,
		challenge.LastDailyReset,
		challenge.LastWeeklyReset,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert challenges for %d: %w", challenge.DiscordID, err)
	}
	return nil
}
