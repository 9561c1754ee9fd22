package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChallenge_ResetIfExpired(t *testing.T) {
	t.Parallel()

	dailyStart := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	weeklyStart := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	t.Run("stale daily only", func(t *testing.T) {
		t.Parallel()
		c := &Challenge{
			DailyWins:       3,
			WeeklyWins:      7,
			LastDailyReset:  dailyStart.AddDate(0, 0, -1),
			LastWeeklyReset: weeklyStart,
		}

		assert.True(t, c.ResetIfExpired(dailyStart, weeklyStart))
		assert.Equal(t, int64(0), c.DailyWins)
		assert.Equal(t, int64(7), c.WeeklyWins)
		assert.Equal(t, dailyStart, c.LastDailyReset)
	})

	t.Run("both stale", func(t *testing.T) {
		t.Parallel()
		c := &Challenge{
			DailyWins:       3,
			WeeklyWins:      7,
			LastDailyReset:  weeklyStart.AddDate(0, 0, -2),
			LastWeeklyReset: weeklyStart.AddDate(0, 0, -7),
		}

		assert.True(t, c.ResetIfExpired(dailyStart, weeklyStart))
		assert.Equal(t, int64(0), c.DailyWins)
		assert.Equal(t, int64(0), c.WeeklyWins)
		assert.Equal(t, weeklyStart, c.LastWeeklyReset)
	})

	t.Run("current windows untouched", func(t *testing.T) {
		t.Parallel()
		c := &Challenge{
			DailyWins:       3,
			WeeklyWins:      7,
			LastDailyReset:  dailyStart,
			LastWeeklyReset: weeklyStart,
		}

		assert.False(t, c.ResetIfExpired(dailyStart, weeklyStart))
		assert.Equal(t, int64(3), c.DailyWins)
		assert.Equal(t, int64(7), c.WeeklyWins)
	})
}
