package entities

import "time"

// Challenge tracks windowed win counters for a user
type Challenge struct {
	DiscordID       int64     `db:"discord_id"`
	DailyWins       int64     `db:"daily_wins"`
	WeeklyWins      int64     `db:"weekly_wins"`
	LastDailyReset  time.Time `db:"last_daily_reset"`
	LastWeeklyReset time.Time `db:"last_weekly_reset"`
}

// ResetIfExpired zeroes any counter whose last reset predates its window start and stamps the window start.
// Returns true when anything changed.
func (c *Challenge) ResetIfExpired(dailyStart, weeklyStart time.Time) bool {
	changed := false
	if c.LastDailyReset.Before(dailyStart) {
		c.DailyWins = 0
		c.LastDailyReset = dailyStart
		changed = true
	}
	if c.LastWeeklyReset.Before(weeklyStart) {
		c.WeeklyWins = 0
		c.LastWeeklyReset = weeklyStart
		changed = true
	}
	return changed
}

// AddWin increments both counters
func (c *Challenge) AddWin() {
	c.DailyWins++
	c.WeeklyWins++
}
