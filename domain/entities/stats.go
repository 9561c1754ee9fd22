package entities

import "time"

// StatsFamily separates the general game record from blackjack-only numbers
type StatsFamily string

const (
	StatsFamilyGeneral   StatsFamily = "general"
	StatsFamilyBlackjack StatsFamily = "blackjack"
)

// GameStats is a user's running record for one stats family
type GameStats struct {
	DiscordID        int64            `db:"discord_id"`
	Family           StatsFamily      `db:"family"`
	GamesPlayed      int64            `db:"games_played"`
	Wins             int64            `db:"wins"`
	Losses           int64            `db:"losses"`
	TotalEarned      int64            `db:"total_earned"`
	LargestWin       int64            `db:"largest_win"`
	MostCommonSymbol string           `db:"most_common_symbol"`
	SymbolCounts     map[string]int64 `db:"symbol_counts"` // Cumulative symbol tally across all recorded grids
	UpdatedAt        time.Time        `db:"updated_at"`
}

// NewGameStats returns an empty record
func NewGameStats(discordID int64, family StatsFamily) *GameStats {
	return &GameStats{
		DiscordID:    discordID,
		Family:       family,
		SymbolCounts: make(map[string]int64),
	}
}

// Apply folds one round into the record.
// Profit is max(0, winnings-bet) and a round is a win only when winnings exceed the bet.
// A nil grid leaves the stored symbol untouched.
func (s *GameStats) Apply(winnings, bet int64, grid []string) {
	profit := winnings - bet
	if profit < 0 {
		profit = 0
	}

	s.GamesPlayed++
	if winnings > bet {
		s.Wins++
	} else {
		s.Losses++
	}
	s.TotalEarned += profit
	if profit > s.LargestWin {
		s.LargestWin = profit
	}

	if len(grid) == 0 {
		return
	}
	s.MostCommonSymbol = MostCommonSymbol(grid)
	if s.SymbolCounts == nil {
		s.SymbolCounts = make(map[string]int64)
	}
	for _, symbol := range grid {
		s.SymbolCounts[symbol]++
	}
}

// WinRate returns wins as a percentage of games played
func (s *GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// MostCommonSymbol returns the most frequent symbol, ties going to the one seen first
func MostCommonSymbol(symbols []string) string {
	counts := make(map[string]int, len(symbols))
	best, bestCount := "", 0
	for _, symbol := range symbols {
		counts[symbol]++
	}
	for _, symbol := range symbols {
		if counts[symbol] > bestCount {
			best, bestCount = symbol, counts[symbol]
		}
	}
	return best
}
