package entities

// Profile aggregates everything shown on a user's profile card
type Profile struct {
	Account   *Account
	General   *GameStats
	Blackjack *GameStats
	Challenge *Challenge
}

// LeaderboardEntry is one ranked account
type LeaderboardEntry struct {
	Rank      int
	DiscordID int64
	Username  string
	Balance   int64
}
