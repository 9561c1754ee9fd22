package entities

// Game identifies a casino game
type Game string

const (
	GameSlots     Game = "slots"
	GameBlackjack Game = "blackjack"
	GameCoinflip  Game = "coinflip"
)

// RoundResult is the settled outcome of one bet.
// Winnings is the gross amount credited back (zero on a loss), Net is the signed balance effect.
type RoundResult struct {
	DiscordID  int64
	Game       Game
	Bet        int64
	Winnings   int64
	Net        int64
	NewBalance int64
	Terminal   bool
}

// Won reports whether the round paid more than was staked
func (r *RoundResult) Won() bool {
	return r.Winnings > r.Bet
}

// IsPush reports a round that returned exactly the stake
func (r *RoundResult) IsPush() bool {
	return r.Terminal && r.Winnings == r.Bet
}
