package slots

import (
	"casinobot/domain/games/slots"
	"casinobot/domain/interfaces"
)

// Game is the state of one slots session
type Game struct {
	Name      string
	Bet       int64
	Balance   int64
	Spins     int
	Net       int64
	ChannelID string
	MessageID string

	LastGrid       slots.Grid
	LastLine       string
	LastSymbol     slots.Symbol
	LastMultiplier int64
	LastWinnings   int64
}

// apply folds a settled spin into the session
func (g *Game) apply(round *interfaces.SlotsRound) {
	g.Spins++
	g.Net += round.Result.Net
	g.Balance = round.Result.NewBalance

	g.LastGrid = round.Outcome.Grid
	g.LastWinnings = round.Outcome.Winnings
	g.LastMultiplier = round.Outcome.Multiplier
	g.LastSymbol = round.Outcome.Symbol
	g.LastLine = ""
	if round.Outcome.Line != nil {
		g.LastLine = round.Outcome.Line.Name
	}
}

// adjustBet moves the bet by delta within [1, balance]
func (g *Game) adjustBet(delta int64) {
	bet := g.Bet + delta
	if bet < 1 || bet > g.Balance {
		return
	}
	g.Bet = bet
}
