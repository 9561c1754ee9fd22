// Package slots implements the 3x3 slot machine.
package slots

// Symbol is one reel symbol
type Symbol string

const (
	Cherry  Symbol = "🍒"
	Melon   Symbol = "🍉"
	Bell    Symbol = "🔔"
	Star    Symbol = "⭐"
	Diamond Symbol = "💎"
	Joker   Symbol = "🤡"
)

// reelTotal is the sum of all reel weights; weights are in hundredths
const reelTotal = 100

type weightedSymbol struct {
	symbol Symbol
	weight int
}

// Draw order matters for the cumulative walk in DrawSymbol
var reel = []weightedSymbol{
	{Cherry, 27},
	{Melon, 20},
	{Bell, 10},
	{Star, 8},
	{Diamond, 5},
	{Joker, 30},
}

// Joker has no entry and never pays
var payoutMultipliers = map[Symbol]int64{
	Cherry:  5,
	Melon:   10,
	Bell:    20,
	Star:    50,
	Diamond: 100,
}

// Symbols returns every symbol in reel order
func Symbols() []Symbol {
	out := make([]Symbol, len(reel))
	for i, w := range reel {
		out[i] = w.symbol
	}
	return out
}

// Weight returns the draw probability of a symbol
func Weight(s Symbol) float64 {
	for _, w := range reel {
		if w.symbol == s {
			return float64(w.weight) / reelTotal
		}
	}
	return 0
}

// Multiplier returns the line payout multiplier, zero for non-paying symbols
func Multiplier(s Symbol) int64 {
	return payoutMultipliers[s]
}
