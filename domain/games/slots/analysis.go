package slots

import (
	"math"

	"casinobot/domain/games"
)

// SymbolFrequency compares observed draws of one symbol against its weight
type SymbolFrequency struct {
	Symbol    Symbol
	Expected  float64
	Observed  float64
	Deviation float64 // Observed - Expected
}

// Report summarises a batch of simulated spins at a fixed bet
type Report struct {
	Spins          int
	Bet            int64
	TotalWagered   int64
	TotalReturned  int64
	WinningSpins   int
	LineHits       map[string]int
	Frequencies    []SymbolFrequency
	ChiSquared     float64 // Goodness of fit of symbol draws against the reel weights
	ReturnToPlayer float64 // TotalReturned / TotalWagered
	HitRate        float64
}

// Simulate spins the machine n times and tallies the results
func Simulate(rng games.Random, n int, bet int64) *Report {
	report := &Report{
		Spins:    n,
		Bet:      bet,
		LineHits: make(map[string]int),
	}
	counts := make(map[Symbol]int)

	for i := 0; i < n; i++ {
		outcome := Spin(rng, bet)
		for _, row := range outcome.Grid {
			for _, s := range row {
				counts[s]++
			}
		}
		report.TotalWagered += bet
		report.TotalReturned += outcome.Winnings
		if outcome.Line != nil {
			report.WinningSpins++
			report.LineHits[outcome.Line.Name]++
		}
	}

	draws := float64(n * 9)
	for _, w := range reel {
		expected := Weight(w.symbol)
		observed := 0.0
		if draws > 0 {
			observed = float64(counts[w.symbol]) / draws
		}
		report.Frequencies = append(report.Frequencies, SymbolFrequency{
			Symbol:    w.symbol,
			Expected:  expected,
			Observed:  observed,
			Deviation: observed - expected,
		})
		expectedCount := draws * expected
		if expectedCount > 0 {
			report.ChiSquared += math.Pow(float64(counts[w.symbol])-expectedCount, 2) / expectedCount
		}
	}

	if report.TotalWagered > 0 {
		report.ReturnToPlayer = float64(report.TotalReturned) / float64(report.TotalWagered)
	}
	if n > 0 {
		report.HitRate = float64(report.WinningSpins) / float64(n)
	}
	return report
}

// LineProbability is the chance a single line shows three of the symbol
func LineProbability(s Symbol) float64 {
	w := Weight(s)
	return w * w * w
}
