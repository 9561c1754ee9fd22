package slots

import (
	"math"
	"testing"

	"casinobot/domain/games"

	"github.com/stretchr/testify/assert"
)

// TestSimulate_SymbolFrequencyAccuracy checks that draws follow the reel weights over many spins
func TestSimulate_SymbolFrequencyAccuracy(t *testing.T) {
	report := Simulate(games.NewSeededRandom(42), 20000, 1)

	assert.Equal(t, int64(20000), report.TotalWagered)
	for _, f := range report.Frequencies {
		assert.InDelta(t, f.Expected, f.Observed, 0.01, "symbol %s", f.Symbol)
	}
	// 5 degrees of freedom, p=0.001 critical value
	assert.Less(t, report.ChiSquared, 20.52)
}

func TestSimulate_HitRateNearAnalyticEstimate(t *testing.T) {
	report := Simulate(games.NewSeededRandom(1), 50000, 1)

	// Union bound over eight lines; overlaps make the true rate slightly lower
	perLine := 0.0
	for _, s := range Symbols() {
		perLine += LineProbability(s) * boolToFloat(Multiplier(s) > 0)
	}
	upper := 1 - math.Pow(1-perLine, 8)

	assert.Greater(t, report.HitRate, 0.0)
	assert.Less(t, report.HitRate, upper+0.01)
	assert.Equal(t, report.WinningSpins, sum(report.LineHits))
}

func TestLineProbability(t *testing.T) {
	assert.InDelta(t, 0.27*0.27*0.27, LineProbability(Cherry), 1e-12)
	assert.Equal(t, 0.0, LineProbability(Symbol("?")))
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func sum(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}
