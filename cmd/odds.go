package cmd

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"casinobot/domain/games"
	"casinobot/domain/games/slots"
)

// PrintOdds simulates spins at a fixed bet and writes the payout report
func PrintOdds(w io.Writer, rng games.Random, spins int, bet int64) error {
	if spins <= 0 || bet <= 0 {
		return fmt.Errorf("spins and bet must be positive, got %d and %d", spins, bet)
	}

	report := slots.Simulate(rng, spins, bet)

	fmt.Fprintf(w, "=== Slots odds over %d spins at bet %d ===\n\n", report.Spins, report.Bet)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Symbol\tMultiplier\tExpected\tObserved\tDeviation\tLine chance")
	for _, f := range report.Frequencies {
		fmt.Fprintf(tw, "%s\t%dx\t%.4f\t%.4f\t%+.4f\t%.6f\n",
			f.Symbol, slots.Multiplier(f.Symbol), f.Expected, f.Observed, f.Deviation, slots.LineProbability(f.Symbol))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := make([]string, 0, len(report.LineHits))
	for name := range report.LineHits {
		lines = append(lines, name)
	}
	sort.Strings(lines)

	fmt.Fprintln(w, "\nWinning lines:")
	for _, name := range lines {
		fmt.Fprintf(w, "  %-14s %d\n", name, report.LineHits[name])
	}

	fmt.Fprintf(w, "\nHit rate:         %.2f%%\n", report.HitRate*100)
	fmt.Fprintf(w, "Wagered:          %d\n", report.TotalWagered)
	fmt.Fprintf(w, "Returned:         %d\n", report.TotalReturned)
	fmt.Fprintf(w, "Return to player: %.2f%%\n", report.ReturnToPlayer*100)
	fmt.Fprintf(w, "Chi-squared:      %.2f (df=%d)\n", report.ChiSquared, len(report.Frequencies)-1)
	return nil
}
