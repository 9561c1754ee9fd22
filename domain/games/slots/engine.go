package slots

import "casinobot/domain/games"

// Grid is a 3x3 board indexed [row][col]
type Grid [3][3]Symbol

// Payline is a named set of three cells
type Payline struct {
	Name  string
	Cells [3][2]int
}

// Paylines are checked in this order and the first match wins
var Paylines = []Payline{
	{"top row", [3][2]int{{0, 0}, {0, 1}, {0, 2}}},
	{"middle row", [3][2]int{{1, 0}, {1, 1}, {1, 2}}},
	{"bottom row", [3][2]int{{2, 0}, {2, 1}, {2, 2}}},
	{"left column", [3][2]int{{0, 0}, {1, 0}, {2, 0}}},
	{"middle column", [3][2]int{{0, 1}, {1, 1}, {2, 1}}},
	{"right column", [3][2]int{{0, 2}, {1, 2}, {2, 2}}},
	{"diagonal", [3][2]int{{0, 0}, {1, 1}, {2, 2}}},
	{"anti-diagonal", [3][2]int{{0, 2}, {1, 1}, {2, 0}}},
}

// Outcome is an evaluated spin
type Outcome struct {
	Grid       Grid
	Line       *Payline // nil when nothing paid
	Symbol     Symbol
	Multiplier int64
	Winnings   int64 // gross amount credited, zero on a loss
}

// DrawSymbol picks one symbol by cumulative weight
func DrawSymbol(rng games.Random) Symbol {
	r := rng.Float64()
	cumulative := 0
	for _, w := range reel {
		cumulative += w.weight
		// each boundary is the float nearest cumulative/100
		if r < float64(cumulative)/reelTotal {
			return w.symbol
		}
	}
	return reel[len(reel)-1].symbol
}

// GenerateGrid fills a grid with nine independent draws
func GenerateGrid(rng games.Random) Grid {
	var grid Grid
	for row := range grid {
		for col := range grid[row] {
			grid[row][col] = DrawSymbol(rng)
		}
	}
	return grid
}

// Evaluate scores a grid against the paylines
func Evaluate(grid Grid, bet int64) Outcome {
	outcome := Outcome{Grid: grid}
	for i := range Paylines {
		line := &Paylines[i]
		a := grid[line.Cells[0][0]][line.Cells[0][1]]
		b := grid[line.Cells[1][0]][line.Cells[1][1]]
		c := grid[line.Cells[2][0]][line.Cells[2][1]]
		if a != b || b != c {
			continue
		}
		multiplier, pays := payoutMultipliers[a]
		if !pays {
			continue
		}
		outcome.Line = line
		outcome.Symbol = a
		outcome.Multiplier = multiplier
		outcome.Winnings = multiplier * bet
		return outcome
	}
	return outcome
}

// Spin draws and evaluates a grid
func Spin(rng games.Random, bet int64) Outcome {
	return Evaluate(GenerateGrid(rng), bet)
}

// Symbols flattens the grid in row-major order
func (g Grid) Symbols() []string {
	out := make([]string, 0, 9)
	for _, row := range g {
		for _, s := range row {
			out = append(out, string(s))
		}
	}
	return out
}

// String renders the grid one row per line
func (g Grid) String() string {
	s := ""
	for i, row := range g {
		if i > 0 {
			s += "\n"
		}
		s += string(row[0]) + " " + string(row[1]) + " " + string(row[2])
	}
	return s
}
