// Package games holds the pure game engines and their shared randomness source.
package games

import "math/rand/v2"

// Random is the randomness source the engines draw from.
// *rand.Rand from math/rand/v2 satisfies it, which tests use for seeded runs.
type Random interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }
func (globalRandom) IntN(n int) int { return rand.IntN(n) }
func (globalRandom) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRandom is backed by the runtime-seeded global generator and is safe for concurrent use
var DefaultRandom Random = globalRandom{}

// NewSeededRandom returns a deterministic source
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
