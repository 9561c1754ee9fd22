// Package coinflip implements a double-or-nothing coin toss.
package coinflip

import (
	"fmt"
	"strings"

	"casinobot/domain/games"
)

// Side is a coin face
type Side string

const (
	Heads Side = "heads"
	Tails Side = "tails"
)

// ParseSide accepts heads/tails in any case
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case Heads:
		return Heads, nil
	case Tails:
		return Tails, nil
	}
	return "", fmt.Errorf("invalid coin side %q", s)
}

// Flip returns heads or tails with equal probability
func Flip(rng games.Random) Side {
	if rng.IntN(2) == 0 {
		return Heads
	}
	return Tails
}

// Outcome is a settled toss
type Outcome struct {
	Guess    Side
	Result   Side
	Net      int64 // +bet or -bet
	Winnings int64 // gross amount credited when the stake is taken up front
}

// Won reports a correct guess
func (o Outcome) Won() bool {
	return o.Guess == o.Result
}

// Settle scores a guess against a flip
func Settle(guess, result Side, bet int64) Outcome {
	outcome := Outcome{Guess: guess, Result: result, Net: -bet}
	if guess == result {
		outcome.Net = bet
		outcome.Winnings = 2 * bet
	}
	return outcome
}

// Play flips and settles in one step
func Play(rng games.Random, guess Side, bet int64) Outcome {
	return Settle(guess, Flip(rng), bet)
}
