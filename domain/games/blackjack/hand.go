package blackjack

import "strings"

// Hand is an ordered set of cards
type Hand []Card

// HandValue totals the cards, demoting aces from 11 to 1 while the total is over 21
func HandValue(cards []Card) int {
	total, aces := 0, 0
	for _, c := range cards {
		total += c.Value()
		if c == "A" {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// Value returns the hand total
func (h Hand) Value() int {
	return HandValue(h)
}

// IsBust reports a total over 21
func (h Hand) IsBust() bool {
	return h.Value() > 21
}

// String joins the cards with spaces
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
