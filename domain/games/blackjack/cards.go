// Package blackjack implements a single-player hand against the dealer.
package blackjack

import (
	"errors"

	"casinobot/domain/games"
)

// Card is a rank only; suits never affect play
type Card string

var ranks = []Card{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// ErrDeckEmpty is returned when drawing from an exhausted deck
var ErrDeckEmpty = errors.New("deck is empty")

// Deck deals from the end of its card slice
type Deck struct {
	cards []Card
}

// NewDeck returns a shuffled 52-card deck
func NewDeck(rng games.Random) *Deck {
	cards := make([]Card, 0, len(ranks)*4)
	for i := 0; i < 4; i++ {
		cards = append(cards, ranks...)
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// NewStackedDeck builds a deck that deals cards in the given order
func NewStackedDeck(dealOrder ...Card) *Deck {
	cards := make([]Card, len(dealOrder))
	for i, c := range dealOrder {
		cards[len(dealOrder)-1-i] = c
	}
	return &Deck{cards: cards}
}

// Draw pops the last card
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return "", ErrDeckEmpty
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Value returns the card's base value, aces counting 11
func (c Card) Value() int {
	switch c {
	case "J", "Q", "K", "10":
		return 10
	case "A":
		return 11
	default:
		if len(c) == 1 && c[0] >= '2' && c[0] <= '9' {
			return int(c[0] - '0')
		}
		return 0
	}
}
