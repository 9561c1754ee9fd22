package blackjack

import (
	"fmt"

	"casinobot/domain/entities"
	"casinobot/domain/games"
)

// State is the lifecycle position of a round
type State string

const (
	StateDealing    State = "DEALING"
	StatePlayerTurn State = "PLAYER_TURN"
	StateDealerTurn State = "DEALER_TURN"
	StateSettled    State = "SETTLED"
)

// Outcome is the settled result from the player's side
type Outcome string

const (
	OutcomePending Outcome = ""
	OutcomeWin     Outcome = "win"
	OutcomePush    Outcome = "push"
	OutcomeLoss    Outcome = "loss"
	OutcomeBust    Outcome = "bust"
)

// DealerStandsOn is the total at which the dealer stops drawing
const DealerStandsOn = 17

// ErrRoundSettled rejects actions after settlement
var ErrRoundSettled = fmt.Errorf("%w: round already settled", entities.ErrSessionExpired)

// Round is one hand of blackjack
type Round struct {
	State   State
	Bet     int64
	Player  Hand
	Dealer  Hand
	Outcome Outcome
	deck    *Deck
}

// NewRound shuffles a fresh deck and deals the opening hands
func NewRound(rng games.Random, bet int64) (*Round, error) {
	return NewRoundWithDeck(NewDeck(rng), bet)
}

// NewRoundWithDeck deals the opening hands from the given deck: two to the player, then two to the dealer
func NewRoundWithDeck(deck *Deck, bet int64) (*Round, error) {
	r := &Round{State: StateDealing, Bet: bet, deck: deck}
	for i := 0; i < 2; i++ {
		card, err := deck.Draw()
		if err != nil {
			return nil, err
		}
		r.Player = append(r.Player, card)
	}
	for i := 0; i < 2; i++ {
		card, err := deck.Draw()
		if err != nil {
			return nil, err
		}
		r.Dealer = append(r.Dealer, card)
	}
	r.State = StatePlayerTurn
	return r, nil
}

// Hit draws a card for the player. Busting settles the round as a loss without playing the dealer.
func (r *Round) Hit() error {
	if r.State != StatePlayerTurn {
		return ErrRoundSettled
	}
	card, err := r.deck.Draw()
	if err != nil {
		return err
	}
	r.Player = append(r.Player, card)
	if r.Player.IsBust() {
		r.Outcome = OutcomeBust
		r.State = StateSettled
	}
	return nil
}

// Stand ends the player's turn, plays the dealer out and settles
func (r *Round) Stand() error {
	if r.State != StatePlayerTurn {
		return ErrRoundSettled
	}
	r.State = StateDealerTurn
	for r.Dealer.Value() < DealerStandsOn {
		card, err := r.deck.Draw()
		if err != nil {
			return err
		}
		r.Dealer = append(r.Dealer, card)
	}

	player, dealer := r.Player.Value(), r.Dealer.Value()
	switch {
	case dealer > 21 || player > dealer:
		r.Outcome = OutcomeWin
	case player == dealer:
		r.Outcome = OutcomePush
	default:
		r.Outcome = OutcomeLoss
	}
	r.State = StateSettled
	return nil
}

// IsSettled reports whether the round is over
func (r *Round) IsSettled() bool {
	return r.State == StateSettled
}

// Net is the signed balance effect of the settled round: +bet, 0 or -bet
func (r *Round) Net() int64 {
	switch r.Outcome {
	case OutcomeWin:
		return r.Bet
	case OutcomeLoss, OutcomeBust:
		return -r.Bet
	default:
		return 0
	}
}

// Payout is the gross amount returned when the stake was taken up front
func (r *Round) Payout() int64 {
	if !r.IsSettled() {
		return 0
	}
	return r.Bet + r.Net()
}

// DealerUpCard is the dealer card shown during the player's turn
func (r *Round) DealerUpCard() Card {
	if len(r.Dealer) == 0 {
		return ""
	}
	return r.Dealer[0]
}

// Clone returns an independent copy including the undealt deck
func (r *Round) Clone() *Round {
	c := *r
	c.Player = append(Hand(nil), r.Player...)
	c.Dealer = append(Hand(nil), r.Dealer...)
	if r.deck != nil {
		c.deck = &Deck{cards: append([]Card(nil), r.deck.cards...)}
	}
	return &c
}
