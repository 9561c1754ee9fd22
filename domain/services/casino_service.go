package services

import (
	"context"
	"fmt"
	"time"

	"casinobot/domain/entities"
	"casinobot/domain/events"
	"casinobot/domain/games"
	"casinobot/domain/games/blackjack"
	"casinobot/domain/games/coinflip"
	"casinobot/domain/games/slots"
	"casinobot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type casinoService struct {
	ledger         interfaces.LedgerService
	stats          interfaces.StatsService
	challenges     interfaces.ChallengeService
	eventPublisher interfaces.EventPublisher
	rng            games.Random
	now            func() time.Time
}

// NewCasinoService creates the service that turns bets into settled rounds
func NewCasinoService(ledger interfaces.LedgerService, stats interfaces.StatsService, challenges interfaces.ChallengeService, eventPublisher interfaces.EventPublisher, rng games.Random) interfaces.CasinoService {
	if rng == nil {
		rng = games.DefaultRandom
	}
	return &casinoService{
		ledger:         ledger,
		stats:          stats,
		challenges:     challenges,
		eventPublisher: eventPublisher,
		rng:            rng,
		now:            time.Now,
	}
}

func (s *casinoService) PlaySlots(ctx context.Context, discordID int64, username string, bet int64) (*interfaces.SlotsRound, error) {
	account, err := s.ledger.Debit(ctx, discordID, username, bet, entities.TransactionTypeSlotsBet, map[string]any{
		"game": string(entities.GameSlots),
	})
	if err != nil {
		return nil, err
	}

	outcome := slots.Spin(s.rng, bet)
	result := entities.RoundResult{
		DiscordID:  discordID,
		Game:       entities.GameSlots,
		Bet:        bet,
		Winnings:   outcome.Winnings,
		Net:        outcome.Winnings - bet,
		NewBalance: account.Balance,
		Terminal:   true,
	}

	if outcome.Winnings > 0 {
		account, err = s.ledger.Credit(ctx, discordID, outcome.Winnings, entities.TransactionTypeSlotsPayout, map[string]any{
			"game":       string(entities.GameSlots),
			"bet":        bet,
			"line":       outcome.Line.Name,
			"symbol":     string(outcome.Symbol),
			"multiplier": outcome.Multiplier,
		})
		if err != nil {
			return nil, err
		}
		result.NewBalance = account.Balance
	}

	if err := s.settle(ctx, &result, outcome.Grid.Symbols()); err != nil {
		return nil, err
	}

	return &interfaces.SlotsRound{Result: result, Outcome: outcome}, nil
}

// StartBlackjack takes the stake and deals. The stake stays with the house until the hand settles.
func (s *casinoService) StartBlackjack(ctx context.Context, discordID int64, username string, bet int64) (*interfaces.BlackjackRound, error) {
	account, err := s.ledger.Debit(ctx, discordID, username, bet, entities.TransactionTypeBlackjackStake, map[string]any{
		"game": string(entities.GameBlackjack),
	})
	if err != nil {
		return nil, err
	}

	hand, err := blackjack.NewRound(s.rng, bet)
	if err != nil {
		return nil, fmt.Errorf("failed to deal blackjack hand: %w", err)
	}

	return &interfaces.BlackjackRound{
		Result: entities.RoundResult{
			DiscordID:  discordID,
			Game:       entities.GameBlackjack,
			Bet:        bet,
			NewBalance: account.Balance,
		},
		Hand: hand,
	}, nil
}

// ActBlackjack applies the action to a copy of the hand so a failed settlement leaves the caller's hand unchanged
func (s *casinoService) ActBlackjack(ctx context.Context, discordID int64, hand *blackjack.Round, action interfaces.BlackjackAction) (*interfaces.BlackjackRound, error) {
	if hand == nil || hand.IsSettled() {
		return nil, blackjack.ErrRoundSettled
	}

	next := hand.Clone()
	switch action {
	case interfaces.BlackjackHit:
		if err := next.Hit(); err != nil {
			return nil, err
		}
	case interfaces.BlackjackStand:
		if err := next.Stand(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown blackjack action %q", action)
	}

	result := entities.RoundResult{
		DiscordID: discordID,
		Game:      entities.GameBlackjack,
		Bet:       next.Bet,
	}

	if !next.IsSettled() {
		balance, err := s.ledger.GetBalance(ctx, discordID)
		if err != nil {
			return nil, err
		}
		result.NewBalance = balance
		return &interfaces.BlackjackRound{Result: result, Hand: next}, nil
	}

	payout := next.Payout()
	account, err := s.ledger.Credit(ctx, discordID, payout, entities.TransactionTypeBlackjackPayout, map[string]any{
		"game":         string(entities.GameBlackjack),
		"bet":          next.Bet,
		"outcome":      string(next.Outcome),
		"player_total": next.Player.Value(),
		"dealer_total": next.Dealer.Value(),
	})
	if err != nil {
		return nil, err
	}

	result.Winnings = payout
	result.Net = next.Net()
	result.NewBalance = account.Balance
	result.Terminal = true

	if err := s.settle(ctx, &result, nil); err != nil {
		return nil, err
	}

	return &interfaces.BlackjackRound{Result: result, Hand: next}, nil
}

func (s *casinoService) PlayCoinflip(ctx context.Context, discordID int64, username string, guess coinflip.Side, bet int64) (*interfaces.CoinflipRound, error) {
	account, err := s.ledger.Debit(ctx, discordID, username, bet, entities.TransactionTypeCoinflipBet, map[string]any{
		"game":  string(entities.GameCoinflip),
		"guess": string(guess),
	})
	if err != nil {
		return nil, err
	}

	outcome := coinflip.Play(s.rng, guess, bet)
	result := entities.RoundResult{
		DiscordID:  discordID,
		Game:       entities.GameCoinflip,
		Bet:        bet,
		Winnings:   outcome.Winnings,
		Net:        outcome.Net,
		NewBalance: account.Balance,
		Terminal:   true,
	}

	if outcome.Winnings > 0 {
		account, err = s.ledger.Credit(ctx, discordID, outcome.Winnings, entities.TransactionTypeCoinflipPayout, map[string]any{
			"game":   string(entities.GameCoinflip),
			"bet":    bet,
			"result": string(outcome.Result),
		})
		if err != nil {
			return nil, err
		}
		result.NewBalance = account.Balance
	}

	if err := s.settle(ctx, &result, nil); err != nil {
		return nil, err
	}

	return &interfaces.CoinflipRound{Result: result, Outcome: outcome}, nil
}

func (s *casinoService) GetProfile(ctx context.Context, discordID int64, username string, now time.Time) (*entities.Profile, error) {
	account, err := s.ledger.GetAccount(ctx, discordID, username)
	if err != nil {
		return nil, err
	}
	general, err := s.stats.Get(ctx, discordID, entities.StatsFamilyGeneral)
	if err != nil {
		return nil, err
	}
	blackjackStats, err := s.stats.Get(ctx, discordID, entities.StatsFamilyBlackjack)
	if err != nil {
		return nil, err
	}
	challenge, err := s.challenges.ResetIfExpired(ctx, discordID, now)
	if err != nil {
		return nil, err
	}

	return &entities.Profile{
		Account:   account,
		General:   general,
		Blackjack: blackjackStats,
		Challenge: challenge,
	}, nil
}

// settle records stats, counts qualifying wins and announces the round
func (s *casinoService) settle(ctx context.Context, result *entities.RoundResult, grid []string) error {
	if err := s.stats.RecordRound(ctx, result, grid); err != nil {
		return err
	}

	if result.Won() {
		if _, err := s.challenges.RecordWin(ctx, result.DiscordID, result.Game, s.now()); err != nil {
			return err
		}
	}

	if err := s.eventPublisher.Publish(events.RoundSettledEvent{
		UserID:     result.DiscordID,
		Game:       result.Game,
		Bet:        result.Bet,
		Winnings:   result.Winnings,
		Net:        result.Net,
		NewBalance: result.NewBalance,
	}); err != nil {
		log.WithError(err).Error("Failed to publish round settled event")
	}

	log.WithFields(log.Fields{
		"discordID":  result.DiscordID,
		"game":       result.Game,
		"bet":        result.Bet,
		"winnings":   result.Winnings,
		"net":        result.Net,
		"newBalance": result.NewBalance,
	}).Info("Round settled")

	return nil
}
