package services

import (
	"context"
	"fmt"
	"time"

	"casinobot/config"
	"casinobot/domain/entities"
	"casinobot/domain/events"
	"casinobot/domain/interfaces"
	"casinobot/domain/utils"

	log "github.com/sirupsen/logrus"
)

type challengeService struct {
	challengeRepo  interfaces.ChallengeRepository
	accountRepo    interfaces.AccountRepository
	ledger         interfaces.LedgerService
	eventPublisher interfaces.EventPublisher
}

// NewChallengeService creates a new challenge and daily reward service
func NewChallengeService(challengeRepo interfaces.ChallengeRepository, accountRepo interfaces.AccountRepository, ledger interfaces.LedgerService, eventPublisher interfaces.EventPublisher) interfaces.ChallengeService {
	return &challengeService{
		challengeRepo:  challengeRepo,
		accountRepo:    accountRepo,
		ledger:         ledger,
		eventPublisher: eventPublisher,
	}
}

func (s *challengeService) ResetIfExpired(ctx context.Context, discordID int64, now time.Time) (*entities.Challenge, error) {
	loc := config.Get().Location()
	dailyStart := utils.DailyWindowStart(now, loc)
	weeklyStart := utils.WeeklyWindowStart(now, loc)

	challenge, err := s.challengeRepo.Get(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenges for %d: %w", discordID, err)
	}

	if challenge == nil {
		challenge = &entities.Challenge{
			DiscordID:       discordID,
			LastDailyReset:  dailyStart,
			LastWeeklyReset: weeklyStart,
		}
	} else if !challenge.ResetIfExpired(dailyStart, weeklyStart) {
		return challenge, nil
	}

	if err := s.challengeRepo.Upsert(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to save challenges for %d: %w", discordID, err)
	}
	return challenge, nil
}

func (s *challengeService) RecordWin(ctx context.Context, discordID int64, game entities.Game, now time.Time) (*entities.Challenge, error) {
	challenge, err := s.ResetIfExpired(ctx, discordID, now)
	if err != nil {
		return nil, err
	}
	if !s.Qualifies(game) {
		return challenge, nil
	}

	challenge.AddWin()
	if err := s.challengeRepo.Upsert(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to save challenges for %d: %w", discordID, err)
	}
	return challenge, nil
}

func (s *challengeService) Qualifies(game entities.Game) bool {
	for _, g := range config.Get().ChallengeGames {
		if entities.Game(g) == game {
			return true
		}
	}
	return false
}

func (s *challengeService) ClaimDaily(ctx context.Context, discordID int64, username string, now time.Time) (*entities.Account, error) {
	cfg := config.Get()
	today := utils.CalendarDate(now, cfg.Location())

	account, err := s.ledger.GetAccount(ctx, discordID, username)
	if err != nil {
		return nil, err
	}
	if account.HasClaimedOn(today) {
		return nil, entities.ErrAlreadyClaimed
	}

	account, err = s.ledger.AdjustBalance(ctx, discordID, cfg.DailyReward, entities.TransactionTypeDailyReward, map[string]any{
		"claim_date": today.Format(time.DateOnly),
	})
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SetLastClaimDate(ctx, discordID, today); err != nil {
		return nil, fmt.Errorf("failed to stamp claim date for %d: %w", discordID, err)
	}
	account.LastClaimDate = &today

	if err := s.eventPublisher.Publish(events.DailyRewardClaimedEvent{
		UserID:     discordID,
		Reward:     cfg.DailyReward,
		NewBalance: account.Balance,
	}); err != nil {
		log.WithError(err).Error("Failed to publish daily reward claimed event")
	}

	log.WithFields(log.Fields{
		"discordID":  discordID,
		"reward":     cfg.DailyReward,
		"newBalance": account.Balance,
	}).Info("Daily reward claimed")

	return account, nil
}
