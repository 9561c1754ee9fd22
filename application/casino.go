package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casinobot/config"
	"casinobot/domain/entities"
	"casinobot/domain/games"
	"casinobot/domain/games/blackjack"
	"casinobot/domain/games/coinflip"
	"casinobot/domain/interfaces"
	"casinobot/domain/services"

	log "github.com/sirupsen/logrus"
)

// leaderboardCacheDepth is how many accounts a cache rebuild loads
const leaderboardCacheDepth = 100

// ErrInvalidAmount rejects a non-positive admin adjustment
var ErrInvalidAmount = errors.New("amount must be positive")

// UserLocker serializes work for one user
type UserLocker interface {
	Lock(discordID int64) func()
}

// serviceSet holds the domain services bound to one unit of work
type serviceSet struct {
	ledger      interfaces.LedgerService
	stats       interfaces.StatsService
	challenges  interfaces.ChallengeService
	casino      interfaces.CasinoService
	leaderboard interfaces.LeaderboardService
	accounts    interfaces.AccountRepository
}

// Casino runs every player operation as one locked, transactional unit.
// Services are built fresh per call from the unit of work's repositories.
type Casino struct {
	uowFactory interfaces.UnitOfWorkFactory
	locker     UserLocker
	cache      interfaces.LeaderboardCache
	rng        games.Random
	now        func() time.Time
}

// NewCasino creates the casino facade. cache may be nil.
func NewCasino(uowFactory interfaces.UnitOfWorkFactory, locker UserLocker, cache interfaces.LeaderboardCache, rng games.Random) *Casino {
	if rng == nil {
		rng = games.DefaultRandom
	}
	return &Casino{
		uowFactory: uowFactory,
		locker:     locker,
		cache:      cache,
		rng:        rng,
		now:        time.Now,
	}
}

// Account returns the user's account, creating it with the starting balance on first use
func (c *Casino) Account(ctx context.Context, discordID int64, username string) (*entities.Account, error) {
	var account *entities.Account
	err := c.inTransaction(ctx, "get balance", discordID, func(svc *serviceSet) error {
		var err error
		account, err = svc.ledger.GetAccount(ctx, discordID, username)
		return err
	})
	return account, err
}

// PlaySlots debits the bet, spins and pays out
func (c *Casino) PlaySlots(ctx context.Context, discordID int64, username string, bet int64) (*interfaces.SlotsRound, error) {
	var round *interfaces.SlotsRound
	err := c.inTransaction(ctx, "slots spin", discordID, func(svc *serviceSet) error {
		var err error
		round, err = svc.casino.PlaySlots(ctx, discordID, username, bet)
		return err
	})
	return round, err
}

// StartBlackjack takes the stake and deals a new hand
func (c *Casino) StartBlackjack(ctx context.Context, discordID int64, username string, bet int64) (*interfaces.BlackjackRound, error) {
	var round *interfaces.BlackjackRound
	err := c.inTransaction(ctx, "blackjack deal", discordID, func(svc *serviceSet) error {
		var err error
		round, err = svc.casino.StartBlackjack(ctx, discordID, username, bet)
		return err
	})
	return round, err
}

// ActBlackjack applies hit or stand. The passed hand is never modified.
func (c *Casino) ActBlackjack(ctx context.Context, discordID int64, hand *blackjack.Round, action interfaces.BlackjackAction) (*interfaces.BlackjackRound, error) {
	if hand == nil || hand.IsSettled() {
		return nil, blackjack.ErrRoundSettled
	}
	if action != interfaces.BlackjackHit && action != interfaces.BlackjackStand {
		return nil, fmt.Errorf("unknown blackjack action %q", action)
	}

	var round *interfaces.BlackjackRound
	err := c.inTransaction(ctx, "blackjack "+string(action), discordID, func(svc *serviceSet) error {
		var err error
		round, err = svc.casino.ActBlackjack(ctx, discordID, hand, action)
		return err
	})
	return round, err
}

// PlayCoinflip debits the bet, flips and pays out
func (c *Casino) PlayCoinflip(ctx context.Context, discordID int64, username string, guess coinflip.Side, bet int64) (*interfaces.CoinflipRound, error) {
	var round *interfaces.CoinflipRound
	err := c.inTransaction(ctx, "coinflip", discordID, func(svc *serviceSet) error {
		var err error
		round, err = svc.casino.PlayCoinflip(ctx, discordID, username, guess, bet)
		return err
	})
	return round, err
}

// ClaimDaily grants the daily reward once per calendar day
func (c *Casino) ClaimDaily(ctx context.Context, discordID int64, username string) (*entities.Account, error) {
	var account *entities.Account
	err := c.inTransaction(ctx, "daily claim", discordID, func(svc *serviceSet) error {
		var err error
		account, err = svc.challenges.ClaimDaily(ctx, discordID, username, c.now())
		return err
	})
	return account, err
}

// Profile gathers balance, stats and challenge progress
func (c *Casino) Profile(ctx context.Context, discordID int64, username string) (*entities.Profile, error) {
	var profile *entities.Profile
	err := c.inTransaction(ctx, "profile", discordID, func(svc *serviceSet) error {
		var err error
		profile, err = svc.casino.GetProfile(ctx, discordID, username, c.now())
		return err
	})
	return profile, err
}

// AddBalance credits an admin adjustment
func (c *Casino) AddBalance(ctx context.Context, discordID int64, username string, amount int64, grantedBy int64) (*entities.Account, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var account *entities.Account
	err := c.inTransaction(ctx, "add balance", discordID, func(svc *serviceSet) error {
		if _, err := svc.ledger.GetAccount(ctx, discordID, username); err != nil {
			return err
		}
		var err error
		account, err = svc.ledger.AdjustBalance(ctx, discordID, amount, entities.TransactionTypeAdminAdjustment, map[string]any{
			"granted_by": grantedBy,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"discordID":  discordID,
		"amount":     amount,
		"grantedBy":  grantedBy,
		"newBalance": account.Balance,
	}).Info("Admin balance adjustment")

	return account, nil
}

// Leaderboard returns the richest accounts
func (c *Casino) Leaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = config.Get().LeaderboardSize
	}

	var entries []*entities.LeaderboardEntry
	err := c.inTransaction(ctx, "leaderboard", 0, func(svc *serviceSet) error {
		var err error
		entries, err = svc.leaderboard.Top(ctx, limit)
		return err
	})
	return entries, err
}

// RebuildLeaderboard reloads the cache from the database. No-op without a cache.
func (c *Casino) RebuildLeaderboard(ctx context.Context) error {
	if c.cache == nil {
		return nil
	}

	var accounts []*entities.Account
	err := c.inTransaction(ctx, "leaderboard rebuild", 0, func(svc *serviceSet) error {
		var err error
		accounts, err = svc.accounts.GetTopByBalance(ctx, leaderboardCacheDepth)
		return err
	})
	if err != nil {
		return err
	}

	if err := c.cache.Rebuild(ctx, accounts); err != nil {
		return fmt.Errorf("failed to rebuild leaderboard cache: %w", err)
	}
	log.WithField("accounts", len(accounts)).Debug("Leaderboard cache rebuilt")
	return nil
}

// inTransaction locks the user (when discordID is set), runs fn in a fresh unit of work and commits.
// Anything that is not a domain outcome comes back as a StorageError and nothing is applied.
func (c *Casino) inTransaction(ctx context.Context, op string, discordID int64, fn func(svc *serviceSet) error) error {
	if discordID != 0 && c.locker != nil {
		unlock := c.locker.Lock(discordID)
		defer unlock()
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return entities.NewStorageError(op, err)
	}
	defer uow.Rollback()

	if err := fn(c.buildServices(uow)); err != nil {
		if !entities.IsDomainError(err) {
			log.WithFields(log.Fields{
				"op":        op,
				"discordID": discordID,
			}).WithError(err).Error("Casino operation failed")
		}
		return entities.NewStorageError(op, err)
	}

	if err := uow.Commit(); err != nil {
		return entities.NewStorageError(op, err)
	}
	return nil
}

func (c *Casino) buildServices(uow interfaces.UnitOfWork) *serviceSet {
	publisher := uow.EventBus()
	ledger := services.NewLedgerService(uow.AccountRepository(), uow.BalanceHistoryRepository(), publisher)
	stats := services.NewStatsService(uow.StatsRepository())
	challenges := services.NewChallengeService(uow.ChallengeRepository(), uow.AccountRepository(), ledger, publisher)

	return &serviceSet{
		ledger:      ledger,
		stats:       stats,
		challenges:  challenges,
		casino:      services.NewCasinoService(ledger, stats, challenges, publisher, c.rng),
		leaderboard: services.NewLeaderboardService(uow.AccountRepository(), c.cache),
		accounts:    uow.AccountRepository(),
	}
}
