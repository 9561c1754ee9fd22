package services

import (
	"context"
	"fmt"

	"casinobot/config"
	"casinobot/domain/entities"
	"casinobot/domain/interfaces"
	"casinobot/domain/utils"

	log "github.com/sirupsen/logrus"
)

type ledgerService struct {
	accountRepo        interfaces.AccountRepository
	balanceHistoryRepo interfaces.BalanceHistoryRepository
	eventPublisher     interfaces.EventPublisher
}

// NewLedgerService creates a new ledger service
func NewLedgerService(accountRepo interfaces.AccountRepository, balanceHistoryRepo interfaces.BalanceHistoryRepository, eventPublisher interfaces.EventPublisher) interfaces.LedgerService {
	return &ledgerService{
		accountRepo:        accountRepo,
		balanceHistoryRepo: balanceHistoryRepo,
		eventPublisher:     eventPublisher,
	}
}

// GetAccount locks the account row, creating the account first if needed
func (s *ledgerService) GetAccount(ctx context.Context, discordID int64, username string) (*entities.Account, error) {
	account, err := s.accountRepo.GetForUpdate(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", discordID, err)
	}
	if account != nil {
		if username != "" && account.Username != username {
			if err := s.accountRepo.UpdateUsername(ctx, discordID, username); err != nil {
				return nil, fmt.Errorf("failed to update username for %d: %w", discordID, err)
			}
			account.Username = username
		}
		return account, nil
	}

	startingBalance := config.Get().StartingBalance
	created, err := s.accountRepo.CreateIfAbsent(ctx, discordID, username, startingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create account %d: %w", discordID, err)
	}

	account, err = s.accountRepo.GetForUpdate(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", discordID, err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %d missing after create", discordID)
	}

	if created {
		log.WithFields(log.Fields{
			"discordID": discordID,
			"username":  username,
			"balance":   startingBalance,
		}).Info("Created new account")

		history := &entities.BalanceHistory{
			DiscordID:       discordID,
			BalanceBefore:   0,
			BalanceAfter:    startingBalance,
			ChangeAmount:    startingBalance,
			TransactionType: entities.TransactionTypeInitial,
			TransactionMetadata: map[string]any{
				"username": username,
			},
		}
		if err := utils.RecordBalanceChange(ctx, s.balanceHistoryRepo, s.eventPublisher, history); err != nil {
			return nil, fmt.Errorf("failed to record initial balance: %w", err)
		}
	}

	return account, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, discordID int64) (int64, error) {
	account, err := s.GetAccount(ctx, discordID, "")
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func (s *ledgerService) SetBalance(ctx context.Context, discordID int64, amount int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error) {
	account, err := s.GetAccount(ctx, discordID, "")
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, account, amount, txType, metadata)
}

func (s *ledgerService) AdjustBalance(ctx context.Context, discordID int64, delta int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error) {
	account, err := s.GetAccount(ctx, discordID, "")
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, account, account.Balance+delta, txType, metadata)
}

func (s *ledgerService) Debit(ctx context.Context, discordID int64, username string, bet int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error) {
	if bet <= 0 {
		return nil, entities.ErrInvalidBet
	}

	account, err := s.GetAccount(ctx, discordID, username)
	if err != nil {
		return nil, err
	}
	if err := account.ValidateBet(bet); err != nil {
		return nil, err
	}

	return s.apply(ctx, account, account.Balance-bet, txType, metadata)
}

func (s *ledgerService) Credit(ctx context.Context, discordID int64, amount int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error) {
	if amount < 0 {
		return nil, fmt.Errorf("credit amount must not be negative, got %d", amount)
	}
	return s.AdjustBalance(ctx, discordID, amount, txType, metadata)
}

// apply writes the new balance and records the change; a zero change writes nothing
func (s *ledgerService) apply(ctx context.Context, account *entities.Account, newBalance int64, txType entities.TransactionType, metadata map[string]any) (*entities.Account, error) {
	before := account.Balance
	if newBalance == before {
		return account, nil
	}

	if err := s.accountRepo.UpdateBalance(ctx, account.DiscordID, newBalance); err != nil {
		return nil, fmt.Errorf("failed to update balance for %d: %w", account.DiscordID, err)
	}

	if metadata == nil {
		metadata = map[string]any{}
	}
	if _, ok := metadata["username"]; !ok && account.Username != "" {
		metadata["username"] = account.Username
	}

	history := &entities.BalanceHistory{
		DiscordID:           account.DiscordID,
		BalanceBefore:       before,
		BalanceAfter:        newBalance,
		ChangeAmount:        newBalance - before,
		TransactionType:     txType,
		TransactionMetadata: metadata,
	}
	if err := utils.RecordBalanceChange(ctx, s.balanceHistoryRepo, s.eventPublisher, history); err != nil {
		return nil, fmt.Errorf("failed to record balance change: %w", err)
	}

	account.Balance = newBalance
	return account, nil
}
