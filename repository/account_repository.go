package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casinobot/database"
	"casinobot/domain/entities"

	"github.com/jackc/pgx/v5"
)

const accountColumns = `discord_id, username, balance, last_claim_date, created_at, updated_at`

// AccountRepository implements the AccountRepository interface
type AccountRepository struct {
	q queryable
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

// newAccountRepository creates a new account repository bound to a transaction
func newAccountRepository(tx queryable) *AccountRepository {
	return &AccountRepository{q: tx}
}

// Get retrieves an account by Discord ID
func (r *AccountRepository) Get(ctx context.Context, discordID int64) (*entities.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE discord_id = $1`
	return r.getOne(ctx, query, discordID)
}

// GetForUpdate retrieves an account and holds a row lock until the transaction ends
func (r *AccountRepository) GetForUpdate(ctx context.Context, discordID int64) (*entities.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE discord_id = $1 FOR UPDATE`
	return r.getOne(ctx, query, discordID)
}

func (r *AccountRepository) getOne(ctx context.Context, query string, discordID int64) (*entities.Account, error) {
	account, err := scanAccount(r.q.QueryRow(ctx, query, discordID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", discordID, err)
	}
	return account, nil
}

// CreateIfAbsent inserts a new account, leaving an existing one untouched
func (r *AccountRepository) CreateIfAbsent(ctx context.Context, discordID int64, username string, initialBalance int64) (bool, error) {
	query := `
		INSERT INTO accounts (discord_id, username, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (discord_id) DO NOTHING
	`
	tag, err := r.q.Exec(ctx, query, discordID, username, initialBalance)
	if err != nil {
		return false, fmt.Errorf("failed to create account %d: %w", discordID, err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateBalance updates an account's balance
func (r *AccountRepository) UpdateBalance(ctx context.Context, discordID int64, newBalance int64) error {
	query := `
		UPDATE accounts
		SET balance = $1, updated_at = NOW()
		WHERE discord_id = $2
	`
	result, err := r.q.Exec(ctx, query, newBalance, discordID)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %d: %w", discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found", discordID)
	}
	return nil
}

// UpdateUsername stores the latest display name
func (r *AccountRepository) UpdateUsername(ctx context.Context, discordID int64, username string) error {
	query := `
		UPDATE accounts
		SET username = $1, updated_at = NOW()
		WHERE discord_id = $2
	`
	if _, err := r.q.Exec(ctx, query, username, discordID); err != nil {
		return fmt.Errorf("failed to update username for account %d: %w", discordID, err)
	}
	return nil
}

// SetLastClaimDate stamps the calendar date of the latest daily claim
func (r *AccountRepository) SetLastClaimDate(ctx context.Context, discordID int64, date time.Time) error {
	query := `
		UPDATE accounts
		SET last_claim_date = $1::date, updated_at = NOW()
		WHERE discord_id = $2
	`
	result, err := r.q.Exec(ctx, query, date.Format(time.DateOnly), discordID)
	if err != nil {
		return fmt.Errorf("failed to set claim date for account %d: %w", discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found", discordID)
	}
	return nil
}

// GetTopByBalance returns the richest accounts, ties broken by Discord ID
func (r *AccountRepository) GetTopByBalance(ctx context.Context, limit int) ([]*entities.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY balance DESC, discord_id ASC
		LIMIT $1
	`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*entities.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

func scanAccount(row pgx.Row) (*entities.Account, error) {
	var account entities.Account
	err := row.Scan(
		&account.DiscordID,
		&account.Username,
		&account.Balance,
		&account.LastClaimDate,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
