package entities

import "time"

// Account is a user's casino wallet
type Account struct {
	DiscordID     int64      `db:"discord_id"`
	Username      string     `db:"username"`
	Balance       int64      `db:"balance"`
	LastClaimDate *time.Time `db:"last_claim_date"` // Calendar date of the last daily reward claim
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// CanAfford checks if the account balance covers the amount
func (a *Account) CanAfford(amount int64) bool {
	return a.Balance >= amount
}

// ValidateBet checks that a bet is positive and covered by the balance
func (a *Account) ValidateBet(bet int64) error {
	if bet <= 0 {
		return ErrInvalidBet
	}
	if !a.CanAfford(bet) {
		return ErrInsufficientBalance
	}
	return nil
}

// HasClaimedOn reports whether the daily reward was already claimed on the given calendar day
func (a *Account) HasClaimedOn(day time.Time) bool {
	if a.LastClaimDate == nil {
		return false
	}
	y1, m1, d1 := a.LastClaimDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
