package events

import "casinobot/domain/entities"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange      EventType = "balance_change"
	EventTypeAccountCreated     EventType = "account_created"
	EventTypeRoundSettled       EventType = "round_settled"
	EventTypeDailyRewardClaimed EventType = "daily_reward_claimed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	UserID          int64                    `json:"user_id"`
	Username        string                   `json:"username,omitempty"`
	OldBalance      int64                    `json:"old_balance"`
	NewBalance      int64                    `json:"new_balance"`
	TransactionType entities.TransactionType `json:"transaction_type"`
	ChangeAmount    int64                    `json:"change_amount"`
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// AccountCreatedEvent is emitted the first time a user's balance is looked up
type AccountCreatedEvent struct {
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	InitialBalance int64  `json:"initial_balance"`
}

func (e AccountCreatedEvent) Type() EventType {
	return EventTypeAccountCreated
}

// RoundSettledEvent is emitted once per settled game round
type RoundSettledEvent struct {
	UserID     int64         `json:"user_id"`
	Game       entities.Game `json:"game"`
	Bet        int64         `json:"bet"`
	Winnings   int64         `json:"winnings"`
	Net        int64         `json:"net"`
	NewBalance int64         `json:"new_balance"`
}

func (e RoundSettledEvent) Type() EventType {
	return EventTypeRoundSettled
}

// DailyRewardClaimedEvent is emitted after a successful daily claim
type DailyRewardClaimedEvent struct {
	UserID     int64 `json:"user_id"`
	Reward     int64 `json:"reward"`
	NewBalance int64 `json:"new_balance"`
}

func (e DailyRewardClaimedEvent) Type() EventType {
	return EventTypeDailyRewardClaimed
}
