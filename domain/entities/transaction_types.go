package entities

// TransactionType represents the type of balance change
type TransactionType string

const (
	// Slots
	TransactionTypeSlotsBet    TransactionType = "slots_bet"
	TransactionTypeSlotsPayout TransactionType = "slots_payout"

	// Blackjack stakes are escrowed at deal time and paid out at settlement
	TransactionTypeBlackjackStake  TransactionType = "blackjack_stake"
	TransactionTypeBlackjackPayout TransactionType = "blackjack_payout"

	// Coinflip
	TransactionTypeCoinflipBet    TransactionType = "coinflip_bet"
	TransactionTypeCoinflipPayout TransactionType = "coinflip_payout"

	// System transactions
	TransactionTypeInitial         TransactionType = "initial"
	TransactionTypeDailyReward     TransactionType = "daily_reward"
	TransactionTypeAdminAdjustment TransactionType = "admin_adjustment"
)

// IsGamblingRelated returns true for stakes and payouts of any game
func (tt TransactionType) IsGamblingRelated() bool {
	switch tt {
	case TransactionTypeSlotsBet, TransactionTypeSlotsPayout,
		TransactionTypeBlackjackStake, TransactionTypeBlackjackPayout,
		TransactionTypeCoinflipBet, TransactionTypeCoinflipPayout:
		return true
	}
	return false
}

// IsSystemGenerated returns true for balance changes not caused by play
func (tt TransactionType) IsSystemGenerated() bool {
	return tt == TransactionTypeInitial ||
		tt == TransactionTypeDailyReward ||
		tt == TransactionTypeAdminAdjustment
}

// StakeTransactionType returns the debit type used for a game's bet
func StakeTransactionType(game Game) TransactionType {
	switch game {
	case GameSlots:
		return TransactionTypeSlotsBet
	case GameBlackjack:
		return TransactionTypeBlackjackStake
	default:
		return TransactionTypeCoinflipBet
	}
}

// PayoutTransactionType returns the credit type used for a game's winnings
func PayoutTransactionType(game Game) TransactionType {
	switch game {
	case GameSlots:
		return TransactionTypeSlotsPayout
	case GameBlackjack:
		return TransactionTypeBlackjackPayout
	default:
		return TransactionTypeCoinflipPayout
	}
}
