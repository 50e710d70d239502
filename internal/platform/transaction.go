package platform

import "time"

const (
	TxDeposit     = "deposit"
	TxWithdrawal  = "withdrawal"
	TxBonus       = "bonus"
	TxReferral    = "referral"
	TxDailyReward = "daily_reward"
	TxLevelReward = "level_reward"
)

const (
	TxPending   = "pending"
	TxCompleted = "completed"
	TxFailed    = "failed"
)

// Transaction is an append-only record of a balance-affecting event.
type Transaction struct {
	Id          string    `json:"_id"`
	Type        string    `json:"type"`   // deposit, withdrawal, bonus, referral, daily_reward, level_reward
	Status      string    `json:"status"` // pending, completed, failed
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
