package platform

import "time"

type User struct {
	Id                string     `json:"_id"`
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	Balance           float64    `json:"balance"` // Tokens, pegged 1:1 to USDT
	ReferralCode      string     `json:"referralCode"`
	CreatedAt         time.Time  `json:"createdAt"` // activation time, starts the withdrawal lock clock
	SpinWheelLastUsed *time.Time `json:"spinWheelLastUsed"`
	AchievedLevels    []int      `json:"achievedLevels"` // tiers already paid out, only ever grows
	CurrentLevel      int        `json:"currentLevel"`
	IsAdmin           bool       `json:"isAdmin"`
	IsActive          bool       `json:"isActive"` // false until the registration deposit is verified
	Token             string     `json:"token,omitempty"`
}
