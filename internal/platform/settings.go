package platform

// Platform policy defaults, used when the settings endpoint omits a value.
const (
	DefaultLockAmount = 65.0
	DefaultLockDays   = 90
	DefaultMinDeposit = 10.0
	DefaultMinWithdraw = 10.0
)

// PublicSettings is the unauthenticated subset served by GET /auth/settings.
type PublicSettings struct {
	DepositWallet      string  `json:"depositWallet"`
	DepositQrUrl       string  `json:"depositQrUrl"`
	WithdrawLockAmount float64 `json:"withdrawLockAmount"`
	WithdrawLockDays   int     `json:"withdrawLockDays"`
	MinDeposit         float64 `json:"minDeposit"`
	MinWithdraw        float64 `json:"minWithdraw"`
}

// LockAmount falls back to the policy default when the server sends nothing.
func (s PublicSettings) LockAmount() float64 {
	if s.WithdrawLockAmount > 0 {
		return s.WithdrawLockAmount
	}
	return DefaultLockAmount
}

func (s PublicSettings) LockDays() int {
	if s.WithdrawLockDays > 0 {
		return s.WithdrawLockDays
	}
	return DefaultLockDays
}

func (s PublicSettings) MinDepositAmount() float64 {
	if s.MinDeposit > 0 {
		return s.MinDeposit
	}
	return DefaultMinDeposit
}

func (s PublicSettings) MinWithdrawAmount() float64 {
	if s.MinWithdraw > 0 {
		return s.MinWithdraw
	}
	return DefaultMinWithdraw
}

// AdminSettings is the full switchboard behind GET/PUT /admin/settings.
type AdminSettings struct {
	DepositWallet         string  `json:"depositWallet"`
	DepositQrUrl          string  `json:"depositQrUrl"`
	ConversionRate        float64 `json:"conversionRate"`
	MinDeposit            float64 `json:"minDeposit"`
	MaxDeposit            float64 `json:"maxDeposit"`
	MinWithdraw           float64 `json:"minWithdraw"`
	MaxWithdraw           float64 `json:"maxWithdraw"`
	WithdrawLockAmount    float64 `json:"withdrawLockAmount"`
	WithdrawLockDays      int     `json:"withdrawLockDays"`
	MinDailyReward        float64 `json:"minDailyReward"`
	MaxDailyReward        float64 `json:"maxDailyReward"`
	ReferralBonus         float64 `json:"referralBonus"`
	UserLimit             int     `json:"userLimit"`
	MaintenanceMode       bool    `json:"maintenanceMode"`
	NewRegistrations      bool    `json:"newRegistrations"`
	DepositsEnabled       bool    `json:"depositsEnabled"`
	WithdrawalsEnabled    bool    `json:"withdrawalsEnabled"`
	EmailNotifications    bool    `json:"emailNotifications"`
	TelegramNotifications bool    `json:"telegramNotifications"`
	SupportEmail          string  `json:"supportEmail"`
	TelegramSupport       string  `json:"telegramSupport"`
	CompanyPhone          string  `json:"companyPhone"`
}

// SettingUpdate is the wire shape the settings endpoint expects, one entry
// per changed key.
type SettingUpdate struct {
	Key         string      `json:"key"`
	Value       interface{} `json:"value"`
	Description string      `json:"description,omitempty"`
}
