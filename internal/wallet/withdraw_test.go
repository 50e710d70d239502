package wallet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hatra/internal/platform"
)

var now = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func ageDays(days int) time.Time {
	return now.AddDate(0, 0, -days)
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		name       string
		balance    float64
		createdAt  time.Time
		lockAmount float64
		lockDays   int
		want       float64
	}{
		{"inside lock period", 100, ageDays(10), 65, 90, 35},
		{"lock expired", 100, ageDays(91), 65, 90, 100},
		{"lock boundary day still locked", 100, ageDays(89), 65, 90, 35},
		{"exactly at lock days released", 100, ageDays(90), 65, 90, 100},
		{"floor at zero", 50, ageDays(5), 65, 90, 0},
		{"zero created-at skips lock", 100, time.Time{}, 65, 90, 100},
		{"end to end scenario", 200, ageDays(100), 65, 90, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Available(tt.balance, tt.createdAt, now, tt.lockAmount, tt.lockDays)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAccountAgeDays(t *testing.T) {
	assert.Equal(t, 10, AccountAgeDays(ageDays(10), now))
	// partial days floor down
	assert.Equal(t, 9, AccountAgeDays(now.AddDate(0, 0, -10).Add(time.Hour), now))
}

func TestLockedAndRelease(t *testing.T) {
	createdAt := ageDays(10)
	available := Available(100, createdAt, now, 65, 90)
	assert.InDelta(t, 65, Locked(100, available), 1e-9)
	assert.Equal(t, createdAt.Add(90*24*time.Hour), LockReleaseAt(createdAt, 90))
	assert.Zero(t, Locked(100, 100))
}

func TestValidateWithdrawal(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		available float64
		wallet    string
		wantErr   error
	}{
		{"zero amount", 0, 35, "0xabc", ErrAmountInvalid},
		{"negative amount", -5, 35, "0xabc", ErrAmountInvalid},
		{"below minimum", 9, 35, "0xabc", ErrBelowMinimum},
		{"exceeds available", 40, 35, "0xabc", ErrInsufficient},
		{"missing wallet", 35, 35, "", ErrWalletRequired},
		{"exact available accepted", 35, 35, "0xabc", nil},
		{"end to end amount accepted", 150, 200, "0xabc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWithdrawal(tt.amount, tt.available, 10, tt.wallet)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDeposit(t *testing.T) {
	assert.ErrorIs(t, ValidateDeposit("", 50, 10), ErrHashRequired)
	assert.ErrorIs(t, ValidateDeposit("0xhash", 5, 10), ErrBelowMinimum)
	assert.ErrorIs(t, ValidateDeposit("0xhash", 0, 10), ErrAmountInvalid)
	assert.NoError(t, ValidateDeposit("0xhash", 10, 10))
}

func TestRequestStateMachine(t *testing.T) {
	assert.True(t, CanTransition(platform.RequestPending, platform.RequestApproved))
	assert.True(t, CanTransition(platform.RequestPending, platform.RequestRejected))
	assert.False(t, CanTransition(platform.RequestApproved, platform.RequestRejected))
	assert.False(t, CanTransition(platform.RequestRejected, platform.RequestPending))
	assert.False(t, CanTransition(platform.RequestPending, "settled"))

	assert.True(t, Terminal(platform.RequestApproved))
	assert.True(t, Terminal(platform.RequestRejected))
	assert.False(t, Terminal(platform.RequestPending))
}

func TestValidateWithdrawalDecision(t *testing.T) {
	assert.ErrorIs(t,
		ValidateWithdrawalDecision(platform.RequestApproved, platform.RequestRejected, ""),
		ErrRequestFinal)
	assert.ErrorIs(t,
		ValidateWithdrawalDecision(platform.RequestPending, platform.RequestApproved, ""),
		ErrSettlementHash)
	assert.NoError(t,
		ValidateWithdrawalDecision(platform.RequestPending, platform.RequestApproved, "0xsettle"))
	assert.NoError(t,
		ValidateWithdrawalDecision(platform.RequestPending, platform.RequestRejected, ""))
	assert.ErrorIs(t,
		ValidateWithdrawalDecision(platform.RequestPending, "settled", ""),
		ErrUnknownDecision)
}

func TestRoundTokens(t *testing.T) {
	assert.InDelta(t, 12.34, RoundTokens(12.3499, 2), 1e-9)
	assert.InDelta(t, 0.0001, RoundTokens(0.00019, 4), 1e-12)
}
