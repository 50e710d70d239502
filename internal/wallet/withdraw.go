// Package wallet holds the client-side balance and request-validation
// rules for deposits and withdrawals.
package wallet

import (
	"errors"
	"math"
	"time"

	"hatra/internal/platform"
)

var (
	ErrAmountInvalid   = errors.New("withdrawal amount must be greater than zero")
	ErrBelowMinimum    = errors.New("amount is below the configured minimum")
	ErrInsufficient    = errors.New("amount exceeds the available balance")
	ErrWalletRequired  = errors.New("wallet address is required")
	ErrHashRequired    = errors.New("transaction hash is required")
	ErrRequestFinal    = errors.New("request is already in a terminal state")
	ErrSettlementHash  = errors.New("withdrawal approval requires a settlement transaction hash")
	ErrUnknownDecision = errors.New("unknown request decision")
)

// AccountAgeDays counts whole days since account activation.
func AccountAgeDays(createdAt, now time.Time) int {
	return int(math.Floor(now.Sub(createdAt).Hours() / 24))
}

// Available computes the withdrawable part of the balance. For the first
// lockDays after activation a fixed lockAmount stays frozen; afterwards the
// whole balance is released. A zero createdAt means the lock clock never
// started and nothing is held back.
func Available(balance float64, createdAt, now time.Time, lockAmount float64, lockDays int) float64 {
	if createdAt.IsZero() {
		return balance
	}
	if AccountAgeDays(createdAt, now) < lockDays {
		return math.Max(0, balance-lockAmount)
	}
	return balance
}

// LockReleaseAt is the instant the frozen amount unlocks.
func LockReleaseAt(createdAt time.Time, lockDays int) time.Time {
	return createdAt.Add(time.Duration(lockDays) * 24 * time.Hour)
}

// Locked is the currently frozen amount, for display.
func Locked(balance, available float64) float64 {
	if balance > available {
		return balance - available
	}
	return 0
}

// ValidateWithdrawal checks a withdrawal submission against the computed
// available balance, never against the raw balance.
func ValidateWithdrawal(amount, available, minimum float64, walletAddress string) error {
	if amount <= 0 {
		return ErrAmountInvalid
	}
	if amount < minimum {
		return ErrBelowMinimum
	}
	if amount > available {
		return ErrInsufficient
	}
	if walletAddress == "" {
		return ErrWalletRequired
	}
	return nil
}

// ValidateDeposit checks a deposit submission before it leaves the client.
func ValidateDeposit(transactionHash string, amount, minimum float64) error {
	if transactionHash == "" {
		return ErrHashRequired
	}
	if amount <= 0 {
		return ErrAmountInvalid
	}
	if amount < minimum {
		return ErrBelowMinimum
	}
	return nil
}

// RoundTokens floors a token amount to the given precision, the same way
// balances are displayed everywhere else.
func RoundTokens(x float64, prec int) float64 {
	pow := math.Pow(10, float64(prec))
	return math.Floor(x*pow) / pow
}

// Terminal reports whether a request status accepts no further transitions.
func Terminal(status string) bool {
	return status == platform.RequestApproved || status == platform.RequestRejected
}

// CanTransition encodes the request lifecycle: pending may move to approved
// or rejected, both of which are final.
func CanTransition(from, to string) bool {
	if from != platform.RequestPending {
		return false
	}
	return to == platform.RequestApproved || to == platform.RequestRejected
}

// ValidateWithdrawalDecision checks an admin decision before it is sent.
// Approval demands the settlement hash of the on-chain payout.
func ValidateWithdrawalDecision(current, decision, settlementHash string) error {
	if Terminal(current) {
		return ErrRequestFinal
	}
	switch decision {
	case platform.RequestApproved:
		if settlementHash == "" {
			return ErrSettlementHash
		}
	case platform.RequestRejected:
		// optional admin note only, nothing to check
	default:
		return ErrUnknownDecision
	}
	return nil
}
