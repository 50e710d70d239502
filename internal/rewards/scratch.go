package rewards

import (
	"fmt"
	"time"
)

// ClaimStatus is the result of the daily scratch-card eligibility check.
// NextEligibleAt is zero when Eligible is true.
type ClaimStatus struct {
	Eligible       bool
	NextEligibleAt time.Time
}

// CanClaim decides whether the daily reward can be claimed at the given
// instant. One claim per calendar day, never on Sundays. The server
// enforces the same rule; this is advisory UI gating plus pre-submit
// validation, nothing more.
func CanClaim(now time.Time, lastClaim *time.Time) ClaimStatus {
	// Sunday blackout, regardless of the last claim
	if now.Weekday() == time.Sunday {
		return ClaimStatus{NextEligibleAt: NextMidnight(now)}
	}
	if lastClaim == nil || lastClaim.IsZero() {
		return ClaimStatus{Eligible: true}
	}
	// Claimed today already if the last claim is at or after this midnight
	if !lastClaim.Before(StartOfDay(now)) {
		return ClaimStatus{NextEligibleAt: NextMidnight(now)}
	}
	return ClaimStatus{Eligible: true}
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func NextMidnight(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// Countdown renders the remaining wait as "3h 12m 5s", matching what the
// dashboard shows under a locked scratch card.
func Countdown(now, next time.Time) string {
	diff := next.Sub(now)
	if diff <= 0 {
		return ""
	}
	hours := int(diff.Hours())
	minutes := int(diff.Minutes()) % 60
	seconds := int(diff.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
