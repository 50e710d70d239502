package hatraapi

import (
	"errors"
	"fmt"
	"strings"
)

// Fallback texts shown when the server message is missing or unsafe.
const (
	FallbackMessage = "Something went wrong. Please try again."
	NetworkMessage  = "Network error. Please check your connection and try again."
)

// APIError is every non-success outcome of a backend call. Status 0 means
// the request never got a response (network failure, timeout).
type APIError struct {
	Status     int
	Message    string // sanitized, safe to display
	RawMessage string // untouched server text, for logs only

	MaintenanceMode       bool
	RegistrationsDisabled bool
	DepositsDisabled      bool
	WithdrawalsDisabled   bool
	MaxUsersReached       bool
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Maintenance is a global signal: whatever screen triggered the call must
// route to the maintenance notice without touching stored credentials.
func (e *APIError) Maintenance() bool {
	return e.MaintenanceMode || e.Status == 503
}

// FeatureDisabled reports a kill-switch refusal: the platform is up but
// the operation is administratively closed.
func (e *APIError) FeatureDisabled() bool {
	return e.RegistrationsDisabled || e.DepositsDisabled ||
		e.WithdrawalsDisabled || e.MaxUsersReached
}

// AuthFailure means the token is missing, expired or forbidden and the
// session must be cleared. Maintenance and kill-switch refusals win over
// the raw status code; neither invalidates stored credentials.
func (e *APIError) AuthFailure() bool {
	if e.Maintenance() || e.FeatureDisabled() {
		return false
	}
	return e.Status == 401 || e.Status == 403
}

// Transient covers network failures and 5xx responses the user may retry.
func (e *APIError) Transient() bool {
	if e.Maintenance() {
		return false
	}
	return e.Status == 0 || e.Status >= 500
}

func IsMaintenance(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Maintenance()
}

func IsAuthFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.AuthFailure()
}

// DisplayMessage is what a toast may show for any error from this package.
func DisplayMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return FallbackMessage
}

// Backend vocabulary that must never reach the user verbatim.
var unsafeFragments = []string{"replica", "transaction", "session", "mongo", "database"}

// SanitizeMessage maps server text to something safe to display. Known
// business messages pass through (with friendlier phrasing where the UI
// always rephrased them); anything smelling of infrastructure is replaced
// by the generic fallback.
func SanitizeMessage(raw string) string {
	if raw == "" {
		return FallbackMessage
	}
	if strings.Contains(raw, "already exists") {
		return "User already exists. Please try a different username or email."
	}
	if strings.Contains(raw, "Invalid user data") {
		return "Invalid registration data. Please check your information."
	}
	lower := strings.ToLower(raw)
	for _, fragment := range unsafeFragments {
		if strings.Contains(lower, fragment) {
			return FallbackMessage
		}
	}
	return raw
}
