package hatraapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeMessage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty falls back", "", FallbackMessage},
		{"duplicate account", "E11000 user already exists", "User already exists. Please try a different username or email."},
		{"invalid registration", "Invalid user data", "Invalid registration data. Please check your information."},
		{"replica set leak", "MongoServerError: not primary and secondaryOk=false, Replica set state", FallbackMessage},
		{"transaction leak", "Transaction numbers are only allowed on a replica set member", FallbackMessage},
		{"session leak", "Cannot use a session that has ended", FallbackMessage},
		{"database leak", "database connection refused", FallbackMessage},
		{"business message passes", "Insufficient balance", "Insufficient balance"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeMessage(tc.raw))
		})
	}
}

func TestMaintenanceSignal(t *testing.T) {
	assert.True(t, (&APIError{Status: 503}).Maintenance())
	assert.True(t, (&APIError{Status: 400, MaintenanceMode: true}).Maintenance())
	assert.False(t, (&APIError{Status: 500}).Maintenance())
}

func TestAuthFailure(t *testing.T) {
	assert.True(t, (&APIError{Status: 401}).AuthFailure())
	assert.True(t, (&APIError{Status: 403}).AuthFailure())
	assert.False(t, (&APIError{Status: 400}).AuthFailure())
	// maintenance wins even when the status would look like an auth failure
	assert.False(t, (&APIError{Status: 401, MaintenanceMode: true}).AuthFailure())
	// kill-switch refusals keep the session intact too
	assert.False(t, (&APIError{Status: 403, WithdrawalsDisabled: true}).AuthFailure())
}

func TestTransient(t *testing.T) {
	assert.True(t, (&APIError{Status: 0}).Transient())
	assert.True(t, (&APIError{Status: 500}).Transient())
	assert.False(t, (&APIError{Status: 503}).Transient())
	assert.False(t, (&APIError{Status: 404}).Transient())
}

func TestDisplayMessage(t *testing.T) {
	assert.Equal(t, "Insufficient balance", DisplayMessage(&APIError{Status: 400, Message: "Insufficient balance"}))
	assert.Equal(t, FallbackMessage, DisplayMessage(errors.New("dial tcp: connection refused")))
}

func TestErrorsAsHelpers(t *testing.T) {
	maintenance := error(&APIError{Status: 503})
	assert.True(t, IsMaintenance(maintenance))
	assert.False(t, IsAuthFailure(maintenance))

	denied := error(&APIError{Status: 401})
	assert.True(t, IsAuthFailure(denied))
	assert.False(t, IsMaintenance(denied))
}
