// Package session persists the bearer token and a snapshot of the user
// profile between runs. Lifecycle: Load (read persisted) -> active ->
// Clear (logout or genuine auth failure). Maintenance signals never clear
// a session.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hatra/internal/platform"
)

type Session struct {
	mu   sync.Mutex
	path string

	Token   string         `json:"token"`
	Profile *platform.User `json:"profile,omitempty"`
}

// Load reads the persisted session. A missing or unreadable file is a
// fresh logged-out session, not an error.
func Load(path string) *Session {
	s := &Session{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(raw, s); err != nil {
		return &Session{path: path}
	}
	return s
}

// SetAuth installs a fresh login and persists it.
func (s *Session) SetAuth(token string, profile *platform.User) error {
	s.mu.Lock()
	s.Token = token
	s.Profile = profile
	s.mu.Unlock()
	return s.save()
}

// SetProfile refreshes the cached snapshot after an authoritative fetch.
func (s *Session) SetProfile(profile *platform.User) error {
	s.mu.Lock()
	s.Profile = profile
	s.mu.Unlock()
	return s.save()
}

// Clear tears the session down and removes the persisted file.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.Token = ""
	s.Profile = nil
	s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// BearerToken is the hook the API client consults on every request.
func (s *Session) BearerToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Token
}

// Active reports whether a token is present and not locally known to be
// expired. The server remains the authority; this only avoids sending a
// token that cannot possibly work.
func (s *Session) Active() bool {
	s.mu.Lock()
	token := s.Token
	s.mu.Unlock()
	if token == "" {
		return false
	}
	return !tokenExpired(token, time.Now())
}

// CachedAdmin reads the snapshot's capability flag. Routing hint only;
// every admin screen re-verifies against a fresh profile fetch.
func (s *Session) CachedAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Profile != nil && s.Profile.IsAdmin
}

func (s *Session) save() error {
	s.mu.Lock()
	raw, err := json.MarshalIndent(s, "", "  ")
	path := s.path
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// tokenExpired peeks at the exp claim without verifying the signature; the
// client has no secret and does not need one for a local staleness check.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
