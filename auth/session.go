// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated caller. Its role and participant ID never
// change; logging in again creates a new session.
type Session struct {
	Token         string    `json:"session_token"`
	Role          string    `json:"role"`
	ParticipantID string    `json:"participant_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsAdmin reports whether the session may manage polls
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// DefaultSessionTTL is how long a session lives after login
const DefaultSessionTTL = 12 * time.Hour

// Sessions keeps live sessions in memory only, so every process restart
// requires a new login. Sessions older than the TTL no longer resolve and
// are removed by Prune.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	creds    Credentials
	ttl      time.Duration
	now      func() time.Time
}

// SessionOption configures Sessions
type SessionOption func(*Sessions)

// WithTTL sets the session lifetime; zero or negative means DefaultSessionTTL
func WithTTL(ttl time.Duration) SessionOption {
	return func(m *Sessions) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithSessionClock overrides time.Now for creation and expiry checks
func WithSessionClock(now func() time.Time) SessionOption {
	return func(m *Sessions) { m.now = now }
}

func NewSessions(creds Credentials, opts ...SessionOption) *Sessions {
	m := &Sessions{
		sessions: make(map[string]*Session),
		creds:    creds,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Sessions) expired(s *Session, now time.Time) bool {
	return !now.Before(s.CreatedAt.Add(m.ttl))
}

// Login checks the credentials for role and starts a new session
func (m *Sessions) Login(role, username, password string) (*Session, error) {
	if err := m.creds.Check(role, username, password); err != nil {
		return nil, err
	}

	token, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	participantID, err := GenerateParticipantID()
	if err != nil {
		return nil, err
	}

	s := &Session{
		Token:         token.String(),
		Role:          role,
		ParticipantID: participantID,
		CreatedAt:     m.now(),
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()

	return s, nil
}

// Resolve returns the session for token
func (m *Sessions) Resolve(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok || m.expired(s, m.now()) {
		return nil, ErrNoSession
	}
	return s, nil
}

// Logout ends the session for token
func (m *Sessions) Logout(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[token]; !ok {
		return ErrNoSession
	}
	delete(m.sessions, token)
	return nil
}

// Prune removes expired sessions and returns how many were removed
func (m *Sessions) Prune() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for token, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

// Count returns the number of stored sessions, including expired ones not yet pruned
func (m *Sessions) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
