// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
	"time"
)

func testSessions() *Sessions {
	return NewSessions(Credentials{
		AdminUsername:       "admin",
		AdminPassword:       "admin-pass",
		ParticipantPassword: "join",
	})
}

func TestSessionLifecycle(t *testing.T) {
	m := testSessions()

	// Unauthenticated → Participant
	s, err := m.Login(RoleParticipant, "", "join")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if s.Role != RoleParticipant || s.IsAdmin() {
		t.Errorf("expected participant session, got %q", s.Role)
	}
	if s.Token == "" || len(s.ParticipantID) != 32 {
		t.Errorf("unexpected session identity: %+v", s)
	}

	got, err := m.Resolve(s.Token)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.ParticipantID != s.ParticipantID {
		t.Error("participant ID changed within a session")
	}

	// Participant → Unauthenticated
	if err := m.Logout(s.Token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := m.Resolve(s.Token); !errors.Is(err, ErrNoSession) {
		t.Errorf("Resolve() after logout error = %v, want ErrNoSession", err)
	}
	if err := m.Logout(s.Token); !errors.Is(err, ErrNoSession) {
		t.Errorf("second Logout() error = %v, want ErrNoSession", err)
	}
}

func TestAdminLogin(t *testing.T) {
	m := testSessions()

	if _, err := m.Login(RoleAdmin, "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if m.Count() != 0 {
		t.Errorf("failed login created a session")
	}

	s, err := m.Login(RoleAdmin, "admin", "admin-pass")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !s.IsAdmin() {
		t.Error("expected admin session")
	}
	if s.ParticipantID == "" {
		t.Error("admin sessions should carry a participant ID")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	m := testSessions()

	a, _ := m.Login(RoleParticipant, "", "join")
	b, _ := m.Login(RoleParticipant, "", "join")

	if a.Token == b.Token {
		t.Error("two logins produced the same token")
	}
	if a.ParticipantID == b.ParticipantID {
		t.Error("two logins produced the same participant ID")
	}

	m.Logout(a.Token)
	if _, err := m.Resolve(b.Token); err != nil {
		t.Errorf("logout of one session affected another: %v", err)
	}
}

func TestResolveEmptyToken(t *testing.T) {
	m := testSessions()
	if _, err := m.Resolve(""); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewSessions(Credentials{AdminUsername: "admin", AdminPassword: "admin-pass"},
		WithTTL(time.Hour),
		WithSessionClock(func() time.Time { return now }),
	)

	old, err := m.Login(RoleParticipant, "", "")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	now = now.Add(45 * time.Minute)
	fresh, err := m.Login(RoleParticipant, "", "")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if removed := m.Prune(); removed != 0 {
		t.Errorf("Prune() removed %d live sessions", removed)
	}

	now = now.Add(15 * time.Minute)
	if _, err := m.Resolve(old.Token); !errors.Is(err, ErrNoSession) {
		t.Errorf("Resolve() of expired session error = %v, want ErrNoSession", err)
	}
	if _, err := m.Resolve(fresh.Token); err != nil {
		t.Errorf("Resolve() of live session error = %v", err)
	}

	if removed := m.Prune(); removed != 1 {
		t.Errorf("Prune() removed %d sessions, want 1", removed)
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d after prune, want 1", m.Count())
	}
}

func TestDefaultSessionTTL(t *testing.T) {
	now := time.Now()
	m := NewSessions(Credentials{AdminUsername: "admin", AdminPassword: "admin-pass"},
		WithTTL(0),
		WithSessionClock(func() time.Time { return now }),
	)

	s, err := m.Login(RoleParticipant, "", "")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	now = now.Add(DefaultSessionTTL - time.Second)
	if _, err := m.Resolve(s.Token); err != nil {
		t.Errorf("Resolve() before default TTL error = %v", err)
	}
	now = now.Add(time.Second)
	if _, err := m.Resolve(s.Token); !errors.Is(err, ErrNoSession) {
		t.Errorf("Resolve() at default TTL error = %v, want ErrNoSession", err)
	}
}
