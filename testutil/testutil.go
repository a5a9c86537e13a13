// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PrakharGupta80900/Poll/auth"
	"github.com/PrakharGupta80900/Poll/cliparse"
	"github.com/PrakharGupta80900/Poll/db"
	"github.com/PrakharGupta80900/Poll/middleware"
	"github.com/PrakharGupta80900/Poll/poll"
)

// Test credentials used by GetTestConfig
const (
	AdminUsername       = "test-admin"
	AdminPassword       = "test-admin-pass"
	ParticipantPassword = "test-join"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                3318,
		DatabaseType:        "sqlite",
		AdminUsername:       AdminUsername,
		AdminPassword:       AdminPassword,
		ParticipantPassword: ParticipantPassword,
		AllowedOrigins:      []string{"*"},
		SessionTTL:          time.Hour,
	}
}

// Credentials returns the session credentials for a config
func Credentials(cfg cliparse.Config) auth.Credentials {
	return auth.Credentials{
		AdminUsername:       cfg.AdminUsername,
		AdminPassword:       cfg.AdminPassword,
		AdminPasswordHash:   cfg.AdminPasswordHash,
		ParticipantPassword: cfg.ParticipantPassword,
	}
}

// NewTestStore returns a store persisting to conn, or an in-memory store
// when conn is nil
func NewTestStore(t *testing.T, conn *sql.DB, opts ...poll.Option) *poll.Store {
	t.Helper()

	if conn != nil {
		opts = append(opts, poll.WithPersister(db.NewDocumentStore(conn)))
	}
	store := poll.NewStore(opts...)
	if err := store.Restore(context.Background()); err != nil {
		t.Fatalf("Failed to restore store: %v", err)
	}
	return store
}

// CreateTestPoll creates a poll directly in the store
func CreateTestPoll(t *testing.T, store *poll.Store, question string, options ...string) {
	t.Helper()

	if err := store.CreatePoll(context.Background(), question, options, false); err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
}

// LoginParticipant starts a participant session
func LoginParticipant(t *testing.T, sessions *auth.Sessions) *auth.Session {
	t.Helper()

	s, err := sessions.Login(auth.RoleParticipant, "", ParticipantPassword)
	if err != nil {
		t.Fatalf("Failed to log in participant: %v", err)
	}
	return s
}

// LoginAdmin starts an admin session
func LoginAdmin(t *testing.T, sessions *auth.Sessions) *auth.Session {
	t.Helper()

	s, err := sessions.Login(auth.RoleAdmin, AdminUsername, AdminPassword)
	if err != nil {
		t.Fatalf("Failed to log in admin: %v", err)
	}
	return s
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AsSession returns a copy of req carrying s in its context and token header,
// as RequireSession would
func AsSession(req *http.Request, s *auth.Session) *http.Request {
	req.Header.Set(middleware.SessionHeader, s.Token)
	return req.WithContext(middleware.WithSession(req.Context(), s))
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
