// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/PrakharGupta80900/Poll/auth"
)

// SessionHeader carries the session token
const SessionHeader = "X-Session-Token"

type sessionKey struct{}

// SessionToken returns the token from X-Session-Token or an
// "Authorization: Bearer" header
func SessionToken(r *http.Request) string {
	if token := r.Header.Get(SessionHeader); token != "" {
		return token
	}
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	return ""
}

// RequireSession rejects requests without a live session and stores the
// session in the request context
func RequireSession(sessions *auth.Sessions, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Resolve(SessionToken(r))
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Login required")
			return
		}
		next(w, r.WithContext(WithSession(r.Context(), s)))
	}
}

// RequireAdmin is RequireSession plus an admin role check
func RequireAdmin(sessions *auth.Sessions, next http.HandlerFunc) http.HandlerFunc {
	return RequireSession(sessions, func(w http.ResponseWriter, r *http.Request) {
		if !SessionFrom(r.Context()).IsAdmin() {
			ErrorResponse(w, http.StatusForbidden, "Admin role required")
			return
		}
		next(w, r)
	})
}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s *auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored by RequireSession, or nil
func SessionFrom(ctx context.Context) *auth.Session {
	s, _ := ctx.Value(sessionKey{}).(*auth.Session)
	return s
}
