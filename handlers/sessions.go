// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/PrakharGupta80900/Poll/auth"
	"github.com/PrakharGupta80900/Poll/middleware"
	"github.com/PrakharGupta80900/Poll/models"
)

type SessionHandler struct {
	sessions *auth.Sessions
}

func NewSessionHandler(sessions *auth.Sessions) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login handles POST /sessions
// Checks the credentials for the requested role and starts a session
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Role == "" {
		req.Role = auth.RoleParticipant
	}

	session, err := h.sessions.Login(req.Role, req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidRole) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "role must be one of: participant, admin")
		return
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		slog.Warn("login rejected", "role", req.Role, "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to start session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("session started", "role", session.Role)

	middleware.JSONResponse(w, http.StatusCreated, models.LoginResponse{
		SessionToken:  session.Token,
		Role:          session.Role,
		ParticipantID: session.ParticipantID,
	})
}

// Me handles GET /sessions/me
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Role:          session.Role,
		ParticipantID: session.ParticipantID,
		CreatedAt:     session.CreatedAt,
	})
}

// Logout handles DELETE /sessions/me
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	if err := h.sessions.Logout(session.Token); err != nil {
		// already logged out by a concurrent request
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Login required")
		return
	}

	slog.Info("session ended", "role", session.Role)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
}
