// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/PrakharGupta80900/Poll/middleware"
	"github.com/PrakharGupta80900/Poll/poll"
)

type ResultsHandler struct {
	store *poll.Store
}

func NewResultsHandler(store *poll.Store) *ResultsHandler {
	return &ResultsHandler{store: store}
}

// GetStats handles GET /stats (admin)
// Returns per-option shares, ranks and leaders for every poll
func (h *ResultsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Stats())
}

// GetPoll handles GET /poll?question=...
// Returns a single poll with live counts
func (h *ResultsHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	question := strings.TrimSpace(r.URL.Query().Get("question"))
	if question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	session := middleware.SessionFrom(r.Context())
	view, choices, err := h.store.PollFor(session.ParticipantID, question)
	if err != nil {
		pollError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, pollEntry(view, choices))
}
