// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/PrakharGupta80900/Poll/middleware"
	"github.com/PrakharGupta80900/Poll/models"
	"github.com/PrakharGupta80900/Poll/poll"
)

type PollHandler struct {
	store *poll.Store
}

func NewPollHandler(store *poll.Store) *PollHandler {
	return &PollHandler{store: store}
}

// ListPolls handles GET /polls
// Returns every poll with live counts and the caller's own vote
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	snapshot, choices := h.store.SnapshotFor(session.ParticipantID)

	entries := make([]models.PollEntry, 0, len(snapshot))
	for _, v := range snapshot {
		entries = append(entries, pollEntry(v, choices))
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollListResponse{Polls: entries})
}

// CreatePoll handles POST /polls (admin)
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.CreatePoll(r.Context(), req.Question, req.Options, req.Overwrite); err != nil {
		pollError(w, err)
		return
	}

	view, err := h.store.Poll(req.Question)
	if err != nil {
		// deleted between create and read
		pollError(w, err)
		return
	}

	slog.Info("poll created", "question", view.Question, "options", len(view.Options), "overwrite", req.Overwrite)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		Poll:    view,
		Message: "Poll created successfully",
	})
}

// DeletePoll handles DELETE /polls?question=... (admin)
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	question := strings.TrimSpace(r.URL.Query().Get("question"))
	if question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	if err := h.store.DeletePoll(r.Context(), question); err != nil {
		pollError(w, err)
		return
	}

	slog.Info("poll deleted", "question", question)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Poll deleted"})
}

// ResetPolls handles POST /polls/reset (admin)
// Zeroes one poll, or every poll when all is set
func (h *PollHandler) ResetPolls(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	question := strings.TrimSpace(req.Question)
	if req.All == (question != "") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "exactly one of question or all is required")
		return
	}

	var err error
	if req.All {
		err = h.store.ResetAll(r.Context())
	} else {
		err = h.store.ResetPoll(r.Context(), question)
	}
	if err != nil {
		pollError(w, err)
		return
	}

	slog.Info("votes reset", "question", question, "all", req.All)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Votes reset"})
}

func pollEntry(v poll.PollView, choices map[string]string) models.PollEntry {
	entry := models.PollEntry{PollView: v}
	if opt, ok := choices[v.Question]; ok {
		entry.YourVote = &opt
	}
	return entry
}
