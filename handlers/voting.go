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

type VotingHandler struct {
	store *poll.Store
}

func NewVotingHandler(store *poll.Store) *VotingHandler {
	return &VotingHandler{store: store}
}

// Vote handles POST /votes
// Records one vote per participant per question; repeat votes get 409
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}
	if strings.TrimSpace(req.Option) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option is required")
		return
	}

	chosen, err := h.store.Vote(r.Context(), session.ParticipantID, req.Question, req.Option)
	if err != nil {
		pollError(w, err)
		return
	}

	slog.Info("vote recorded", "question", req.Question, "role", session.Role)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		Question: strings.TrimSpace(req.Question),
		Option:   chosen,
		Message:  "Thanks for voting!",
	})
}

// Wizard handles GET /wizard
// Returns the caller's progress and the next poll to answer
func (h *VotingHandler) Wizard(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	progress := h.store.Progress(session.ParticipantID)

	answers := make([]models.PollEntry, 0, len(progress.Answers))
	for _, v := range progress.Answers {
		answers = append(answers, pollEntry(v, progress.Choices))
	}

	middleware.JSONResponse(w, http.StatusOK, models.WizardResponse{
		Answered: progress.Answered,
		Total:    progress.Total,
		Done:     progress.Done(),
		Next:     progress.Next,
		Answers:  answers,
	})
}
