// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/PrakharGupta80900/Poll/middleware"
	"github.com/PrakharGupta80900/Poll/poll"
)

// pollError writes the HTTP response for an error returned by the poll store
func pollError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, poll.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, poll.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, poll.ErrDuplicateQuestion),
		errors.Is(err, poll.ErrAlreadyVoted),
		errors.Is(err, poll.ErrUnknownOption):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("poll store failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save polls")
	}
}
