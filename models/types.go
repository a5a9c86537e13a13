// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/PrakharGupta80900/Poll/poll"
)

// Request types

type LoginRequest struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	Overwrite bool     `json:"overwrite"`
}

// Either Question or All must be set
type ResetPollRequest struct {
	Question string `json:"question"`
	All      bool   `json:"all"`
}

type VoteRequest struct {
	Question string `json:"question"`
	Option   string `json:"option"`
}

// Response types

type LoginResponse struct {
	SessionToken  string `json:"session_token"`
	Role          string `json:"role"`
	ParticipantID string `json:"participant_id"`
}

type SessionResponse struct {
	Role          string    `json:"role"`
	ParticipantID string    `json:"participant_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type PollEntry struct {
	poll.PollView
	YourVote *string `json:"your_vote,omitempty"`
}

type PollListResponse struct {
	Polls []PollEntry `json:"polls"`
}

type CreatePollResponse struct {
	Poll    poll.PollView `json:"poll"`
	Message string        `json:"message"`
}

type VoteResponse struct {
	Question string `json:"question"`
	Option   string `json:"option"`
	Message  string `json:"message"`
}

type WizardResponse struct {
	Answered int            `json:"answered"`
	Total    int            `json:"total"`
	Done     bool           `json:"done"`
	Next     *poll.PollView `json:"next,omitempty"`
	// Results of the polls already answered, so the participant sees live counts
	Answers []PollEntry `json:"answers"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
