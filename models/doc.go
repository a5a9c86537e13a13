// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: role, username, password
  - CreatePollRequest: question, options, overwrite
  - ResetPollRequest: question or all
  - VoteRequest: question, option

# Response Types

Types for JSON responses:

  - LoginResponse: session_token, role, participant_id
  - SessionResponse: role, participant_id, created_at
  - PollListResponse: polls with counts and the caller's own vote
  - CreatePollResponse: poll, message
  - VoteResponse: question, option, message
  - WizardResponse: answered, total, done, next, answers
  - MessageResponse: message
  - ErrorResponse: error, message

Poll views and admin statistics come straight from the poll package
(poll.PollView, poll.Summary).
*/
package models
