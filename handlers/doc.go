// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quickpoll API.

# Handler Types

Each handler is a struct holding the dependency it serves:

  - SessionHandler: Login, current session, logout
  - PollHandler: Poll listing and admin management (create, delete, reset)
  - VotingHandler: Vote submission and the one-question-at-a-time wizard
  - ResultsHandler: Single poll lookup and admin statistics
  - EventsHandler: Server-Sent Event stream of poll changes

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(store)

Handlers behind RequireSession read the caller with middleware.SessionFrom.

# Error Mapping

Store errors are translated in one place:

	poll.ErrValidation                               → 400
	poll.ErrNotFound, poll.ErrUnknownPoll            → 404
	poll.ErrDuplicateQuestion, ErrAlreadyVoted,
	ErrUnknownOption                                 → 409
	anything else (persistence)                      → 500

# Voting Flow

	POST /sessions → Login (returns session_token)
	GET  /wizard   → Wizard (next unanswered poll)
	POST /votes    → Vote (one per participant per question)
	GET  /events   → Stream (live counts)
*/
package handlers
