// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quickpoll API.

# Route Registration

NewRouter creates a configured handler with all endpoints, wrapped in CORS:

	handler := router.NewRouter(store, sessions, broker, cfg)

# Endpoints

Public:

	GET    /health       - Liveness
	GET    /             - Banner
	POST   /sessions     - Log in as participant or admin

Any session (X-Session-Token or Authorization: Bearer):

	GET    /sessions/me  - Current session
	DELETE /sessions/me  - Log out
	GET    /polls        - Every poll with counts and your vote
	GET    /poll         - One poll (?question=)
	POST   /votes        - Vote once per question
	GET    /wizard       - Progress and next unanswered poll
	GET    /events       - Server-Sent Events of poll changes

Admin only:

	POST   /polls        - Create or overwrite a poll
	DELETE /polls        - Delete a poll (?question=)
	POST   /polls/reset  - Zero one poll or all polls
	GET    /stats        - Shares, ranks and leaders

Missing or unknown sessions get 401; participants on admin routes get 403.
*/
package router
