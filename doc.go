// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickpoll server.

quickpoll runs a set of single-choice polls for a live audience. An admin
creates, deletes and resets polls; participants log in, step through the
open questions once each, and watch the counts move as others vote.

# Starting the Server

The server reads CLI flags, then environment variables, then a .env file:

	ADMIN_USERNAME=host ADMIN_PASSWORD=secret go run .

Or with flags and SQLite persistence:

	go run . -p 3318 -t sqlite -d polls.db -admin-user host -admin-password secret

# Configuration

Required settings:

  - ADMIN_USERNAME (-admin-user): Admin login name
  - ADMIN_PASSWORD (-admin-password) or ADMIN_PASSWORD_HASH: Admin secret,
    plain or bcrypt

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): SQLite path or PostgreSQL DSN; polls stay in memory when empty
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PARTICIPANT_PASSWORD (-participant-password): Shared join secret
  - ALLOWED_ORIGINS (-origins): Comma separated CORS origins (default: *)
  - SESSION_TTL (-session-ttl): Session lifetime (default: 12h)

# Architecture

  - poll: Poll state, vote ledger, statistics (no HTTP or SQL)
  - auth: Credentials and in-memory sessions
  - events: Fan-out of poll changes to Server-Sent Event streams
  - db: Driver selection, schema, document persistence
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, session checks, JSON helpers
  - models: Request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
