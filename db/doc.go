// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores poll state in SQLite or PostgreSQL.

# Connecting

	conn, err := db.Open("sqlite", "file:polls.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite uses modernc.org/sqlite (pure Go, no cgo); PostgreSQL uses
github.com/lib/pq.

# Schema Creation

CreateSchema initializes the single document table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Documents

	document(name TEXT PRIMARY KEY, body TEXT, updated_at TIMESTAMP)

Two rows are kept:

  - polls: JSON array of {question, tally: [{name, count}]} in creation order
  - votes: JSON object participant_id → {question → option}

DocumentStore implements poll.Persister. Save replaces both rows in one
transaction; the last write wins.
*/
package db
