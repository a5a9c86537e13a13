// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PrakharGupta80900/Poll/poll"
)

// Document names
const (
	DocPolls = "polls"
	DocVotes = "votes"
)

// DocumentStore persists the poll tallies and the vote ledger as two
// whole JSON documents, replaced together on every save.
type DocumentStore struct {
	db *sql.DB
}

func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

var _ poll.Persister = (*DocumentStore)(nil)

// Load reads both documents. Missing documents load as empty.
func (s *DocumentStore) Load(ctx context.Context) (poll.Documents, error) {
	docs := poll.Documents{
		Polls: []poll.PollRecord{},
		Votes: map[string]map[string]string{},
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, body FROM document WHERE name IN ($1, $2)
	`, DocPolls, DocVotes)
	if err != nil {
		return docs, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			return docs, fmt.Errorf("failed to scan document: %w", err)
		}

		switch name {
		case DocPolls:
			err = json.Unmarshal([]byte(body), &docs.Polls)
		case DocVotes:
			err = json.Unmarshal([]byte(body), &docs.Votes)
		}
		if err != nil {
			return docs, fmt.Errorf("failed to decode %s document: %w", name, err)
		}
	}

	return docs, rows.Err()
}

// Save replaces both documents in a single transaction
func (s *DocumentStore) Save(ctx context.Context, docs poll.Documents) error {
	polls, err := json.Marshal(docs.Polls)
	if err != nil {
		return fmt.Errorf("failed to encode polls document: %w", err)
	}
	votes, err := json.Marshal(docs.Votes)
	if err != nil {
		return fmt.Errorf("failed to encode votes document: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, doc := range []struct {
		name string
		body []byte
	}{
		{DocPolls, polls},
		{DocVotes, votes},
	} {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO document (name, body, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
		`, doc.name, string(doc.body), now)
		if err != nil {
			return fmt.Errorf("failed to write %s document: %w", doc.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit documents: %w", err)
	}
	return nil
}
