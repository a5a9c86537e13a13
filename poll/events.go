// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import "time"

// Event kinds
const (
	EventPollCreated  = "poll_created"
	EventPollDeleted  = "poll_deleted"
	EventPollReset    = "poll_reset"
	EventVoteRecorded = "vote_recorded"
)

// Event describes one committed mutation. Question is empty for a reset of
// every poll. Participant identities are never included.
type Event struct {
	Kind     string    `json:"kind"`
	Question string    `json:"question,omitempty"`
	Option   string    `json:"option,omitempty"`
	At       time.Time `json:"at"`
}

// Notifier receives events after a mutation has been committed.
// Implementations must not block.
type Notifier interface {
	Notify(Event)
}
