// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Store holds every poll and the vote ledger. Mutations are serialized by a
// single store-wide lock held from validation through persistence; reads
// load the last committed state without locking.
type Store struct {
	mu        sync.Mutex
	current   atomic.Pointer[state]
	persister Persister
	notifier  Notifier
	now       func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithPersister saves both documents after every mutation
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithNotifier publishes an Event after every committed mutation
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithClock overrides time.Now for event timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(newState())
	return s
}

// Restore replaces the store contents with the persisted documents.
// It is a no-op without a persister.
func (s *Store) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}
	s.current.Store(stateFromDocuments(docs))
	return nil
}

// mutate applies fn to a copy of the current state, saves it and then
// publishes it. Nothing is published if fn or the save fails.
func (s *Store) mutate(ctx context.Context, fn func(*state) (Event, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Load().clone()
	ev, err := fn(next)
	if err != nil {
		return err
	}

	if s.persister != nil {
		if err := s.persister.Save(ctx, next.documents()); err != nil {
			return fmt.Errorf("failed to save documents: %w", err)
		}
	}

	s.current.Store(next)

	if s.notifier != nil {
		ev.At = s.now()
		s.notifier.Notify(ev)
	}
	return nil
}

// CreatePoll installs a new poll with a zero tally. An existing question is
// rejected with ErrDuplicateQuestion unless overwrite is set, in which case
// the poll is replaced in place and its ledger entries are cleared.
func (s *Store) CreatePoll(ctx context.Context, question string, options []string, overwrite bool) error {
	p, err := NewPoll(question, options)
	if err != nil {
		return err
	}

	return s.mutate(ctx, func(st *state) (Event, error) {
		if _, exists := st.polls[p.Question]; exists {
			if !overwrite {
				return Event{}, fmt.Errorf("%w: %q", ErrDuplicateQuestion, p.Question)
			}
			st.clearForQuestion(p.Question)
		} else {
			st.order = append(st.order, p.Question)
		}
		st.polls[p.Question] = p
		return Event{Kind: EventPollCreated, Question: p.Question}, nil
	})
}

// DeletePoll removes a poll and its ledger entries
func (s *Store) DeletePoll(ctx context.Context, question string) error {
	question = strings.TrimSpace(question)
	return s.mutate(ctx, func(st *state) (Event, error) {
		if _, ok := st.polls[question]; !ok {
			return Event{}, fmt.Errorf("%w: %q", ErrNotFound, question)
		}
		st.removePoll(question)
		return Event{Kind: EventPollDeleted, Question: question}, nil
	})
}

// ResetPoll zeroes one poll's tally and clears its ledger entries, so
// everyone who voted on it may vote again.
func (s *Store) ResetPoll(ctx context.Context, question string) error {
	question = strings.TrimSpace(question)
	return s.mutate(ctx, func(st *state) (Event, error) {
		p, ok := st.polls[question]
		if !ok {
			return Event{}, fmt.Errorf("%w: %q", ErrNotFound, question)
		}
		st.polls[question] = p.zeroed()
		st.clearForQuestion(question)
		return Event{Kind: EventPollReset, Question: question}, nil
	})
}

// ResetAll zeroes every tally and clears the whole ledger
func (s *Store) ResetAll(ctx context.Context) error {
	return s.mutate(ctx, func(st *state) (Event, error) {
		for q, p := range st.polls {
			st.polls[q] = p.zeroed()
		}
		st.clearAll()
		return Event{Kind: EventPollReset}, nil
	})
}

// Vote records participantID's choice for question and returns it.
// A second vote on the same question fails with ErrAlreadyVoted and leaves
// the tally unchanged.
func (s *Store) Vote(ctx context.Context, participantID, question, option string) (string, error) {
	if participantID == "" {
		return "", fmt.Errorf("%w: participant id is required", ErrValidation)
	}
	question = strings.TrimSpace(question)
	option = strings.TrimSpace(option)

	err := s.mutate(ctx, func(st *state) (Event, error) {
		p, ok := st.polls[question]
		if !ok {
			return Event{}, fmt.Errorf("%w: %q", ErrUnknownPoll, question)
		}
		if !p.HasOption(option) {
			return Event{}, fmt.Errorf("%w: %q for %q", ErrUnknownOption, option, question)
		}
		if st.hasVoted(participantID, question) {
			return Event{}, fmt.Errorf("%w: %q", ErrAlreadyVoted, question)
		}
		st.polls[question] = p.withVote(option)
		st.record(participantID, question, option)
		return Event{Kind: EventVoteRecorded, Question: question, Option: option}, nil
	})
	if err != nil {
		return "", err
	}
	return option, nil
}

// Snapshot returns every poll in creation order as of the last commit
func (s *Store) Snapshot() []PollView {
	return s.current.Load().views()
}

// SnapshotFor returns every poll together with participantID's choices,
// both taken from the same commit
func (s *Store) SnapshotFor(participantID string) ([]PollView, map[string]string) {
	st := s.current.Load()
	return st.views(), st.choicesOf(participantID)
}

// Poll returns a single poll view
func (s *Store) Poll(question string) (PollView, error) {
	return s.current.Load().pollView(question)
}

// PollFor returns a single poll view together with participantID's choices,
// both taken from the same commit
func (s *Store) PollFor(participantID, question string) (PollView, map[string]string, error) {
	st := s.current.Load()
	v, err := st.pollView(question)
	if err != nil {
		return PollView{}, nil, err
	}
	return v, st.choicesOf(participantID), nil
}

// HasVoted reports whether participantID has a ledger entry for question
func (s *Store) HasVoted(participantID, question string) bool {
	return s.current.Load().hasVoted(participantID, strings.TrimSpace(question))
}

// Choice returns the option participantID chose for question
func (s *Store) Choice(participantID, question string) (string, bool) {
	return s.current.Load().choice(participantID, strings.TrimSpace(question))
}

// Choices returns a copy of every choice participantID has made
func (s *Store) Choices(participantID string) map[string]string {
	return s.current.Load().choicesOf(participantID)
}
