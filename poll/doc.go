// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll holds the poll and vote state: every poll's tally and the
ledger of which participant chose which option.

# Store

A Store is an ordinary value; create one per process (or per test):

	store := poll.NewStore(
		poll.WithPersister(docs),
		poll.WithNotifier(broker),
	)
	if err := store.Restore(ctx); err != nil {
		log.Fatal(err)
	}

# Operations

	CreatePoll(ctx, question, options, overwrite)
	DeletePoll(ctx, question)
	ResetPoll(ctx, question)
	ResetAll(ctx)
	Vote(ctx, participantID, question, option)
	Snapshot()

Deleting, resetting or overwriting a poll also removes its ledger entries,
so for every poll the tally total equals the number of ledger entries.

# Errors

Operations either apply completely or not at all. Failures are reported
with sentinel errors, checked with errors.Is:

  - ErrValidation: empty question, fewer than 2 distinct options
  - ErrDuplicateQuestion: question exists and overwrite was not requested
  - ErrNotFound: delete or reset of an absent poll
  - ErrUnknownPoll: vote on an absent poll (also matches ErrNotFound)
  - ErrUnknownOption: vote for an option the poll does not have
  - ErrAlreadyVoted: participant already voted on the question

# Concurrency

All mutations take one store-wide lock and run on a copy of the state.
The copy is saved through the Persister (when configured) and then
published atomically, so Snapshot, Progress and Stats never see a
half-applied change and do not take the lock.

# Views

  - Snapshot: every poll with counts and total, in creation order
  - Progress: one participant's answered/total and next unanswered poll
  - Stats: percentages, dense ranks and leaders per poll
*/
package poll
