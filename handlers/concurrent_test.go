// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/PrakharGupta80900/Poll/auth"
	"github.com/PrakharGupta80900/Poll/models"
	"github.com/PrakharGupta80900/Poll/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes from different
// participants are all counted and the tally matches the ledger
func TestConcurrentVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	store := testutil.NewTestStore(t, conn)
	_, sessions := newTestEnv(t)
	handler := NewVotingHandler(store)

	testutil.CreateTestPoll(t, store, "Favorite color?", "Red", "Blue", "Green")
	options := []string{"Red", "Blue", "Green"}

	numVoters := 30
	voters := make([]*auth.Session, numVoters)
	for i := range voters {
		voters[i] = testutil.LoginParticipant(t, sessions)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			req := testutil.AsSession(testutil.MakeRequest("POST", "/votes", models.VoteRequest{
				Question: "Favorite color?",
				Option:   options[voterIdx%len(options)],
			}, nil), voters[voterIdx])
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			} else {
				t.Errorf("Voter %d got status %d: %s", voterIdx, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	view, err := store.Poll("Favorite color?")
	if err != nil {
		t.Fatalf("Poll missing: %v", err)
	}
	if view.Total != numVoters {
		t.Errorf("Expected total %d, got %d", numVoters, view.Total)
	}
	for _, opt := range options {
		if view.Count(opt) != numVoters/len(options) {
			t.Errorf("Expected %d votes for %s, got %d", numVoters/len(options), opt, view.Count(opt))
		}
	}
}

// TestConcurrentDuplicateVotes verifies that one participant racing the same
// vote from several requests is counted exactly once
func TestConcurrentDuplicateVotes(t *testing.T) {
	store, sessions := newTestEnv(t)
	handler := NewVotingHandler(store)
	voter := testutil.LoginParticipant(t, sessions)

	testutil.CreateTestPoll(t, store, "Lunch?", "Pizza", "Sushi")

	numRequests := 20
	var created, conflicts atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.AsSession(testutil.MakeRequest("POST", "/votes", models.VoteRequest{
				Question: "Lunch?",
				Option:   "Pizza",
			}, nil), voter)
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			default:
				t.Errorf("Unexpected status %d: %s", w.Code, w.Body.String())
			}
		}()
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly 1 accepted vote, got %d", created.Load())
	}
	if int(conflicts.Load()) != numRequests-1 {
		t.Errorf("Expected %d conflicts, got %d", numRequests-1, conflicts.Load())
	}

	view, _ := store.Poll("Lunch?")
	if view.Total != 1 {
		t.Errorf("Expected total 1, got %d", view.Total)
	}
}

// TestConcurrentReadsDuringVotes verifies that listing polls while votes land
// always sees a consistent snapshot
func TestConcurrentReadsDuringVotes(t *testing.T) {
	store, sessions := newTestEnv(t)
	votingHandler := NewVotingHandler(store)
	pollHandler := NewPollHandler(store)
	reader := testutil.LoginParticipant(t, sessions)

	testutil.CreateTestPoll(t, store, "Q", "A", "B")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		voter := testutil.LoginParticipant(t, sessions)
		wg.Add(2)
		go func() {
			defer wg.Done()
			req := testutil.AsSession(testutil.MakeRequest("POST", "/votes", models.VoteRequest{Question: "Q", Option: "A"}, nil), voter)
			votingHandler.Vote(httptest.NewRecorder(), req)
		}()
		go func() {
			defer wg.Done()
			req := testutil.AsSession(testutil.MakeRequest("GET", "/polls", nil, nil), reader)
			w := httptest.NewRecorder()
			pollHandler.ListPolls(w, req)

			var resp models.PollListResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Errorf("Failed to decode polls: %v", err)
				return
			}
			for _, p := range resp.Polls {
				sum := 0
				for _, o := range p.Options {
					sum += o.Count
				}
				if sum != p.Total {
					t.Errorf("Inconsistent snapshot: options sum %d, total %d", sum, p.Total)
				}
			}
		}()
	}
	wg.Wait()
}
