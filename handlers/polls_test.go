// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PrakharGupta80900/Poll/auth"
	"github.com/PrakharGupta80900/Poll/models"
	"github.com/PrakharGupta80900/Poll/poll"
	"github.com/PrakharGupta80900/Poll/testutil"
)

// newTestEnv returns an in-memory store and a session manager using the test credentials
func newTestEnv(t *testing.T) (*poll.Store, *auth.Sessions) {
	t.Helper()
	store := testutil.NewTestStore(t, nil)
	sessions := auth.NewSessions(testutil.Credentials(testutil.GetTestConfig()))
	return store, sessions
}

func TestCreatePoll(t *testing.T) {
	store, sessions := newTestEnv(t)
	handler := NewPollHandler(store)
	admin := testutil.LoginAdmin(t, sessions)

	tests := []struct {
		name           string
		request        interface{}
		expectedStatus int
	}{
		{
			name: "valid poll",
			request: models.CreatePollRequest{
				Question: "Favorite color?",
				Options:  []string{"Red", "Blue", "Green"},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate question",
			request: models.CreatePollRequest{
				Question: "Favorite color?",
				Options:  []string{"Cyan", "Magenta"},
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "overwrite existing question",
			request: models.CreatePollRequest{
				Question:  "Favorite color?",
				Options:   []string{"Cyan", "Magenta"},
				Overwrite: true,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "empty question",
			request: models.CreatePollRequest{
				Question: "   ",
				Options:  []string{"A", "B"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "one distinct option",
			request: models.CreatePollRequest{
				Question: "Lonely?",
				Options:  []string{"Yes", " Yes ", ""},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			request:        "not an object",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.AsSession(testutil.MakeRequest("POST", "/polls", tt.request, nil), admin)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	view, err := store.Poll("Favorite color?")
	if err != nil {
		t.Fatalf("Poll not stored: %v", err)
	}
	if len(view.Options) != 2 || view.Options[0].Name != "Cyan" {
		t.Errorf("Expected overwritten options [Cyan Magenta], got %+v", view.Options)
	}
}

func TestCreatePollResponse(t *testing.T) {
	store, sessions := newTestEnv(t)
	handler := NewPollHandler(store)
	admin := testutil.LoginAdmin(t, sessions)

	req := testutil.AsSession(testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
		Question: "  Lunch?  ",
		Options:  []string{"Pizza", "Sushi", "Pizza", "  "},
	}, nil), admin)
	w := httptest.NewRecorder()

	handler.CreatePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreatePollResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Poll.Question != "Lunch?" {
		t.Errorf("Expected trimmed question, got %q", resp.Poll.Question)
	}
	if len(resp.Poll.Options) != 2 {
		t.Fatalf("Expected 2 options after dedupe, got %d", len(resp.Poll.Options))
	}
	for _, opt := range resp.Poll.Options {
		if opt.Count != 0 {
			t.Errorf("Expected zero count for %s, got %d", opt.Name, opt.Count)
		}
	}
	if resp.Message == "" {
		t.Error("Expected a confirmation message")
	}
}

func TestListPolls(t *testing.T) {
	store, sessions := newTestEnv(t)
	handler := NewPollHandler(store)
	participant := testutil.LoginParticipant(t, sessions)

	testutil.CreateTestPoll(t, store, "First?", "A", "B")
	testutil.CreateTestPoll(t, store, "Second?", "C", "D")

	if _, err := store.Vote(context.Background(), participant.ParticipantID, "Second?", "D"); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}

	req := testutil.AsSession(testutil.MakeRequest("GET", "/polls", nil, nil), participant)
	w := httptest.NewRecorder()

	handler.ListPolls(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PollListResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Polls) != 2 {
		t.Fatalf("Expected 2 polls, got %d", len(resp.Polls))
	}
	if resp.Polls[0].Question != "First?" || resp.Polls[1].Question != "Second?" {
		t.Errorf("Expected creation order, got %q, %q", resp.Polls[0].Question, resp.Polls[1].Question)
	}
	if resp.Polls[0].YourVote != nil {
		t.Errorf("Expected no vote on first poll, got %q", *resp.Polls[0].YourVote)
	}
	if resp.Polls[1].YourVote == nil || *resp.Polls[1].YourVote != "D" {
		t.Errorf("Expected your_vote D on second poll, got %v", resp.Polls[1].YourVote)
	}
	if resp.Polls[1].Total != 1 {
		t.Errorf("Expected total 1, got %d", resp.Polls[1].Total)
	}
}

func TestListPollsEmpty(t *testing.T) {
	store, sessions := newTestEnv(t)
	handler := NewPollHandler(store)
	participant := testutil.LoginParticipant(t, sessions)

	req := testutil.AsSession(testutil.MakeRequest("GET", "/polls", nil, nil), participant)
	w := httptest.NewRecorder()

	handler.ListPolls(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PollListResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Polls == nil || len(resp.Polls) != 0 {
		t.Errorf("Expected empty poll list, got %v", resp.Polls)
	}
}

func TestDeletePoll(t *testing.T) {
	store, sessions := newTestEnv(t)
	handler := NewPollHandler(store)
	admin := testutil.LoginAdmin(t, sessions)

	testutil.CreateTestPoll(t, store, "Doomed?", "Yes", "No")

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"existing poll", "/polls?question=Doomed%3F", http.StatusOK},
		{"already deleted", "/polls?question=Doomed%3F", http.StatusNotFound},
		{"missing question", "/polls", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.AsSession(testutil.MakeRequest("DELETE", tt.path, nil, nil), admin)
			w := httptest.NewRecorder()

			handler.DeletePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	if len(store.Snapshot()) != 0 {
		t.Error("Expected no polls after delete")
	}
}

func TestResetPolls(t *testing.T) {
	store, sessions := newTestEnv(t)
	handler := NewPollHandler(store)
	admin := testutil.LoginAdmin(t, sessions)
	voter := testutil.LoginParticipant(t, sessions)

	testutil.CreateTestPoll(t, store, "Q1", "A", "B")
	testutil.CreateTestPoll(t, store, "Q2", "A", "B")
	ctx := context.Background()
	store.Vote(ctx, voter.ParticipantID, "Q1", "A")
	store.Vote(ctx, voter.ParticipantID, "Q2", "B")

	tests := []struct {
		name           string
		request        models.ResetPollRequest
		expectedStatus int
	}{
		{"neither question nor all", models.ResetPollRequest{}, http.StatusBadRequest},
		{"both question and all", models.ResetPollRequest{Question: "Q1", All: true}, http.StatusBadRequest},
		{"unknown question", models.ResetPollRequest{Question: "Q9"}, http.StatusNotFound},
		{"single poll", models.ResetPollRequest{Question: "Q1"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.AsSession(testutil.MakeRequest("POST", "/polls/reset", tt.request, nil), admin)
			w := httptest.NewRecorder()

			handler.ResetPolls(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	if store.HasVoted(voter.ParticipantID, "Q1") {
		t.Error("Expected Q1 vote cleared by reset")
	}
	if !store.HasVoted(voter.ParticipantID, "Q2") {
		t.Error("Expected Q2 vote to survive a Q1 reset")
	}

	req := testutil.AsSession(testutil.MakeRequest("POST", "/polls/reset", models.ResetPollRequest{All: true}, nil), admin)
	w := httptest.NewRecorder()
	handler.ResetPolls(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	for _, v := range store.Snapshot() {
		if v.Total != 0 {
			t.Errorf("Expected %s zeroed, total %d", v.Question, v.Total)
		}
	}
	if store.HasVoted(voter.ParticipantID, "Q2") {
		t.Error("Expected every vote cleared by reset all")
	}
}
