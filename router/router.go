// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/PrakharGupta80900/Poll/auth"
	"github.com/PrakharGupta80900/Poll/cliparse"
	"github.com/PrakharGupta80900/Poll/events"
	"github.com/PrakharGupta80900/Poll/handlers"
	"github.com/PrakharGupta80900/Poll/middleware"
	"github.com/PrakharGupta80900/Poll/poll"
)

func NewRouter(store *poll.Store, sessions *auth.Sessions, broker *events.Broker, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessions)
	pollHandler := handlers.NewPollHandler(store)
	votingHandler := handlers.NewVotingHandler(store)
	resultsHandler := handlers.NewResultsHandler(store)
	eventsHandler := handlers.NewEventsHandler(broker)

	anyone := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(sessions, h))
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(sessions, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sessions
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("GET /sessions/me", anyone(sessionHandler.Me))
	mux.HandleFunc("DELETE /sessions/me", anyone(sessionHandler.Logout))

	// Poll management (admin operations)
	mux.HandleFunc("POST /polls", admin(pollHandler.CreatePoll))
	mux.HandleFunc("DELETE /polls", admin(pollHandler.DeletePoll))
	mux.HandleFunc("POST /polls/reset", admin(pollHandler.ResetPolls))
	mux.HandleFunc("GET /stats", admin(resultsHandler.GetStats))

	// Voting and live results (any session)
	mux.HandleFunc("GET /polls", anyone(pollHandler.ListPolls))
	mux.HandleFunc("GET /poll", anyone(resultsHandler.GetPoll))
	mux.HandleFunc("POST /votes", anyone(votingHandler.Vote))
	mux.HandleFunc("GET /wizard", anyone(votingHandler.Wizard))
	mux.HandleFunc("GET /events", anyone(eventsHandler.Stream))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickpoll API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigins, mux)
}
