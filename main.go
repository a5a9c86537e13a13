package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/PrakharGupta80900/Poll/auth"
	"github.com/PrakharGupta80900/Poll/cliparse"
	"github.com/PrakharGupta80900/Poll/db"
	"github.com/PrakharGupta80900/Poll/events"
	"github.com/PrakharGupta80900/Poll/poll"
	"github.com/PrakharGupta80900/Poll/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	broker := events.NewBroker(events.DefaultBuffer)
	opts := []poll.Option{poll.WithNotifier(broker)}

	// Persistence is optional; without a database the polls live in memory only
	var dbConn *sql.DB
	if cfg.Persistent() {
		dbConn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)

		opts = append(opts, poll.WithPersister(db.NewDocumentStore(dbConn)))
	} else {
		slog.Warn("No database configured, polls will not survive a restart")
	}

	store := poll.NewStore(opts...)
	if err := store.Restore(context.Background()); err != nil {
		slog.Error("restoring polls failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Polls restored", "polls", len(store.Snapshot()))

	sessions := auth.NewSessions(auth.Credentials{
		AdminUsername:       cfg.AdminUsername,
		AdminPassword:       cfg.AdminPassword,
		AdminPasswordHash:   cfg.AdminPasswordHash,
		ParticipantPassword: cfg.ParticipantPassword,
	}, auth.WithTTL(cfg.SessionTTL))

	// Drop expired sessions so anonymous logins do not accumulate
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := sessions.Prune(); n > 0 {
				slog.Info("expired sessions pruned", "count", n, "remaining", sessions.Count())
			}
		}
	}()

	// Create router
	handler := router.NewRouter(store, sessions, broker, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
