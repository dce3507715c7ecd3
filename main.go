// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollwave/cliparse"
	"github.com/danielhkuo/pollwave/db"
	"github.com/danielhkuo/pollwave/live"
	"github.com/danielhkuo/pollwave/router"
	"github.com/danielhkuo/pollwave/session"
	"github.com/danielhkuo/pollwave/store"
	"github.com/danielhkuo/pollwave/views"
	"github.com/danielhkuo/pollwave/voting"
)

func main() {
	var err error

	// Optional .env for local development; absence is fine
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the configured database
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Parse page templates
	renderer, err := views.NewRenderer()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	// Wire stores, engine, live registry, sessions
	polls := store.NewPolls(dbConn)
	users := store.NewUsers(dbConn)
	registry := live.NewRegistry()
	engine := voting.NewEngine(polls, users, registry)
	sessions := session.NewManager()
	liveHandler := live.NewHandler(registry, engine, sessions, cfg.AllowAnonymousVotes)

	// Create router
	mux := router.NewRouter(engine, polls, users, sessions, renderer, liveHandler)

	// Create server
	server := http.Server{
		Handler: mux,
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
