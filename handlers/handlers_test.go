// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"database/sql"
	"testing"

	"github.com/danielhkuo/pollwave/handlers"
	"github.com/danielhkuo/pollwave/live"
	"github.com/danielhkuo/pollwave/session"
	"github.com/danielhkuo/pollwave/store"
	"github.com/danielhkuo/pollwave/testutil"
	"github.com/danielhkuo/pollwave/views"
	"github.com/danielhkuo/pollwave/voting"
)

// env bundles everything a handler test needs: a fresh database, the
// stores over it, the engine, the session table, and all handlers.
type env struct {
	conn     *sql.DB
	polls    *store.Polls
	users    *store.Users
	sessions *session.Manager
	registry *live.Registry

	auth  *handlers.AuthHandler
	pages *handlers.PageHandler
	poll  *handlers.PollHandler
	vote  *handlers.VoteHandler
}

func setup(t *testing.T) *env {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}

	polls := store.NewPolls(conn)
	users := store.NewUsers(conn)
	registry := live.NewRegistry()
	engine := voting.NewEngine(polls, users, registry)
	sessions := session.NewManager()

	return &env{
		conn:     conn,
		polls:    polls,
		users:    users,
		sessions: sessions,
		registry: registry,
		auth:     handlers.NewAuthHandler(users, sessions, renderer),
		pages:    handlers.NewPageHandler(polls, users, sessions, renderer),
		poll:     handlers.NewPollHandler(engine, sessions, renderer),
		vote:     handlers.NewVoteHandler(engine, sessions),
	}
}
