// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pollwave/handlers"
	"github.com/danielhkuo/pollwave/live"
	"github.com/danielhkuo/pollwave/middleware"
	"github.com/danielhkuo/pollwave/session"
	"github.com/danielhkuo/pollwave/store"
	"github.com/danielhkuo/pollwave/views"
	"github.com/danielhkuo/pollwave/voting"
)

func NewRouter(
	engine *voting.Engine,
	polls *store.Polls,
	users *store.Users,
	sessions *session.Manager,
	renderer *views.Renderer,
	liveHandler *live.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, sessions, renderer)
	pageHandler := handlers.NewPageHandler(polls, users, sessions, renderer)
	pollHandler := handlers.NewPollHandler(engine, sessions, renderer)
	voteHandler := handlers.NewVoteHandler(engine, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Static assets (embedded)
	mux.Handle("GET /static/", views.StaticHandler())

	// Live-update channel
	mux.Handle("GET /ws", liveHandler)

	// Landing and authentication
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Index))
	mux.HandleFunc("GET /login", middleware.WithLogging(middleware.RedirectIfAuthenticated(sessions, authHandler.ShowLogin)))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /signup", middleware.WithLogging(middleware.RedirectIfAuthenticated(sessions, authHandler.ShowSignup)))
	mux.HandleFunc("POST /signup", middleware.WithLogging(authHandler.Signup))
	mux.HandleFunc("GET /logout", middleware.WithLogging(authHandler.Logout))

	// Authenticated pages
	mux.HandleFunc("GET /dashboard", middleware.WithLogging(middleware.RequireAuth(sessions, pageHandler.Dashboard)))
	mux.HandleFunc("GET /profile", middleware.WithLogging(middleware.RequireAuth(sessions, pageHandler.Profile)))
	mux.HandleFunc("GET /createPoll", middleware.WithLogging(middleware.RequireAuth(sessions, pollHandler.ShowCreatePoll)))
	mux.HandleFunc("POST /createPoll", middleware.WithLogging(middleware.RequireAuth(sessions, pollHandler.CreatePoll)))

	// Voting
	mux.HandleFunc("POST /vote", middleware.WithLogging(middleware.RequireAuth(sessions, voteHandler.Vote)))

	return mux
}
