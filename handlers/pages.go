// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollwave/session"
	"github.com/danielhkuo/pollwave/store"
	"github.com/danielhkuo/pollwave/views"
)

type PageHandler struct {
	polls    *store.Polls
	users    *store.Users
	sessions *session.Manager
	views    *views.Renderer
}

func NewPageHandler(polls *store.Polls, users *store.Users, sessions *session.Manager, views *views.Renderer) *PageHandler {
	return &PageHandler{polls: polls, users: users, sessions: sessions, views: views}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.FromRequest(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.views.Render(w, "index.html", views.PageData{})
}

// Dashboard handles GET /dashboard
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.FromRequest(r)

	polls, err := h.polls.List()
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.views.Render(w, "dashboard.html", views.PageData{
		Username:   sess.Username,
		Polls:      polls,
		TotalPolls: len(polls),
	})
}

// Profile handles GET /profile
func (h *PageHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.FromRequest(r)

	voteCount, err := h.users.CountParticipated(sess.UserID)
	if err != nil {
		slog.Error("failed to count participation", "error", err, "user_id", sess.UserID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.views.Render(w, "profile.html", views.PageData{
		Username:  sess.Username,
		VoteCount: voteCount,
	})
}
