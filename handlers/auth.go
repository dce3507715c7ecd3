// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollwave/auth"
	"github.com/danielhkuo/pollwave/models"
	"github.com/danielhkuo/pollwave/session"
	"github.com/danielhkuo/pollwave/store"
	"github.com/danielhkuo/pollwave/views"
)

type AuthHandler struct {
	users    *store.Users
	sessions *session.Manager
	views    *views.Renderer
}

func NewAuthHandler(users *store.Users, sessions *session.Manager, views *views.Renderer) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, views: views}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, "login.html", views.PageData{})
}

// Login handles POST /login
//
// The failure message is identical for unknown usernames and wrong
// passwords so the form cannot be used to enumerate accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.Render(w, "login.html", views.PageData{ErrorMessage: "Invalid form submission"})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.users.GetByUsername(username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to look up user", "error", err)
		h.views.Render(w, "login.html", views.PageData{ErrorMessage: "Error logging in, please try again"})
		return
	}
	if errors.Is(err, store.ErrNotFound) || !auth.CheckPassword(user.PasswordHash, password) {
		h.views.Render(w, "login.html", views.PageData{ErrorMessage: "Invalid username or password"})
		return
	}

	if _, err := h.sessions.Create(w, user); err != nil {
		slog.Error("failed to create session", "error", err)
		h.views.Render(w, "login.html", views.PageData{ErrorMessage: "Error logging in, please try again"})
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// ShowSignup handles GET /signup
func (h *AuthHandler) ShowSignup(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, "signup.html", views.PageData{})
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.Render(w, "signup.html", views.PageData{ErrorMessage: "Invalid form submission"})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.views.Render(w, "signup.html", views.PageData{ErrorMessage: "Please fill out all fields"})
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		h.views.Render(w, "signup.html", views.PageData{ErrorMessage: "Error creating user"})
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}

	if err := h.users.Create(user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			h.views.Render(w, "signup.html", views.PageData{ErrorMessage: "Username already exists"})
			return
		}
		slog.Error("failed to create user", "error", err)
		h.views.Render(w, "signup.html", views.PageData{ErrorMessage: "Error creating user"})
		return
	}

	if _, err := h.sessions.Create(w, user); err != nil {
		slog.Error("failed to create session", "error", err)
		h.views.Render(w, "signup.html", views.PageData{ErrorMessage: "Error creating user"})
		return
	}

	slog.Info("user signed up", "user_id", user.ID, "username", user.Username)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
