// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/danielhkuo/pollwave/auth"
	"github.com/danielhkuo/pollwave/models"
)

// CookieName is the browser cookie carrying the session token.
const CookieName = "pollwave_session"

// Manager holds the process-local session table. Sessions do not survive
// a restart; users log in again.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]models.Session)}
}

// Create starts a session for user and sets the cookie on the response.
func (m *Manager) Create(w http.ResponseWriter, user models.User) (models.Session, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return models.Session{}, fmt.Errorf("create session: %w", err)
	}

	sess := models.Session{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}

	m.mu.Lock()
	m.sessions[token] = sess
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// FromRequest resolves the session cookie, if any, to a live session.
func (m *Manager) FromRequest(r *http.Request) (models.Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return models.Session{}, false
	}

	m.mu.Lock()
	sess, ok := m.sessions[cookie.Value]
	m.mu.Unlock()
	return sess, ok
}

// Destroy ends the request's session and expires the cookie. A request
// without a session is a no-op.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil {
		m.mu.Lock()
		delete(m.sessions, cookie.Value)
		m.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
