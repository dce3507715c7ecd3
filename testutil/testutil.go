// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollwave/auth"
	"github.com/danielhkuo/pollwave/db"
	"github.com/danielhkuo/pollwave/models"
	"github.com/danielhkuo/pollwave/session"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the in-memory database alive for the
	// whole test; every new connection would get its own empty database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// CreateTestUser inserts a user with the given password hashed.
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string) models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	_, err = conn.Exec(`
		INSERT INTO app_user (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, user.ID, user.Username, user.PasswordHash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateTestPoll inserts a poll with the given answers, all counters at 0.
func CreateTestPoll(t *testing.T, conn *sql.DB, question string, answers ...string) models.Poll {
	t.Helper()

	poll := models.Poll{
		ID:       uuid.NewString(),
		Question: question,
	}
	_, err := conn.Exec(`
		INSERT INTO poll (id, question, created_at)
		VALUES ($1, $2, $3)
	`, poll.ID, poll.Question, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	for i, answer := range answers {
		_, err := conn.Exec(`
			INSERT INTO option (poll_id, answer, votes, position)
			VALUES ($1, $2, 0, $3)
		`, poll.ID, answer, i)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
		poll.Options = append(poll.Options, models.Option{Answer: answer})
	}

	return poll
}

// NewTestSession mints a session for user and returns its cookie.
func NewTestSession(t *testing.T, sessions *session.Manager, user models.User) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	if _, err := sessions.Create(w, user); err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	cookies := w.Result().Cookies()
	for _, c := range cookies {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("Session cookie not set")
	return nil
}

// MakeFormRequest creates an HTTP test request with URL-encoded form data.
func MakeFormRequest(method, path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a redirect to the expected location.
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther && w.Code != http.StatusFound {
		t.Errorf("Expected redirect status, got %d. Body: %s", w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// OptionVotes reads one option's counter straight from the database.
func OptionVotes(t *testing.T, conn *sql.DB, pollID, answer string) int {
	t.Helper()

	var votes int
	err := conn.QueryRow(`
		SELECT votes FROM option WHERE poll_id = $1 AND answer = $2
	`, pollID, answer).Scan(&votes)
	if err != nil {
		t.Fatalf("Failed to read votes for %q: %v", answer, err)
	}
	return votes
}
