// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/pollwave/session"
	"github.com/danielhkuo/pollwave/testutil"
)

func TestSignup(t *testing.T) {
	e := setup(t)

	form := url.Values{"username": {"alice"}, "password": {"hunter2"}}
	req := testutil.MakeFormRequest("POST", "/signup", form)
	w := httptest.NewRecorder()

	e.auth.Signup(w, req)

	testutil.AssertRedirect(t, w, "/dashboard")

	// Signup logs the user in immediately
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("Expected session cookie after signup")
	}

	user, err := e.users.GetByUsername("alice")
	if err != nil {
		t.Fatalf("User not created: %v", err)
	}
	if user.PasswordHash == "hunter2" {
		t.Error("Password stored in plaintext")
	}
}

func TestSignupValidation(t *testing.T) {
	e := setup(t)

	tests := []struct {
		name    string
		form    url.Values
		message string
	}{
		{
			name:    "missing username",
			form:    url.Values{"password": {"hunter2"}},
			message: "Please fill out all fields",
		},
		{
			name:    "missing password",
			form:    url.Values{"username": {"alice"}},
			message: "Please fill out all fields",
		},
		{
			name:    "blank username",
			form:    url.Values{"username": {"   "}, "password": {"hunter2"}},
			message: "Please fill out all fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeFormRequest("POST", "/signup", tt.form)
			w := httptest.NewRecorder()

			e.auth.Signup(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			if !strings.Contains(w.Body.String(), tt.message) {
				t.Errorf("Expected page to contain %q", tt.message)
			}
		})
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	e := setup(t)
	testutil.CreateTestUser(t, e.conn, "alice", "first")

	form := url.Values{"username": {"alice"}, "password": {"second"}}
	req := testutil.MakeFormRequest("POST", "/signup", form)
	w := httptest.NewRecorder()

	e.auth.Signup(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Username already exists") {
		t.Error("Expected duplicate-username message")
	}
}

func TestLogin(t *testing.T) {
	e := setup(t)
	testutil.CreateTestUser(t, e.conn, "alice", "hunter2")

	form := url.Values{"username": {"alice"}, "password": {"hunter2"}}
	req := testutil.MakeFormRequest("POST", "/login", form)
	w := httptest.NewRecorder()

	e.auth.Login(w, req)

	testutil.AssertRedirect(t, w, "/profile")

	var sessionSet bool
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			sessionSet = true
		}
	}
	if !sessionSet {
		t.Error("Expected session cookie after login")
	}
}

// TestLoginRejections verifies the same generic message for a wrong
// password and an unknown username, so the form cannot be used to probe
// which accounts exist.
func TestLoginRejections(t *testing.T) {
	e := setup(t)
	testutil.CreateTestUser(t, e.conn, "alice", "hunter2")

	tests := []struct {
		name string
		form url.Values
	}{
		{name: "wrong password", form: url.Values{"username": {"alice"}, "password": {"wrong"}}},
		{name: "unknown username", form: url.Values{"username": {"nobody"}, "password": {"hunter2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeFormRequest("POST", "/login", tt.form)
			w := httptest.NewRecorder()

			e.auth.Login(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			if !strings.Contains(w.Body.String(), "Invalid username or password") {
				t.Error("Expected generic rejection message")
			}
			for _, c := range w.Result().Cookies() {
				if c.Name == session.CookieName {
					t.Error("No session cookie should be set on failed login")
				}
			}
		})
	}
}

func TestLogout(t *testing.T) {
	e := setup(t)
	user := testutil.CreateTestUser(t, e.conn, "alice", "hunter2")
	cookie := testutil.NewTestSession(t, e.sessions, user)

	req := testutil.MakeFormRequest("GET", "/logout", nil, cookie)
	w := httptest.NewRecorder()

	e.auth.Logout(w, req)

	testutil.AssertRedirect(t, w, "/")
	if _, ok := e.sessions.FromRequest(req); ok {
		t.Error("Expected session to be destroyed")
	}
}
