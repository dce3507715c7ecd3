// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollwave/session"
	"github.com/danielhkuo/pollwave/views"
	"github.com/danielhkuo/pollwave/voting"
)

type PollHandler struct {
	engine   *voting.Engine
	sessions *session.Manager
	views    *views.Renderer
}

func NewPollHandler(engine *voting.Engine, sessions *session.Manager, views *views.Renderer) *PollHandler {
	return &PollHandler{engine: engine, sessions: sessions, views: views}
}

// ShowCreatePoll handles GET /createPoll
func (h *PollHandler) ShowCreatePoll(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, "createPoll.html", views.PageData{})
}

// CreatePoll handles POST /createPoll
//
// Validation problems re-render the form with the specific message;
// storage failures get a generic retry message so no store error text
// reaches the user.
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.Render(w, "createPoll.html", views.PageData{ErrorMessage: "Invalid form submission"})
		return
	}

	sess, _ := h.sessions.FromRequest(r)
	question := r.FormValue("question")
	answers := r.Form["options"]

	_, err := h.engine.CreatePoll(question, answers, sess.UserID)
	if err != nil {
		var validation *voting.ValidationError
		if errors.As(err, &validation) {
			h.views.Render(w, "createPoll.html", views.PageData{ErrorMessage: validation.Message})
			return
		}
		slog.Error("failed to create poll", "error", err)
		h.views.Render(w, "createPoll.html", views.PageData{ErrorMessage: "Error creating the poll, please try again"})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
