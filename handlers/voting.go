// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollwave/session"
	"github.com/danielhkuo/pollwave/voting"
)

type VoteHandler struct {
	engine   *voting.Engine
	sessions *session.Manager
}

func NewVoteHandler(engine *voting.Engine, sessions *session.Manager) *VoteHandler {
	return &VoteHandler{engine: engine, sessions: sessions}
}

// Vote handles POST /vote with form fields pollId and selectedOption.
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	sess, _ := h.sessions.FromRequest(r)
	pollID := r.FormValue("pollId")
	selectedOption := r.FormValue("selectedOption")

	_, err := h.engine.ApplyVote(pollID, selectedOption, sess.UserID)
	switch {
	case errors.Is(err, voting.ErrPollNotFound):
		http.Error(w, "Poll not found", http.StatusNotFound)
		return
	case errors.Is(err, voting.ErrOptionNotFound):
		// An unknown option leaves every counter untouched; worth a log
		// line but not a failure page.
		slog.Warn("vote for unknown option", "poll_id", pollID, "option", selectedOption)
	case err != nil:
		slog.Error("failed to process vote", "error", err, "poll_id", pollID)
		http.Error(w, "Error processing vote", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
