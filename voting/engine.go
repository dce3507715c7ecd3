// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollwave/models"
	"github.com/danielhkuo/pollwave/store"
)

var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrOptionNotFound = errors.New("option not found")
)

// ValidationError is a user-correctable input problem. Handlers re-render
// the submitting form with the message instead of failing the request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PollStore is what the engine needs from the poll store.
type PollStore interface {
	Create(poll models.Poll, createdBy string) error
	Exists(id string) (bool, error)
	IncrementVote(pollID, answer string) (int, error)
}

// UserStore is what the engine needs from the user store.
type UserStore interface {
	AddParticipation(userID, pollID string) error
}

// Broadcaster fans an event out to every connected live client.
// Implemented by live.Registry.
type Broadcaster interface {
	Broadcast(event any)
}

// Engine applies vote mutations and poll creations, then pushes the
// resulting events through the broadcaster. All poll-state writes funnel
// through here so the HTTP form path and the live channel stay consistent.
type Engine struct {
	polls     PollStore
	users     UserStore
	broadcast Broadcaster
}

func NewEngine(polls PollStore, users UserStore, broadcast Broadcaster) *Engine {
	return &Engine{polls: polls, users: users, broadcast: broadcast}
}

// ApplyVote increments the counter of one option by exactly 1 and records
// the voter's participation. userID may be empty for anonymous live-channel
// votes (when enabled); participation is only tracked for known users.
//
// Re-voting is allowed: every call increments the counter, but the
// participation set records the poll at most once.
func (e *Engine) ApplyVote(pollID, selectedOption, userID string) (models.VoteResult, error) {
	votes, err := e.polls.IncrementVote(pollID, selectedOption)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Distinguish a missing poll from a missing option so callers
			// can 404 one and merely log the other.
			exists, existsErr := e.polls.Exists(pollID)
			if existsErr != nil {
				return models.VoteResult{}, fmt.Errorf("check poll: %w", existsErr)
			}
			if !exists {
				return models.VoteResult{}, ErrPollNotFound
			}
			return models.VoteResult{}, ErrOptionNotFound
		}
		return models.VoteResult{}, fmt.Errorf("apply vote: %w", err)
	}

	if userID != "" {
		if err := e.users.AddParticipation(userID, pollID); err != nil {
			// The vote itself is already durable; losing the profile stat
			// is not worth failing the request over.
			slog.Error("failed to record participation", "error", err, "user_id", userID, "poll_id", pollID)
		}
	}

	e.broadcast.Broadcast(models.VoteEvent{
		Type:           models.EventVote,
		PollID:         pollID,
		SelectedOption: selectedOption,
		Votes:          votes,
	})

	slog.Info("vote applied", "poll_id", pollID, "option", selectedOption, "votes", votes)

	return models.VoteResult{
		PollID:         pollID,
		SelectedOption: selectedOption,
		Votes:          votes,
	}, nil
}

// CreatePoll validates and persists a new poll with all counters at zero,
// then announces it to every live client so open dashboards render it
// without a reload.
func (e *Engine) CreatePoll(question string, answers []string, createdBy string) (models.Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.Poll{}, &ValidationError{Message: "Question is required"}
	}

	options := make([]models.Option, 0, len(answers))
	seen := make(map[string]bool, len(answers))
	for _, answer := range answers {
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		if seen[answer] {
			return models.Poll{}, &ValidationError{Message: "Duplicate option: " + answer}
		}
		seen[answer] = true
		options = append(options, models.Option{Answer: answer, Votes: 0})
	}
	if len(options) == 0 {
		return models.Poll{}, &ValidationError{Message: "At least one option is required"}
	}

	poll := models.Poll{
		ID:       uuid.NewString(),
		Question: question,
		Options:  options,
	}

	if err := e.polls.Create(poll, createdBy); err != nil {
		return models.Poll{}, fmt.Errorf("create poll: %w", err)
	}

	e.broadcast.Broadcast(models.NewPollEvent{
		Type: models.EventNewPoll,
		Poll: poll,
	})

	slog.Info("poll created", "poll_id", poll.ID, "question", question, "options", len(options))

	return poll, nil
}
