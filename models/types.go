// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Live-channel event type tags
const (
	EventVote    = "vote"
	EventNewPoll = "newPoll"
)

// Domain types

type Poll struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

type Option struct {
	Answer string `json:"answer"`
	Votes  int    `json:"votes"`
}

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON
}

// Session binds a browser to a user for the lifetime of a login.
// Sessions live only in process memory.
type Session struct {
	Token    string
	UserID   string
	Username string
}

// Live-channel messages (JSON text frames, both directions)

// VoteMessage is the client-to-server vote request.
type VoteMessage struct {
	Type           string `json:"type"`
	PollID         string `json:"pollId"`
	SelectedOption string `json:"selectedOption"`
}

// VoteEvent announces a new count for one option to all live clients.
type VoteEvent struct {
	Type           string `json:"type"`
	PollID         string `json:"pollId"`
	SelectedOption string `json:"selectedOption"`
	Votes          int    `json:"votes"`
}

// NewPollEvent announces a freshly created poll to all live clients.
type NewPollEvent struct {
	Type string `json:"type"`
	Poll Poll   `json:"poll"`
}

// VoteResult is what ApplyVote returns for broadcasting and redirects.
type VoteResult struct {
	PollID         string
	SelectedOption string
	Votes          int
}
