// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package live

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/net/websocket"

	"github.com/danielhkuo/pollwave/models"
)

// VoteApplier is what the live channel needs from the voting engine.
type VoteApplier interface {
	ApplyVote(pollID, selectedOption, userID string) (models.VoteResult, error)
}

// SessionResolver resolves a request's session cookie to an identity.
type SessionResolver interface {
	FromRequest(r *http.Request) (models.Session, bool)
}

type userIDContextKey struct{}

// Handler upgrades GET /ws requests and services the live-update channel.
//
// The session is resolved once, at handshake time, and the user id is
// bound into the connection's request context. Inbound vote messages use
// that identity; a socket message can never borrow someone else's
// ambient session.
type Handler struct {
	registry       *Registry
	votes          VoteApplier
	sessions       SessionResolver
	allowAnonymous bool
}

// NewHandler wires the live channel. When allowAnonymous is false,
// vote messages from connections without a session are dropped.
func NewHandler(registry *Registry, votes VoteApplier, sessions SessionResolver, allowAnonymous bool) *Handler {
	return &Handler{
		registry:       registry,
		votes:          votes,
		sessions:       sessions,
		allowAnonymous: allowAnonymous,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.sessions.FromRequest(r); ok {
		ctx := context.WithValue(r.Context(), userIDContextKey{}, sess.UserID)
		r = r.WithContext(ctx)
	}
	websocket.Handler(h.handleConn).ServeHTTP(w, r)
}

func (h *Handler) handleConn(conn *websocket.Conn) {
	defer conn.Close()

	userID := ""
	if req := conn.Request(); req != nil {
		if id, ok := req.Context().Value(userIDContextKey{}).(string); ok {
			userID = id
		}
	}

	client := NewClient(conn, userID)
	h.registry.Register(client)
	defer h.registry.Unregister(client)

	slog.Info("live client connected", "authenticated", userID != "")

	decoder := json.NewDecoder(conn)
	for {
		var msg models.VoteMessage
		if err := decoder.Decode(&msg); err != nil {
			if !errors.Is(err, io.EOF) {
				slog.Info("live client read failed", "error", err)
			}
			return
		}

		if msg.Type != models.EventVote {
			slog.Warn("unsupported live message type", "type", msg.Type)
			continue
		}

		if userID == "" && !h.allowAnonymous {
			slog.Warn("dropping vote from unauthenticated live client", "poll_id", msg.PollID)
			continue
		}

		// The live channel has no response path: failures are logged and
		// the connection stays open.
		if _, err := h.votes.ApplyVote(msg.PollID, msg.SelectedOption, userID); err != nil {
			slog.Warn("live vote rejected",
				"error", err,
				"poll_id", msg.PollID,
				"option", msg.SelectedOption,
			)
		}
	}
}
