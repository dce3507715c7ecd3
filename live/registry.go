// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package live

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
)

// Client is one connected live-update channel. The JSON encoder is
// guarded so broadcasts and direct sends never interleave frames.
type Client struct {
	mu     sync.Mutex
	enc    *json.Encoder
	userID string
}

// NewClient wraps a connection (anything writable) as a live client.
// userID is empty for unauthenticated connections.
func NewClient(w io.Writer, userID string) *Client {
	return &Client{enc: json.NewEncoder(w), userID: userID}
}

// Send writes one event frame to this client.
func (c *Client) Send(event any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enc.Encode(event)
}

// UserID returns the identity bound at connection handshake, or "".
func (c *Client) UserID() string {
	return c.userID
}

// Registry owns the set of currently connected live clients and fans
// events out to all of them. Clients are keyed by pointer identity.
type Registry struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[*Client]struct{})}
}

// Register adds a client to the broadcast set.
func (r *Registry) Register(c *Client) {
	r.mu.Lock()
	r.clients[c] = struct{}{}
	r.mu.Unlock()
}

// Unregister removes a client. Safe to call more than once; duplicate
// disconnect notifications are no-ops.
func (r *Registry) Unregister(c *Client) {
	r.mu.Lock()
	delete(r.clients, c)
	r.mu.Unlock()
}

// Count returns the number of currently connected clients.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Broadcast sends event to every registered client, including the one
// that triggered it. A failed send is isolated to its client: the client
// is dropped from the registry and delivery continues to the rest.
// Fire-and-forget: no acks, no retries.
func (r *Registry) Broadcast(event any) {
	r.mu.Lock()
	clients := make([]*Client, 0, len(r.clients))
	for c := range r.clients {
		clients = append(clients, c)
	}
	r.mu.Unlock()

	for _, c := range clients {
		if err := c.Send(event); err != nil {
			slog.Warn("dropping live client after failed send", "error", err)
			r.Unregister(c)
		}
	}
}
