// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session manages process-local browser sessions: a random token
// cookie mapped to a user identity for the lifetime of a login. No shared
// session store exists; horizontal scaling is out of scope.
package session
