// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package auth provides password hashing (bcrypt) and session token
// generation for the authentication gate.
package auth
