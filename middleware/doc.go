// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides request logging and the session redirect
// gates wrapped around page handlers.
package middleware
