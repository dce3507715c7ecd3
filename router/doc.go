// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires every route onto a net/http ServeMux using
// Go 1.22+ method patterns: the HTML pages, the form endpoints, the
// /ws live-update channel, embedded static assets, and /health.
package router
