// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders the server-side HTML pages from templates
// embedded in the binary, and serves the static assets (stylesheet and
// the live-update browser script).
package views
