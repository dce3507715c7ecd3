// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollwave server.

Pollwave is a real-time polling web application: users sign up, log in,
create polls, and cast votes, and every connected browser sees vote
counts move live over a WebSocket channel.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=pollwave.db go run .

Or with flags:

	go run . -p 3000 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ALLOW_ANONYMOUS_VOTES (-allow-anon-votes): accept live-channel votes
    from connections without a session (default: off)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - voting: the vote mutation engine every poll write funnels through
  - live: connected-client registry and WebSocket transport
  - store: poll and user stores over database/sql
  - handlers: server-rendered pages and form endpoints
  - session: process-local cookie sessions
  - auth: bcrypt hashing and token generation
  - views: embedded html/template pages and static assets
  - router: route definitions using Go 1.22+ routing
  - middleware: logging and auth-redirect gates
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
