// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema for Pollwave.

# Tables

  - app_user: credentials (bcrypt hash, never plaintext)
  - poll: question + creator
  - option: (poll_id, answer) primary key, votes counter, position
  - participation: (user_id, poll_id) primary key - the set of polls
    a user has voted on

# Usage

	if err := db.CreateSchema(dbConn); err != nil {
		// handle error
	}

The schema avoids PostgreSQL-only defaults (NOW(), JSONB) so the same
DDL runs against both lib/pq and modernc.org/sqlite connections.
*/
package db
