// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is restricted to the dialect shared by PostgreSQL and SQLite
// so both configured database types work unchanged.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_app_user_username ON app_user(username);

-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    created_by TEXT REFERENCES app_user(id),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Options. Option identity within a poll is the answer text itself,
-- so the primary key doubles as the per-poll uniqueness constraint.
-- position preserves the order options were submitted in.
CREATE TABLE IF NOT EXISTS option (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    answer TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    position INTEGER NOT NULL,
    PRIMARY KEY (poll_id, answer)
);

CREATE INDEX IF NOT EXISTS idx_option_poll_id ON option(poll_id);

-- Participation set: which polls a user has voted on.
-- The primary key gives true set semantics; inserts use ON CONFLICT
-- DO NOTHING so repeat votes never duplicate a row.
CREATE TABLE IF NOT EXISTS participation (
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    first_voted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (user_id, poll_id)
);

CREATE INDEX IF NOT EXISTS idx_participation_user_id ON participation(user_id);
`
