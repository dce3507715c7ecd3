// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the poll and user stores over database/sql.

Both supported drivers (lib/pq for PostgreSQL, modernc.org/sqlite for
SQLite) understand the $1 placeholder style and the RETURNING and
ON CONFLICT clauses the stores rely on.

Two operations carry the concurrency contract of the whole system:

  - Polls.IncrementVote: the counter bump is a single UPDATE with
    RETURNING, so simultaneous votes on the same option serialize in the
    database instead of racing in application code.
  - Users.AddParticipation: conflict-ignoring insert against the
    (user_id, poll_id) primary key, giving the participation set true
    set semantics.
*/
package store
