// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"testing"

	"github.com/danielhkuo/pollwave/db"
	"github.com/danielhkuo/pollwave/testutil"
)

// TestCreateSchemaIdempotent verifies schema creation is safe to run on
// every start, including against an already-populated database.
func TestCreateSchemaIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	testutil.CreateTestUser(t, conn, "alice", "hunter2")
	testutil.CreateTestPoll(t, conn, "Best color?", "Red")

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}

	// Existing rows survive
	var users int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM app_user`).Scan(&users); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if users != 1 {
		t.Errorf("Expected 1 user after re-running schema, got %d", users)
	}
}

func TestVotesCannotGoNegative(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	poll := testutil.CreateTestPoll(t, conn, "Best color?", "Red")

	_, err := conn.Exec(`
		UPDATE option SET votes = -1 WHERE poll_id = $1 AND answer = $2
	`, poll.ID, "Red")
	if err == nil {
		t.Error("Expected the votes check constraint to reject a negative count")
	}
}
