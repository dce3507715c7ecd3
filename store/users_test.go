// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollwave/models"
	"github.com/danielhkuo/pollwave/store"
	"github.com/danielhkuo/pollwave/testutil"
)

func TestCreateUserAndLookup(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	users := store.NewUsers(conn)

	user := models.User{ID: uuid.NewString(), Username: "alice", PasswordHash: "x"}
	if err := users.Create(user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	byName, err := users.GetByUsername("alice")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("Expected id %q, got %q", user.ID, byName.ID)
	}

	byID, err := users.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if byID.Username != "alice" {
		t.Errorf("Expected username alice, got %q", byID.Username)
	}

	if _, err := users.GetByUsername("nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	users := store.NewUsers(conn)

	first := models.User{ID: uuid.NewString(), Username: "taken", PasswordHash: "x"}
	if err := users.Create(first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	second := models.User{ID: uuid.NewString(), Username: "taken", PasswordHash: "y"}
	if err := users.Create(second); !errors.Is(err, store.ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
}

// TestAddParticipationIsSet verifies add-to-set semantics: no matter how
// many times a user votes on a poll, the participation set records it once.
func TestAddParticipationIsSet(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	users := store.NewUsers(conn)

	user := testutil.CreateTestUser(t, conn, "bob", "hunter2")
	poll := testutil.CreateTestPoll(t, conn, "Best color?", "Red")

	for i := 0; i < 5; i++ {
		if err := users.AddParticipation(user.ID, poll.ID); err != nil {
			t.Fatalf("AddParticipation call %d failed: %v", i+1, err)
		}
	}

	count, err := users.CountParticipated(user.ID)
	if err != nil {
		t.Fatalf("CountParticipated failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected participation count 1, got %d", count)
	}

	other := testutil.CreateTestPoll(t, conn, "Best pet?", "Cat")
	if err := users.AddParticipation(user.ID, other.ID); err != nil {
		t.Fatalf("AddParticipation failed: %v", err)
	}

	count, err = users.CountParticipated(user.ID)
	if err != nil {
		t.Fatalf("CountParticipated failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected participation count 2, got %d", count)
	}
}
