// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/pollwave/models"
)

// Users is the user store: credentials plus the per-user set of
// participated poll ids.
type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

// Create inserts a new user. Returns ErrDuplicate when the username is
// already taken.
func (u *Users) Create(user models.User) error {
	_, err := u.db.Exec(`
		INSERT INTO app_user (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, user.ID, user.Username, user.PasswordHash, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (u *Users) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := u.db.QueryRow(`
		SELECT id, username, password_hash FROM app_user WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("query user by username: %w", err)
	}
	return user, nil
}

func (u *Users) GetByID(id string) (models.User, error) {
	var user models.User
	err := u.db.QueryRow(`
		SELECT id, username, password_hash FROM app_user WHERE id = $1
	`, id).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("query user by id: %w", err)
	}
	return user, nil
}

// AddParticipation records that a user voted on a poll. Add-to-set
// semantics: the (user_id, poll_id) primary key plus ON CONFLICT DO
// NOTHING make repeat calls no-ops, so the participation set can never
// grow a duplicate entry no matter how often the user re-votes.
func (u *Users) AddParticipation(userID, pollID string) error {
	_, err := u.db.Exec(`
		INSERT INTO participation (user_id, poll_id, first_voted_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, poll_id) DO NOTHING
	`, userID, pollID, time.Now())
	if err != nil {
		return fmt.Errorf("insert participation: %w", err)
	}
	return nil
}

// CountParticipated returns how many distinct polls the user has voted on.
func (u *Users) CountParticipated(userID string) (int, error) {
	var count int
	err := u.db.QueryRow(`
		SELECT COUNT(*) FROM participation WHERE user_id = $1
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count participation: %w", err)
	}
	return count, nil
}
