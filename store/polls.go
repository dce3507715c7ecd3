// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/pollwave/models"
)

// Polls is the poll store: durable CRUD over poll documents plus the
// atomic vote-counter increment the voting engine depends on.
type Polls struct {
	db *sql.DB
}

func NewPolls(db *sql.DB) *Polls {
	return &Polls{db: db}
}

// Create persists a new poll and its options in one transaction.
// Option vote counts are stored as submitted (callers initialize to 0).
func (p *Polls) Create(poll models.Poll, createdBy string) error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("begin create poll: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, question, created_by, created_at)
		VALUES ($1, $2, $3, $4)
	`, poll.ID, poll.Question, createdBy, time.Now())
	if err != nil {
		return fmt.Errorf("insert poll: %w", err)
	}

	for i, opt := range poll.Options {
		_, err = tx.Exec(`
			INSERT INTO option (poll_id, answer, votes, position)
			VALUES ($1, $2, $3, $4)
		`, poll.ID, opt.Answer, opt.Votes, i)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return fmt.Errorf("insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create poll: %w", err)
	}
	return nil
}

// Get returns one poll with its options in submission order.
func (p *Polls) Get(id string) (models.Poll, error) {
	var poll models.Poll
	err := p.db.QueryRow(`SELECT id, question FROM poll WHERE id = $1`, id).
		Scan(&poll.ID, &poll.Question)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("query poll: %w", err)
	}

	poll.Options, err = p.optionsFor(id)
	if err != nil {
		return models.Poll{}, err
	}
	return poll, nil
}

// Exists reports whether a poll id references a stored poll.
func (p *Polls) Exists(id string) (bool, error) {
	var exists bool
	err := p.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM poll WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query poll existence: %w", err)
	}
	return exists, nil
}

// List returns every poll, newest first, each with its options.
func (p *Polls) List() ([]models.Poll, error) {
	rows, err := p.db.Query(`SELECT id, question FROM poll ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var poll models.Poll
		if err := rows.Scan(&poll.ID, &poll.Question); err != nil {
			return nil, fmt.Errorf("scan poll: %w", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate polls: %w", err)
	}

	for i := range polls {
		polls[i].Options, err = p.optionsFor(polls[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return polls, nil
}

// IncrementVote bumps one option's counter by exactly 1 and returns the
// new count. The increment happens inside the UPDATE statement, never as
// a read-modify-write in Go, so concurrent votes cannot lose updates.
// Returns ErrNotFound when no (poll, answer) row matches.
func (p *Polls) IncrementVote(pollID, answer string) (int, error) {
	var votes int
	err := p.db.QueryRow(`
		UPDATE option
		SET votes = votes + 1
		WHERE poll_id = $1 AND answer = $2
		RETURNING votes
	`, pollID, answer).Scan(&votes)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment vote: %w", err)
	}
	return votes, nil
}

func (p *Polls) optionsFor(pollID string) ([]models.Option, error) {
	rows, err := p.db.Query(`
		SELECT answer, votes
		FROM option
		WHERE poll_id = $1
		ORDER BY position
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("query options: %w", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.Answer, &opt.Votes); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate options: %w", err)
	}
	return options, nil
}
