// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists submitted ballots.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/evm-adypu/election-server/models"
)

// ErrDuplicateVote is returned when an insert trips the one-vote-per-email
// constraint.
var ErrDuplicateVote = errors.New("vote already exists for this voter")

// VoteStore is a thin adapter over the vote table. Preferences are stored as
// a JSON array so rank order survives the round trip on both drivers.
type VoteStore struct {
	db *sql.DB
}

func NewVoteStore(db *sql.DB) *VoteStore {
	return &VoteStore{db: db}
}

// HasVote reports whether a ballot already exists for the given identity.
func (s *VoteStore) HasVote(email string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM vote WHERE user_email = $1)
	`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return exists, nil
}

// InsertVote appends one ballot. A unique violation on user_email comes back
// as ErrDuplicateVote so callers can treat it as the already-voted condition
// rather than a storage failure.
func (s *VoteStore) InsertVote(v models.Vote) error {
	prefs, err := json.Marshal(v.Preferences)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO vote (id, user_email, house_number, preferences, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, v.ID, v.UserEmail, v.HouseNumber, string(prefs), v.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateVote
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// ListVotes returns every ballot, newest first.
func (s *VoteStore) ListVotes() ([]models.Vote, error) {
	rows, err := s.db.Query(`
		SELECT id, user_email, house_number, preferences, created_at
		FROM vote
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		var prefs string
		if err := rows.Scan(&v.ID, &v.UserEmail, &v.HouseNumber, &prefs, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		if err := json.Unmarshal([]byte(prefs), &v.Preferences); err != nil {
			return nil, fmt.Errorf("failed to decode preferences: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read votes: %w", err)
	}
	return votes, nil
}

// FindVote returns the ballot for an identity, or sql.ErrNoRows if none.
func (s *VoteStore) FindVote(email string) (models.Vote, error) {
	var v models.Vote
	var prefs string
	err := s.db.QueryRow(`
		SELECT id, user_email, house_number, preferences, created_at
		FROM vote
		WHERE user_email = $1
	`, email).Scan(&v.ID, &v.UserEmail, &v.HouseNumber, &prefs, &v.CreatedAt)
	if err != nil {
		return models.Vote{}, err
	}
	if err := json.Unmarshal([]byte(prefs), &v.Preferences); err != nil {
		return models.Vote{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return v, nil
}

// CountByHouse returns the total ballot count and a per-house breakdown.
// Houses with no ballots are present with a zero count.
func (s *VoteStore) CountByHouse() (int, map[int]int, error) {
	rows, err := s.db.Query(`
		SELECT house_number, COUNT(*) FROM vote GROUP BY house_number
	`)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	byHouse := map[int]int{1: 0, 2: 0, 3: 0, 4: 0}
	total := 0
	for rows.Next() {
		var house, count int
		if err := rows.Scan(&house, &count); err != nil {
			return 0, nil, fmt.Errorf("failed to scan count: %w", err)
		}
		byHouse[house] = count
		total += count
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("failed to read counts: %w", err)
	}
	return total, byHouse, nil
}

// isUniqueViolation matches the duplicate-key errors of both supported
// drivers (sqlite and postgres).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
