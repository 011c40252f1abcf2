// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The UNIQUE constraint on user_email is the real one-ballot-per-voter
// guard. The handler-level existence check is a courtesy; two sessions
// racing past it both hit this constraint and only one insert lands.
const schema = `
-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    user_email TEXT NOT NULL UNIQUE,
    house_number INTEGER NOT NULL CHECK (house_number BETWEEN 1 AND 4),
    preferences TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_created_at ON vote(created_at);
`
