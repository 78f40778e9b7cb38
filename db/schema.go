// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the kiosk store.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Positions
CREATE TABLE IF NOT EXISTS position (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    position_id INTEGER NOT NULL REFERENCES position(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_candidate_position_id ON candidate(position_id);

-- Votes
-- Append-only. No foreign keys: deleting a position must not rewrite the
-- vote log; tallies simply stop reporting orphaned votes.
CREATE TABLE IF NOT EXISTS vote (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ballot_id TEXT NOT NULL,
    position_id INTEGER NOT NULL,
    candidate_id INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_position_id ON vote(position_id);
CREATE INDEX IF NOT EXISTS idx_vote_ballot_id ON vote(ballot_id);
CREATE INDEX IF NOT EXISTS idx_vote_created_at ON vote(created_at);

-- Tokens
CREATE TABLE IF NOT EXISTS token (
    code TEXT PRIMARY KEY,
    used INTEGER NOT NULL DEFAULT 0,
    used_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_token_used ON token(used);

-- Config
CREATE TABLE IF NOT EXISTS config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
