// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles opening the kiosk database and schema creation.

# Opening

Open configures an embedded SQLite database (modernc.org/sqlite, pure Go)
with WAL journaling, enforced foreign keys, and a 5s busy timeout:

	conn, err := db.Open("election.db")

The connection pool is pinned to a single connection: the kiosk is a
single-process, single-writer appliance, and one connection makes SQLite
transactions strictly serial.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - position: electable offices
  - candidate: candidates per position
  - vote: append-only vote log, one row per ballot selection
  - token: one-time voting credentials keyed by code
  - config: key-value election configuration

# Relationships

	position 1──* candidate   (ON DELETE CASCADE)
	position 1──* vote        (logical only, no FK)
	candidate 1──* vote       (logical only, no FK)

Votes deliberately carry no foreign keys: the log is append-only and must
not be rewritten when a position or candidate is removed.

# Identifiers

position, candidate, and vote use INTEGER PRIMARY KEY AUTOINCREMENT, so ids
are monotonically increasing and never reused after deletion. token is keyed
by its code string.

# Indexes

  - candidate.position_id
  - vote.position_id, vote.ballot_id, vote.created_at
  - token.used
*/
package db
