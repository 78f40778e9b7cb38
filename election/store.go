// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
)

// Store exposes every election operation over the kiosk database. All
// multi-record mutations run as single transactions; see package doc for
// the guarantees each operation carries.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}
