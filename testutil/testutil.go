// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/danielhkuo/ballot-kiosk/db"
	"github.com/danielhkuo/ballot-kiosk/models"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// It is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupFileDB creates a file-backed database under t.TempDir and returns
// its path alongside the connection, for restart-survival tests.
func SetupFileDB(t *testing.T) (*sql.DB, string) {
	t.Helper()

	path := t.TempDir() + "/election.db"
	conn, err := db.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn, path
}

// CreateTestPosition inserts a position directly and returns it.
func CreateTestPosition(t *testing.T, conn *sql.DB, name string) models.Position {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO position (name, description)
		VALUES ($1, 'A test position')
	`, name)
	if err != nil {
		t.Fatalf("Failed to create test position: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read position id: %v", err)
	}

	return models.Position{ID: id, Name: name, Description: "A test position"}
}

// AddTestCandidate inserts a candidate directly and returns it.
func AddTestCandidate(t *testing.T, conn *sql.DB, positionID int64, name string) models.Candidate {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO candidate (name, description, image, position_id)
		VALUES ($1, 'A test candidate', '', $2)
	`, name, positionID)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read candidate id: %v", err)
	}

	return models.Candidate{
		ID:          id,
		Name:        name,
		Description: "A test candidate",
		PositionID:  positionID,
	}
}

// ImportTestTokens inserts token codes directly, all unused.
func ImportTestTokens(t *testing.T, conn *sql.DB, codes ...string) {
	t.Helper()

	for _, code := range codes {
		_, err := conn.Exec(`
			INSERT INTO token (code, used, used_at)
			VALUES ($1, 0, NULL)
			ON CONFLICT(code) DO UPDATE SET used = 0, used_at = NULL
		`, code)
		if err != nil {
			t.Fatalf("Failed to import test token %q: %v", code, err)
		}
	}
}

// InsertTestVote appends a vote row directly.
func InsertTestVote(t *testing.T, conn *sql.DB, ballotID string, positionID, candidateID int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (ballot_id, position_id, candidate_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, ballotID, positionID, candidateID, time.Now())
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
	}
}

// CountRows returns the number of rows in a table.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return n
}
