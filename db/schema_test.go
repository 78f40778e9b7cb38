// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"
)

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("First CreateSchema failed: %v", err)
	}
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}

	// All five collections exist.
	for _, table := range []string{"position", "candidate", "vote", "token", "config"} {
		var n int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
			t.Errorf("Table %q missing: %v", table, err)
		}
	}
}

func TestDataSurvivesReopen(t *testing.T) {
	path := t.TempDir() + "/election.db"

	conn, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	if _, err := conn.Exec(`INSERT INTO position (name, description) VALUES ('President', '')`); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Simulated kiosk restart.
	conn, err = Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema on reopen failed: %v", err)
	}

	var name string
	if err := conn.QueryRow(`SELECT name FROM position`).Scan(&name); err != nil {
		t.Fatalf("Query after reopen failed: %v", err)
	}
	if name != "President" {
		t.Errorf("Expected persisted position, got %q", name)
	}
}

func TestAutoincrementIDsNeverReused(t *testing.T) {
	conn, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	res, _ := conn.Exec(`INSERT INTO position (name) VALUES ('A')`)
	firstID, _ := res.LastInsertId()

	if _, err := conn.Exec(`DELETE FROM position WHERE id = $1`, firstID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	res, _ = conn.Exec(`INSERT INTO position (name) VALUES ('B')`)
	secondID, _ := res.LastInsertId()

	if secondID <= firstID {
		t.Errorf("Expected id %d to be greater than deleted id %d", secondID, firstID)
	}
}
