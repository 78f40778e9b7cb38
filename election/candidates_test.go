// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"testing"

	"github.com/danielhkuo/ballot-kiosk/models"
	"github.com/danielhkuo/ballot-kiosk/testutil"
)

func TestAddCandidate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := NewStore(conn)

	p := testutil.CreateTestPosition(t, conn, "President")

	c, err := store.AddCandidate("Dana Frost", "Debate club lead.", "data:image/png;base64,xyz", p.ID)
	if err != nil {
		t.Fatalf("AddCandidate failed: %v", err)
	}
	if c.ID == 0 {
		t.Error("Expected assigned candidate id")
	}
	if c.PositionID != p.ID {
		t.Errorf("Expected position id %d, got %d", p.ID, c.PositionID)
	}

	got, err := store.GetCandidate(c.ID)
	if err != nil {
		t.Fatalf("GetCandidate failed: %v", err)
	}
	if got != c {
		t.Errorf("Expected %+v, got %+v", c, got)
	}
}

func TestAddCandidateInvalidReference(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))

	_, err := store.AddCandidate("Orphan", "", "", 123)
	if !errors.Is(err, ErrInvalidReference) {
		t.Errorf("Expected ErrInvalidReference, got %v", err)
	}
}

func TestListCandidatesUnknownPositionIsEmpty(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))

	candidates, err := store.ListCandidates(777)
	if err != nil {
		t.Fatalf("ListCandidates must not error for unknown position: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("Expected empty slice, got %d candidates", len(candidates))
	}
}

func TestUpdateCandidateMergesPatch(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := NewStore(conn)

	p := testutil.CreateTestPosition(t, conn, "President")
	c := testutil.AddTestCandidate(t, conn, p.ID, "Dana Frost")

	desc := "Updated platform."
	img := "data:image/png;base64,abc"
	updated, err := store.UpdateCandidate(c.ID, models.CandidatePatch{Description: &desc, Image: &img})
	if err != nil {
		t.Fatalf("UpdateCandidate failed: %v", err)
	}

	if updated.Name != c.Name {
		t.Errorf("Unset name must be untouched, got %q", updated.Name)
	}
	if updated.Description != desc || updated.Image != img {
		t.Errorf("Patched fields not applied: %+v", updated)
	}
	if updated.PositionID != p.ID {
		t.Error("Position reference must never change on update")
	}
}

func TestUpdateCandidateNotFound(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))

	name := "Nobody"
	_, err := store.UpdateCandidate(999, models.CandidatePatch{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCandidate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := NewStore(conn)

	p := testutil.CreateTestPosition(t, conn, "President")
	c := testutil.AddTestCandidate(t, conn, p.ID, "Dana Frost")
	sibling := testutil.AddTestCandidate(t, conn, p.ID, "Ash Reed")

	if err := store.DeleteCandidate(c.ID); err != nil {
		t.Fatalf("DeleteCandidate failed: %v", err)
	}

	if _, err := store.GetCandidate(c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	remaining, _ := store.ListCandidates(p.ID)
	if len(remaining) != 1 || remaining[0].ID != sibling.ID {
		t.Errorf("Sibling candidate must survive, got %+v", remaining)
	}
}

func TestDeleteCandidateNotFound(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))

	err := store.DeleteCandidate(404)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
