// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"testing"

	"github.com/danielhkuo/ballot-kiosk/testutil"
)

func TestAddTokens(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := NewStore(conn)

	n, err := store.AddTokens([]string{"AAA111", "BBB222", "  ", ""})
	if err != nil {
		t.Fatalf("AddTokens failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 tokens imported (blanks skipped), got %d", n)
	}

	tokens, err := store.ListTokens()
	if err != nil {
		t.Fatalf("ListTokens failed: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.Used {
			t.Errorf("Freshly imported token %q must be unused", tok.Code)
		}
		if tok.UsedAt != nil {
			t.Errorf("Freshly imported token %q must have nil UsedAt", tok.Code)
		}
	}
}

func TestConsumeToken(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := NewStore(conn)

	testutil.ImportTestTokens(t, conn, "ABC123")

	if err := store.ConsumeToken("ABC123"); err != nil {
		t.Fatalf("First consumption must be accepted: %v", err)
	}

	tokens, _ := store.ListTokens()
	if len(tokens) != 1 || !tokens[0].Used {
		t.Fatalf("Expected token marked used, got %+v", tokens)
	}
	if tokens[0].UsedAt == nil {
		t.Error("Expected consumption timestamp")
	}

	// Second attempt is rejected as used, not unknown.
	err := store.ConsumeToken("ABC123")
	if !errors.Is(err, ErrTokenUsed) {
		t.Errorf("Expected ErrTokenUsed, got %v", err)
	}
}

func TestConsumeTokenUnknownCode(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))

	err := store.ConsumeToken("NOPE42")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if errors.Is(err, ErrTokenUsed) {
		t.Error("Unknown code must not read as already used")
	}
}

// Re-importing a code re-arms it. Deliberate reissue semantics - see the
// AddTokens doc comment.
func TestReimportResetsUsedToken(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := NewStore(conn)

	testutil.ImportTestTokens(t, conn, "XYZ789")

	if err := store.ConsumeToken("XYZ789"); err != nil {
		t.Fatalf("Consumption failed: %v", err)
	}

	if _, err := store.AddTokens([]string{"XYZ789"}); err != nil {
		t.Fatalf("Re-import failed: %v", err)
	}

	tokens, _ := store.ListTokens()
	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token after re-import, got %d", len(tokens))
	}
	if tokens[0].Used {
		t.Error("Re-imported token must be reset to unused")
	}
	if tokens[0].UsedAt != nil {
		t.Error("Re-imported token must have nil UsedAt")
	}

	if err := store.ConsumeToken("XYZ789"); err != nil {
		t.Errorf("Re-armed token must be consumable again: %v", err)
	}
}

func TestListTokensOrderedByCode(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := NewStore(conn)

	testutil.ImportTestTokens(t, conn, "CCC", "AAA", "BBB")

	tokens, err := store.ListTokens()
	if err != nil {
		t.Fatalf("ListTokens failed: %v", err)
	}

	want := []string{"AAA", "BBB", "CCC"}
	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Code != want[i] {
			t.Errorf("Expected code %q at %d, got %q", want[i], i, tok.Code)
		}
	}
}
