// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/ballot-kiosk/models"
)

// AddTokens imports codes as unused tokens in one transaction and returns
// how many were written. Blank codes are skipped.
//
// Re-importing an existing code resets it to unused. This is the supervisor
// reissue flow: re-arming a spoiled code deliberately makes it valid again,
// so never re-import codes from a batch that is already in voters' hands.
func (s *Store) AddTokens(codes []string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, storageErr("begin transaction", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}

		_, err := tx.Exec(`
			INSERT INTO token (code, used, used_at)
			VALUES ($1, 0, NULL)
			ON CONFLICT(code) DO UPDATE SET used = 0, used_at = NULL
		`, code)

		if err != nil {
			slog.Error("failed to insert token", "error", err)
			return 0, storageErr("insert token", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("commit transaction", err)
	}

	slog.Info("tokens imported", "count", inserted)

	return inserted, nil
}

// ListTokens returns all tokens ordered by code.
func (s *Store) ListTokens() ([]models.Token, error) {
	rows, err := s.db.Query(`
		SELECT code, used, used_at
		FROM token
		ORDER BY code
	`)
	if err != nil {
		slog.Error("failed to query tokens", "error", err)
		return nil, storageErr("query tokens", err)
	}
	defer rows.Close()

	tokens := []models.Token{}
	for rows.Next() {
		var tok models.Token
		if err := rows.Scan(&tok.Code, &tok.Used, &tok.UsedAt); err != nil {
			slog.Error("failed to scan token", "error", err)
			return nil, storageErr("scan token", err)
		}
		tokens = append(tokens, tok)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("query tokens", err)
	}

	return tokens, nil
}

// ConsumeToken marks the token used and returns nil exactly once per code.
// Returns ErrNotFound for an unknown code and ErrTokenUsed for a consumed
// one, so the kiosk can show "invalid" and "already used" differently.
//
// The used flag flips via a single conditional UPDATE, so concurrent calls
// for the same code race on the database, not in Go: one caller wins the
// row, the rest see zero rows affected.
func (s *Store) ConsumeToken(code string) error {
	usedAt := time.Now()

	res, err := s.db.Exec(`
		UPDATE token
		SET used = 1, used_at = $1
		WHERE code = $2 AND used = 0
	`, usedAt, code)

	if err != nil {
		slog.Error("failed to consume token", "error", err)
		return storageErr("consume token", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("consume token", err)
	}

	if n == 1 {
		slog.Info("token consumed", "code", code)
		return nil
	}

	// Lost the race or never eligible - find out which.
	var used bool
	err = s.db.QueryRow(`SELECT used FROM token WHERE code = $1`, code).Scan(&used)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		slog.Error("failed to query token", "error", err)
		return storageErr("query token", err)
	}

	return ErrTokenUsed
}
