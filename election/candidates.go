// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"log/slog"

	"github.com/danielhkuo/ballot-kiosk/models"
)

// AddCandidate creates a candidate under an existing position. Returns
// ErrInvalidReference if positionID does not name a position.
func (s *Store) AddCandidate(name, description, image string, positionID int64) (models.Candidate, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM position WHERE id = $1)
	`, positionID).Scan(&exists)

	if err != nil {
		slog.Error("failed to query position", "error", err)
		return models.Candidate{}, storageErr("query position", err)
	}
	if !exists {
		return models.Candidate{}, ErrInvalidReference
	}

	res, err := s.db.Exec(`
		INSERT INTO candidate (name, description, image, position_id)
		VALUES ($1, $2, $3, $4)
	`, name, description, image, positionID)

	if err != nil {
		slog.Error("failed to insert candidate", "error", err)
		return models.Candidate{}, storageErr("insert candidate", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Candidate{}, storageErr("insert candidate", err)
	}

	slog.Info("candidate created", "candidate_id", id, "position_id", positionID, "name", name)

	return models.Candidate{
		ID:          id,
		Name:        name,
		Description: description,
		Image:       image,
		PositionID:  positionID,
	}, nil
}

// GetCandidate returns the candidate with the given id, or ErrNotFound.
func (s *Store) GetCandidate(id int64) (models.Candidate, error) {
	var c models.Candidate
	err := s.db.QueryRow(`
		SELECT id, name, description, image, position_id
		FROM candidate
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.PositionID)

	if err == sql.ErrNoRows {
		return models.Candidate{}, ErrNotFound
	}
	if err != nil {
		slog.Error("failed to query candidate", "error", err)
		return models.Candidate{}, storageErr("query candidate", err)
	}

	return c, nil
}

// ListCandidates returns the candidates under a position in creation order.
// An unknown position id yields an empty slice, not an error.
func (s *Store) ListCandidates(positionID int64) ([]models.Candidate, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, image, position_id
		FROM candidate
		WHERE position_id = $1
		ORDER BY id
	`, positionID)
	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		return nil, storageErr("query candidates", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.PositionID); err != nil {
			slog.Error("failed to scan candidate", "error", err)
			return nil, storageErr("scan candidate", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("query candidates", err)
	}

	return candidates, nil
}

// UpdateCandidate applies the set fields of patch to the candidate and
// returns the merged record. Returns ErrNotFound for a missing id.
func (s *Store) UpdateCandidate(id int64, patch models.CandidatePatch) (models.Candidate, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Candidate{}, storageErr("begin transaction", err)
	}
	defer tx.Rollback()

	var c models.Candidate
	err = tx.QueryRow(`
		SELECT id, name, description, image, position_id
		FROM candidate
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.PositionID)

	if err == sql.ErrNoRows {
		return models.Candidate{}, ErrNotFound
	}
	if err != nil {
		slog.Error("failed to query candidate", "error", err)
		return models.Candidate{}, storageErr("query candidate", err)
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Image != nil {
		c.Image = *patch.Image
	}

	_, err = tx.Exec(`
		UPDATE candidate SET name = $1, description = $2, image = $3 WHERE id = $4
	`, c.Name, c.Description, c.Image, id)

	if err != nil {
		slog.Error("failed to update candidate", "error", err)
		return models.Candidate{}, storageErr("update candidate", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Candidate{}, storageErr("commit transaction", err)
	}

	return c, nil
}

// DeleteCandidate removes a single candidate. No cascade: recorded votes
// stay in the log. Returns ErrNotFound for a missing id.
func (s *Store) DeleteCandidate(id int64) error {
	res, err := s.db.Exec(`DELETE FROM candidate WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete candidate", "error", err, "candidate_id", id)
		return storageErr("delete candidate", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("delete candidate", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	slog.Info("candidate deleted", "candidate_id", id)

	return nil
}
