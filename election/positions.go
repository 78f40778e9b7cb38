// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"log/slog"

	"github.com/danielhkuo/ballot-kiosk/models"
)

// AddPosition creates a new electable position and returns it with its
// assigned id.
func (s *Store) AddPosition(name, description string) (models.Position, error) {
	res, err := s.db.Exec(`
		INSERT INTO position (name, description)
		VALUES ($1, $2)
	`, name, description)

	if err != nil {
		slog.Error("failed to insert position", "error", err)
		return models.Position{}, storageErr("insert position", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Position{}, storageErr("insert position", err)
	}

	slog.Info("position created", "position_id", id, "name", name)

	return models.Position{ID: id, Name: name, Description: description}, nil
}

// GetPosition returns the position with the given id, or ErrNotFound.
func (s *Store) GetPosition(id int64) (models.Position, error) {
	var p models.Position
	err := s.db.QueryRow(`
		SELECT id, name, description FROM position WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description)

	if err == sql.ErrNoRows {
		return models.Position{}, ErrNotFound
	}
	if err != nil {
		slog.Error("failed to query position", "error", err)
		return models.Position{}, storageErr("query position", err)
	}

	return p, nil
}

// ListPositions returns all positions in creation order.
func (s *Store) ListPositions() ([]models.Position, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description
		FROM position
		ORDER BY id
	`)
	if err != nil {
		slog.Error("failed to query positions", "error", err)
		return nil, storageErr("query positions", err)
	}
	defer rows.Close()

	positions := []models.Position{}
	for rows.Next() {
		var p models.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			slog.Error("failed to scan position", "error", err)
			return nil, storageErr("scan position", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("query positions", err)
	}

	return positions, nil
}

// UpdatePosition applies the set fields of patch to the position and
// returns the merged record. Returns ErrNotFound for a missing id.
func (s *Store) UpdatePosition(id int64, patch models.PositionPatch) (models.Position, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Position{}, storageErr("begin transaction", err)
	}
	defer tx.Rollback()

	var p models.Position
	err = tx.QueryRow(`
		SELECT id, name, description FROM position WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description)

	if err == sql.ErrNoRows {
		return models.Position{}, ErrNotFound
	}
	if err != nil {
		slog.Error("failed to query position", "error", err)
		return models.Position{}, storageErr("query position", err)
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}

	_, err = tx.Exec(`
		UPDATE position SET name = $1, description = $2 WHERE id = $3
	`, p.Name, p.Description, id)

	if err != nil {
		slog.Error("failed to update position", "error", err)
		return models.Position{}, storageErr("update position", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Position{}, storageErr("commit transaction", err)
	}

	return p, nil
}

// DeletePosition removes the position and every candidate under it in one
// transaction. Votes already recorded for the position are left in the log.
// Returns ErrNotFound for a missing id.
func (s *Store) DeletePosition(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM candidate WHERE position_id = $1`, id)
	if err != nil {
		slog.Error("failed to delete candidates", "error", err, "position_id", id)
		return storageErr("delete candidates", err)
	}

	res, err := tx.Exec(`DELETE FROM position WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete position", "error", err, "position_id", id)
		return storageErr("delete position", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("delete position", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit transaction", err)
	}

	slog.Info("position deleted", "position_id", id)

	return nil
}
