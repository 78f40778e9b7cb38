// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/ballot-kiosk/models"
)

// GetConfig returns the stored value for key, or def when the key has
// never been set. Last write wins; there is no versioning.
func (s *Store) GetConfig(key, def string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM config WHERE key = $1`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		slog.Error("failed to query config", "error", err, "key", key)
		return "", storageErr("query config", err)
	}

	return value, nil
}

// SetConfig stores value under key, overwriting any previous value.
func (s *Store) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO config (key, value)
		VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)

	if err != nil {
		slog.Error("failed to set config", "error", err, "key", key)
		return storageErr("set config", err)
	}

	slog.Info("config updated", "key", key, "value", value)

	return nil
}

// ElectionStatus returns the current election status. Defaults to stopped
// on a fresh database.
func (s *Store) ElectionStatus() (models.ElectionStatus, error) {
	v, err := s.GetConfig(models.ConfigElectionStatus, string(models.StatusStopped))
	if err != nil {
		return "", err
	}

	status := models.ElectionStatus(v)
	if !status.Valid() {
		return "", fmt.Errorf("stored electionStatus %q: %w", v, ErrInvalidConfig)
	}

	return status, nil
}

// SetElectionStatus validates and stores the election status.
func (s *Store) SetElectionStatus(status models.ElectionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("election status %q: %w", status, ErrInvalidConfig)
	}

	return s.SetConfig(models.ConfigElectionStatus, string(status))
}

// DuplicateMode returns the configured duplicate-prevention mode. Defaults
// to manual (A) on a fresh database.
func (s *Store) DuplicateMode() (models.DuplicateMode, error) {
	v, err := s.GetConfig(models.ConfigDuplicateMode, string(models.DuplicateModeManual))
	if err != nil {
		return "", err
	}

	mode := models.DuplicateMode(v)
	if !mode.Valid() {
		return "", fmt.Errorf("stored duplicateMode %q: %w", v, ErrInvalidConfig)
	}

	return mode, nil
}

// SetDuplicateMode validates and stores the duplicate-prevention mode.
// Mode C is accepted for persistence but has no verification path; voting
// flows must refuse to proceed while it is configured.
func (s *Store) SetDuplicateMode(mode models.DuplicateMode) error {
	if !mode.Valid() {
		return fmt.Errorf("duplicate mode %q: %w", mode, ErrInvalidConfig)
	}

	return s.SetConfig(models.ConfigDuplicateMode, string(mode))
}
