// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/ballot-kiosk/models"
)

type seedCandidate struct {
	name        string
	description string
	color       string
}

var seedPositions = []struct {
	name        string
	description string
	candidates  []seedCandidate
}{
	{
		name:        "School President",
		description: "Leads the student council.",
		candidates:  seedCandidates,
	},
	{
		name:        "Vice President",
		description: "Supports the president.",
		candidates:  seedCandidates,
	},
	{
		name:        "Sports Captain",
		description: "Leads sports initiatives.",
		candidates:  seedCandidates,
	},
}

var seedCandidates = []seedCandidate{
	{name: "Alex Nova", description: "Focused on inclusivity and events.", color: "#7c3aed"},
	{name: "Riley Azure", description: "Sustainability & clubs.", color: "#06b6d4"},
	{name: "Kai Ember", description: "Tech and innovation.", color: "#f59e0b"},
}

// SeedIfEmpty bootstraps a fresh database with the default positions, three
// placeholder candidates each, and config defaults (election stopped,
// duplicate mode A). Returns true if it seeded.
//
// The emptiness check and every insert share one transaction on the single
// kiosk connection, so calling this on every startup - or from several
// goroutines at once - writes the defaults at most once and never
// duplicates a position.
func (s *Store) SeedIfEmpty() (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, storageErr("begin transaction", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM position`).Scan(&count); err != nil {
		slog.Error("failed to count positions", "error", err)
		return false, storageErr("count positions", err)
	}
	if count > 0 {
		return false, nil
	}

	for _, p := range seedPositions {
		res, err := tx.Exec(`
			INSERT INTO position (name, description)
			VALUES ($1, $2)
		`, p.name, p.description)
		if err != nil {
			slog.Error("failed to seed position", "error", err, "name", p.name)
			return false, storageErr("seed position", err)
		}

		positionID, err := res.LastInsertId()
		if err != nil {
			return false, storageErr("seed position", err)
		}

		for _, c := range p.candidates {
			_, err := tx.Exec(`
				INSERT INTO candidate (name, description, image, position_id)
				VALUES ($1, $2, $3, $4)
			`, c.name, c.description, sampleAvatar(c.color), positionID)
			if err != nil {
				slog.Error("failed to seed candidate", "error", err, "name", c.name)
				return false, storageErr("seed candidate", err)
			}
		}
	}

	defaults := map[string]string{
		models.ConfigElectionStatus: string(models.StatusStopped),
		models.ConfigDuplicateMode:  string(models.DuplicateModeManual),
	}
	for key, value := range defaults {
		_, err := tx.Exec(`
			INSERT INTO config (key, value)
			VALUES ($1, $2)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		if err != nil {
			slog.Error("failed to seed config", "error", err, "key", key)
			return false, storageErr("seed config", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, storageErr("commit transaction", err)
	}

	slog.Info("seeded default election data", "positions", len(seedPositions))

	return true, nil
}

// sampleAvatar renders a deterministic placeholder portrait as an SVG data
// URL. No network fetch: the kiosk is offline.
func sampleAvatar(color string) string {
	svg := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="200" height="200" viewBox="0 0 200 200" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <radialGradient id="g" cx="50%%" cy="50%%" r="75%%">
      <stop offset="0%%" stop-color="%s" stop-opacity="0.9"/>
      <stop offset="100%%" stop-color="%s" stop-opacity="0.3"/>
    </radialGradient>
  </defs>
  <rect width="200" height="200" rx="24" fill="url(#g)"/>
  <circle cx="100" cy="80" r="36" fill="white" fill-opacity="0.9"/>
  <rect x="45" y="125" width="110" height="50" rx="18" fill="white" fill-opacity="0.85"/>
</svg>`, color, color)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
