// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"log/slog"

	"github.com/danielhkuo/ballot-kiosk/models"
)

// Tallies returns vote counts per candidate for every position. Each
// position gets an entry (empty map when no votes); candidates with zero
// votes are absent from the inner map. Counts are exact at the instant of
// the call; no snapshot is held across subsequent writes.
func (s *Store) Tallies() (models.Tally, error) {
	result := models.Tally{}

	rows, err := s.db.Query(`SELECT id FROM position`)
	if err != nil {
		slog.Error("failed to query positions", "error", err)
		return nil, storageErr("query positions", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			slog.Error("failed to scan position", "error", err)
			return nil, storageErr("scan position", err)
		}
		result[id] = map[int64]int{}
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("query positions", err)
	}

	counts, err := s.db.Query(`
		SELECT position_id, candidate_id, COUNT(*)
		FROM vote
		GROUP BY position_id, candidate_id
	`)
	if err != nil {
		slog.Error("failed to aggregate votes", "error", err)
		return nil, storageErr("aggregate votes", err)
	}
	defer counts.Close()

	for counts.Next() {
		var positionID, candidateID int64
		var n int
		if err := counts.Scan(&positionID, &candidateID, &n); err != nil {
			slog.Error("failed to scan tally row", "error", err)
			return nil, storageErr("scan tally row", err)
		}
		// Votes for deleted positions stay in the log but drop out of
		// the report, same as listing a deleted position would.
		if byCandidate, ok := result[positionID]; ok {
			byCandidate[candidateID] = n
		}
	}
	if err := counts.Err(); err != nil {
		return nil, storageErr("aggregate votes", err)
	}

	return result, nil
}
