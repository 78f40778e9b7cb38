// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballot-kiosk/models"
)

// RecordVote persists one ballot: one vote per selection, all sharing a
// ballot id and timestamp, written in a single transaction. Either every
// selection is recorded or none is.
//
// Each selection must reference a candidate actually belonging to the
// stated position, and a position may appear at most once per ballot;
// otherwise ErrInvalidReference is returned and nothing is written.
//
// No eligibility check happens here - that is the duplicate-prevention
// mode's job, performed by the voting flow before calling RecordVote.
func (s *Store) RecordVote(selections []models.Selection) (models.Ballot, error) {
	if len(selections) == 0 {
		return models.Ballot{}, ErrEmptyBallot
	}

	seen := make(map[int64]bool, len(selections))
	for _, sel := range selections {
		if seen[sel.PositionID] {
			return models.Ballot{}, fmt.Errorf("position %d selected twice: %w", sel.PositionID, ErrInvalidReference)
		}
		seen[sel.PositionID] = true
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Ballot{}, storageErr("begin transaction", err)
	}
	defer tx.Rollback()

	// Validate every pairing inside the transaction so a concurrent
	// candidate deletion cannot slip between check and insert.
	for _, sel := range selections {
		var ok bool
		err := tx.QueryRow(`
			SELECT EXISTS(
				SELECT 1 FROM candidate
				WHERE id = $1 AND position_id = $2
			)
		`, sel.CandidateID, sel.PositionID).Scan(&ok)

		if err != nil {
			slog.Error("failed to validate selection", "error", err)
			return models.Ballot{}, storageErr("validate selection", err)
		}
		if !ok {
			return models.Ballot{}, fmt.Errorf("candidate %d is not running for position %d: %w",
				sel.CandidateID, sel.PositionID, ErrInvalidReference)
		}
	}

	ballotID := uuid.NewString()
	submittedAt := time.Now()

	votes := make([]models.Vote, 0, len(selections))
	for _, sel := range selections {
		res, err := tx.Exec(`
			INSERT INTO vote (ballot_id, position_id, candidate_id, created_at)
			VALUES ($1, $2, $3, $4)
		`, ballotID, sel.PositionID, sel.CandidateID, submittedAt)

		if err != nil {
			slog.Error("failed to insert vote", "error", err)
			return models.Ballot{}, storageErr("insert vote", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return models.Ballot{}, storageErr("insert vote", err)
		}

		votes = append(votes, models.Vote{
			ID:          id,
			BallotID:    ballotID,
			PositionID:  sel.PositionID,
			CandidateID: sel.CandidateID,
			CreatedAt:   submittedAt,
		})
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit ballot", "error", err)
		return models.Ballot{}, storageErr("commit ballot", err)
	}

	slog.Info("ballot recorded", "ballot_id", ballotID, "selections", len(votes))

	return models.Ballot{
		ID:          ballotID,
		SubmittedAt: submittedAt,
		Votes:       votes,
	}, nil
}

// ResetResults clears the entire vote log and returns how many votes were
// removed. Irreversible; confirmation is the caller's responsibility.
func (s *Store) ResetResults() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM vote`)
	if err != nil {
		slog.Error("failed to clear votes", "error", err)
		return 0, storageErr("clear votes", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("clear votes", err)
	}

	slog.Info("results reset", "votes_cleared", n)

	return n, nil
}

// CountVotes returns the total number of votes in the log.
func (s *Store) CountVotes() (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM vote`).Scan(&n)
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		return 0, storageErr("count votes", err)
	}

	return n, nil
}
