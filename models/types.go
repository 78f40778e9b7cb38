// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Config keys
const (
	ConfigElectionStatus = "electionStatus"
	ConfigDuplicateMode  = "duplicateMode"
)

// ElectionStatus controls whether the kiosk accepts ballots.
type ElectionStatus string

const (
	StatusStopped ElectionStatus = "stopped"
	StatusActive  ElectionStatus = "active"
)

func (s ElectionStatus) Valid() bool {
	return s == StatusStopped || s == StatusActive
}

// DuplicateMode selects how double voting is prevented. The store performs
// no gating itself; the voting flow reads the mode and acts on it.
type DuplicateMode string

const (
	// DuplicateModeManual: a supervisor verifies the voter on a printed
	// roll before the ballot screen is shown. Nothing to check in-store.
	DuplicateModeManual DuplicateMode = "A"

	// DuplicateModeToken: the voter presents a one-time code; the flow
	// must call ConsumeToken and proceed only on acceptance.
	DuplicateModeToken DuplicateMode = "B"

	// DuplicateModeIDPIN is a reserved identifier. No verification path
	// exists for it; a flow that finds this mode configured must refuse
	// to proceed rather than fall through unchecked.
	DuplicateModeIDPIN DuplicateMode = "C"
)

func (m DuplicateMode) Valid() bool {
	return m == DuplicateModeManual || m == DuplicateModeToken || m == DuplicateModeIDPIN
}

// Domain types

type Position struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Candidate struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"` // data URL, may be empty
	PositionID  int64  `json:"position_id"`
}

type Vote struct {
	ID          int64     `json:"id"`
	BallotID    string    `json:"ballot_id"`
	PositionID  int64     `json:"position_id"`
	CandidateID int64     `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Token struct {
	Code   string     `json:"code"`
	Used   bool       `json:"used"`
	UsedAt *time.Time `json:"used_at,omitempty"`
}

// Input types

// Selection is one position/candidate pair on a ballot.
type Selection struct {
	PositionID  int64 `json:"position_id"`
	CandidateID int64 `json:"candidate_id"`
}

// PositionPatch updates only the fields that are set.
type PositionPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CandidatePatch updates only the fields that are set. A candidate cannot
// be moved between positions; delete and re-add instead.
type CandidatePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// Result types

// Ballot is the set of votes persisted by one RecordVote call.
type Ballot struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Votes       []Vote    `json:"votes"`
}

// Tally maps position id -> candidate id -> vote count. Every position is
// present; candidates with zero votes are absent from the inner map.
type Tally map[int64]map[int64]int
