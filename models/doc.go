// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the entity and configuration types for the kiosk store.

# Domain Types

  - Position: an electable office (id, name, description)
  - Candidate: a person running for a position; carries an optional image
    data URL
  - Vote: one recorded choice, immutable once written
  - Token: a one-time voting credential keyed by its code

# Input Types

  - Selection: one position/candidate pair on a ballot
  - PositionPatch, CandidatePatch: partial updates (nil fields untouched)

# Result Types

  - Ballot: the votes persisted together by one RecordVote call
  - Tally: position id -> candidate id -> vote count

# Configuration

Config values are a closed set with typed enums, validated at the boundary:

	ElectionStatus: stopped | active
	DuplicateMode:  A (manual) | B (token) | C (ID+PIN, reserved)

Mode C is persistable so an admin toggle survives restarts, but no
verification logic exists for it anywhere in this module. Voting flows must
treat it as unimplemented and refuse to proceed.
*/
package models
