// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the kiosk's election operations over the
embedded database. It is the only layer a presentation surface should talk
to; nothing else touches the tables.

# Store

All operations hang off a Store created with a connection from package db:

	store := election.NewStore(conn)

# Operations

Positions:     AddPosition, GetPosition, ListPositions, UpdatePosition,
               DeletePosition (cascades to candidates in one transaction)
Candidates:    AddCandidate, GetCandidate, ListCandidates, UpdateCandidate,
               DeleteCandidate
Voting:        RecordVote, ResetResults, CountVotes, Tallies
Tokens:        AddTokens, ListTokens, ConsumeToken
Config:        GetConfig, SetConfig, ElectionStatus, SetElectionStatus,
               DuplicateMode, SetDuplicateMode
Bootstrap:     SeedIfEmpty

# Error Taxonomy

Operations return sentinel errors matched with errors.Is:

  - ErrNotFound: the id or token code does not exist
  - ErrInvalidReference: a candidate/position pairing is wrong
  - ErrEmptyBallot: RecordVote got no selections
  - ErrTokenUsed: the code exists but was already consumed
  - ErrInvalidConfig: a typed setter got a value outside its enum
  - ErrStorageUnavailable: the database itself failed (wrapped cause chained)

None of these are swallowed; every operation either succeeds or returns one.

# Atomicity

Every mutation touching more than one row runs in a single transaction:
ballot recording, position delete with candidate cascade, seeding, and bulk
token import. A reader never observes a partial ballot, and a crash leaves
the database at the pre- or post-state of the whole operation.

ConsumeToken is a conditional UPDATE (used = 0 -> 1), so concurrent
consumption of one code accepts exactly one caller.

# Duplicate-Prevention Modes

The store records votes unconditionally; gating is the voting flow's
responsibility, driven by the configured mode:

	A: supervisor checks the voter out-of-band, then records
	B: flow calls ConsumeToken and records only on acceptance
	C: reserved, unimplemented - the flow must refuse to proceed
*/
package election
