// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballotkiosk is the persistent election data store for an offline
voting kiosk: a single machine where voters pick one candidate per position,
a supervisor manages positions, candidates, and one-time voting tokens, and
results are tallied on-device.

Everything lives in an embedded SQLite database. There is no network surface
here: the kiosk UI (or any other presentation layer) links this module and
calls the election operations directly.

# Packages

  - election: the operations layer (position/candidate CRUD, ballot
    recording, token lifecycle, tallies, seeding, config)
  - models: entity and configuration types
  - db: database open + idempotent schema creation
  - auth: admin password verification and token code generation
  - cliparse: kiosk configuration parsing
  - testutil: in-memory database helpers for tests

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	conn, err := db.Open(cfg.DatabasePath)
	if err := db.CreateSchema(conn); err != nil { ... }

	store := election.NewStore(conn)
	if _, err := store.SeedIfEmpty(); err != nil { ... }

	positions, err := store.ListPositions()

# Correctness Guarantees

  - Ballots are all-or-nothing: RecordVote persists every selection in one
    transaction or none of them.
  - Token consumption is exactly-once: concurrent ConsumeToken calls for one
    code yield a single acceptance.
  - Seeding is idempotent and race-safe: at most one caller ever writes the
    default data.
  - Record ids are never reused, even after deletion.

See package election for the full operation catalogue.
*/
package ballotkiosk
