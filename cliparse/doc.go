// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse resolves kiosk configuration from CLI flags, a .env file,
environment variables, and shipped defaults - in that order of precedence.

# Settings

  - DATABASE_PATH (-d): SQLite file path (default: election.db)
  - ADMIN_PASSWORD_HASH (-admin-hash): salted SHA-256 of the admin password
  - ADMIN_PASSWORD_SALT (-admin-salt): salt for the hash

The admin credentials default to the values baked into the kiosk image (see
package auth); override them for a real election.

":memory:" is rejected as a database path: election data must survive a
kiosk restart.
*/
package cliparse
