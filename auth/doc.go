// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin credential verification and voting token code
generation for the kiosk.

# Admin Password

The admin password is never stored; the kiosk keeps a salted SHA-256 hash
and verifies input against it in constant time:

	ok := auth.VerifyAdminPassword(input, cfg.AdminPasswordSalt, cfg.AdminPasswordHash)

DefaultPasswordSalt and DefaultAdminPasswordHash match the values
pre-configured on the kiosk image.

# Token Codes

GenerateTokenCodes produces random codes for duplicate-prevention mode B,
drawn from an unambiguous uppercase alphabet (no 0/O or 1/I):

	codes, err := auth.GenerateTokenCodes(50, 6)
	count, err := store.AddTokens(codes)

Codes are unique within a batch; cross-batch uniqueness is handled by the
token table's primary key on import.
*/
package auth
