// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Defaults shipped on the kiosk image. The salt is public and stable so the
// hash is deterministic across devices; replace the hash via configuration
// before a real election.
const (
	DefaultPasswordSalt = "school-2025-cyberpunk"

	// sha256(DefaultPasswordSalt + default password)
	DefaultAdminPasswordHash = "12a72bba07b1b44357bcc558efe024c8ee8b1bf9bf229f7c29301e1e7e8cc0d8"
)

// HashPassword returns the hex SHA-256 of salt + password.
func HashPassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// VerifyAdminPassword checks password against a stored salted hash in
// constant time. Collecting the password is the UI's problem; this only
// answers yes or no.
func VerifyAdminPassword(password, salt, wantHash string) bool {
	got := HashPassword(salt, password)
	return hmac.Equal([]byte(got), []byte(wantHash))
}

// tokenCharset avoids 0/O, 1/I, and lowercase: codes get read aloud and
// typed on a kiosk keyboard.
const tokenCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTokenCodes creates n random voting codes of the given length,
// unique within the batch.
func GenerateTokenCodes(n, length int) ([]string, error) {
	if n <= 0 || length <= 0 {
		return nil, fmt.Errorf("invalid batch shape: n=%d length=%d", n, length)
	}

	codes := make([]string, 0, n)
	seen := make(map[string]bool, n)

	for len(codes) < n {
		code, err := generateCode(length)
		if err != nil {
			return nil, err
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}

	return codes, nil
}

func generateCode(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token code: %w", err)
	}

	for i := range b {
		b[i] = tokenCharset[int(b[i])%len(tokenCharset)]
	}

	return string(b), nil
}
