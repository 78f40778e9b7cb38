// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the targeted id or token code does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidReference: a candidate names a missing position, or a
	// ballot selection names a candidate not under the stated position.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrEmptyBallot: RecordVote was called with no selections.
	ErrEmptyBallot = errors.New("ballot has no selections")

	// ErrTokenUsed: the token exists but was already consumed.
	ErrTokenUsed = errors.New("token already used")

	// ErrInvalidConfig: a typed config setter was given a value outside
	// its enum.
	ErrInvalidConfig = errors.New("invalid config value")

	// ErrStorageUnavailable: the underlying database failed. Fatal to the
	// in-flight operation; never retried here.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// storageErr wraps a driver failure so callers can match it with
// errors.Is(err, ErrStorageUnavailable) while keeping the cause chained.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
