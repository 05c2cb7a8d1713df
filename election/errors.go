// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// Error kinds returned by Registry operations. Callers dispatch with
// errors.Is; the wrapped message carries the specific detail.
var (
	// ErrNotFound is returned for unknown election ids, and by Winner
	// when no candidate has received any votes.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller is neither the registry
	// owner nor the election's creator.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned for empty/zero/out-of-range arguments,
	// including votes for candidate ids that don't exist.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned when the operation is not valid in the
	// election's current lifecycle phase (already ended, not yet started,
	// window closed, no candidates).
	ErrInvalidState = errors.New("invalid state")

	// ErrAlreadyVoted is returned on a duplicate vote attempt by the
	// same identity in the same election.
	ErrAlreadyVoted = errors.New("already voted")
)
