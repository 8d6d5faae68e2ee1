// Package ragged: sentinel errors and shared constants.
// This file defines ONLY package-level sentinel errors and the masked
// cell sentinel. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.
package ragged

import "errors"

// Masked is the value stored in masked cells. The mask slice, not this
// value, is authoritative; the sentinel only keeps dumps readable.
const Masked = -1

var (
	// ErrBadShape is returned when requested dimensions are non-positive
	// or when input rows cannot form a matrix (nil input, no rows).
	ErrBadShape = errors.New("ragged: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// valid range. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("ragged: index out of range")

	// ErrNilMatrix indicates that a nil *IntMatrix was passed where a
	// constructed matrix is required.
	ErrNilMatrix = errors.New("ragged: nil matrix")
)
