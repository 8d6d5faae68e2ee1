// Package envelope: sentinel errors and construction options.
// This file defines ONLY package-level sentinel errors and the Options
// struct. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user input.
package envelope

import "errors"

// Sentinel errors for envelope construction and batch algebra.
var (
	// ErrDimensionMismatch indicates incompatible dimensions between
	// operand batches, e.g. a 2-D Vect tested against a 3-D Vect.
	ErrDimensionMismatch = errors.New("envelope: dimension mismatch")

	// ErrBadBounds indicates a min coordinate strictly greater than its
	// max coordinate in a rectangle or input array.
	ErrBadBounds = errors.New("envelope: min bound exceeds max bound")

	// ErrBadBuffer indicates a negative construction buffer.
	ErrBadBuffer = errors.New("envelope: construction buffer must be non-negative")

	// ErrBadShape indicates input arrays whose lengths cannot form an
	// N×D batch (mismatched lengths, non-positive dimension count).
	ErrBadShape = errors.New("envelope: invalid batch shape")

	// ErrOutOfRange indicates a positional index outside [0, Len).
	ErrOutOfRange = errors.New("envelope: index out of range")

	// ErrEmptyBatch indicates an operation that requires at least one
	// envelope received an empty batch.
	ErrEmptyBatch = errors.New("envelope: empty batch")
)

// Options configures envelope construction.
//
// Fields:
//
//	Buffer - symmetric padding applied to every envelope: mins shrink
//	         and maxs grow by Buffer. 0 disables padding. Degenerate
//	         point/line envelopes stay legal without it; a small
//	         positive Buffer guards numerical boundary cases.
type Options struct {
	Buffer float64
}

// DefaultOptions returns Options with no construction buffer.
func DefaultOptions() Options {
	return Options{Buffer: 0}
}

// Validate checks that Options fields hold a valid combination.
// It returns ErrBadBuffer if Buffer is negative.
func (o *Options) Validate() error {
	if o.Buffer < 0 {
		return ErrBadBuffer
	}

	return nil
}
