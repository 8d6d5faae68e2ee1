// Package strtree: sentinel errors, defaults and packing options.
package strtree

import "errors"

// Default packing parameters.
const (
	// DefaultPageSize is the default fan-out F.
	DefaultPageSize = 16

	// DefaultMaxTopSize is the default maximum top-level width.
	DefaultMaxTopSize = 1
)

// Sentinel errors for packing validation.
var (
	// ErrBadPageSize indicates a fan-out of zero or less.
	ErrBadPageSize = errors.New("strtree: page size must be positive")

	// ErrBadTopSize indicates a maximum top size of zero or less.
	ErrBadTopSize = errors.New("strtree: max top size must be positive")

	// ErrNilBatch indicates a nil envelope batch.
	ErrNilBatch = errors.New("strtree: nil envelope batch")
)

// Options configures the packer.
//
// Fields:
//
//	PageSize   - fan-out F: the target number of children per node.
//	MaxTopSize - packing stops once a level has at most this many nodes.
type Options struct {
	PageSize   int
	MaxTopSize int
}

// DefaultOptions returns Options with PageSize 16 and MaxTopSize 1.
func DefaultOptions() Options {
	return Options{
		PageSize:   DefaultPageSize,
		MaxTopSize: DefaultMaxTopSize,
	}
}

// Validate checks that Options fields hold a valid combination.
func (o *Options) Validate() error {
	if o.PageSize <= 0 {
		return ErrBadPageSize
	}
	if o.MaxTopSize <= 0 {
		return ErrBadTopSize
	}

	return nil
}
