// Package sjoin: sentinel errors, options and result records.
package sjoin

import (
	"errors"

	"github.com/katalvlaran/spindex/envelope"
	"github.com/katalvlaran/spindex/strtree"
)

// Measure names accepted by MaxMeasureJoin.
const (
	// MeasureLength selects the 1-D intersection measure (lineal inputs).
	MeasureLength = "length"

	// MeasureArea selects the 2-D intersection measure (areal inputs).
	MeasureArea = "area"
)

// Sentinel errors for join validation.
var (
	// ErrInvalidMeasure indicates a measure outside {length, area}.
	ErrInvalidMeasure = errors.New("sjoin: invalid measure")

	// ErrNilTree indicates a nil index.
	ErrNilTree = errors.New("sjoin: nil index")
)

// Options configures Build: packing parameters plus the envelope
// construction buffer.
//
// Fields:
//
//	PageSize   - fan-out of the packed hierarchy (strtree).
//	MaxTopSize - maximum top-level width (strtree).
//	Buffer     - envelope construction padding (envelope).
type Options struct {
	PageSize   int
	MaxTopSize int
	Buffer     float64
}

// DefaultOptions returns PageSize 16, MaxTopSize 1 and no buffer.
func DefaultOptions() Options {
	return Options{
		PageSize:   strtree.DefaultPageSize,
		MaxTopSize: strtree.DefaultMaxTopSize,
		Buffer:     0,
	}
}

// Validate checks that Options fields hold a valid combination by
// delegating to the packing and envelope layers, so Build can fail
// fast with their sentinels.
func (o *Options) Validate() error {
	pack := strtree.Options{PageSize: o.PageSize, MaxTopSize: o.MaxTopSize}
	if err := pack.Validate(); err != nil {
		return err
	}
	env := envelope.Options{Buffer: o.Buffer}

	return env.Validate()
}

// Neighbor is one k-nearest-neighbour match: a right index and the
// exact distance to it.
type Neighbor struct {
	Index    int
	Distance float64
}

// MaxMatch is one maximum-measure match: the left index, the right
// indices attaining the maximum measure (nil when no candidate
// produced a positive measure) and the measure itself (NaN when Right
// is nil).
type MaxMatch struct {
	Left    int
	Right   []int
	Measure float64
}
