// Package bvh: sentinel errors, predicate names and frontier types.
// This file defines ONLY package-level sentinels, the predicate
// vocabulary and the Path frontier record. All operations MUST return
// these sentinels and tests MUST check them via errors.Is.
package bvh

import "errors"

// Sentinel errors for hierarchy construction and search.
var (
	// ErrInvalidPredicate indicates a predicate name outside Predicates.
	ErrInvalidPredicate = errors.New("bvh: invalid predicate")

	// ErrBadK indicates a nearest-neighbour request with k ≤ 0.
	ErrBadK = errors.New("bvh: k must be positive")

	// ErrMismatchedLevels indicates envelope and children level tables
	// of differing lengths or widths.
	ErrMismatchedLevels = errors.New("bvh: envelope and children levels disagree")

	// ErrNilSearchFunc indicates a Search call without a search function.
	ErrNilSearchFunc = errors.New("bvh: nil search function")

	// ErrNilBatch indicates a nil query batch.
	ErrNilBatch = errors.New("bvh: nil query batch")
)

// Predicates lists the predicate names Query accepts. Every predicate
// shares the same conservative envelope-level filter; exact refinement
// against true geometries is the caller's responsibility.
var Predicates = []string{
	"intersects", "contains", "within", "overlaps", "crosses", "touches",
}

// ValidPredicate reports whether name is a member of Predicates.
func ValidPredicate(name string) bool {
	for _, p := range Predicates {
		if p == name {
			return true
		}
	}

	return false
}

// Path is one active frontier item of a search: the query positions
// (indices into the query batch) jointly being tested against the
// target node positions at the current level. After the final level,
// Target holds indices of the original indexed objects.
type Path struct {
	Query  []int
	Target []int
}
