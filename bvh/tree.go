// Package bvh: the Tree container.
// Tree replaces the classical linked node structure with two parallel
// per-level sequences: envelope batches and masked children tables.
package bvh

import (
	"github.com/katalvlaran/spindex/envelope"
	"github.com/katalvlaran/spindex/ragged"
)

// Tree is an immutable bounding volume hierarchy.
//
// envelopes[ℓ] holds the node envelopes of level ℓ (level 0 is the
// top); children[ℓ] row i lists the indices in envelopes[ℓ+1] that are
// children of node i. The last children table is the identity mapping
// into the original indexed objects, so a search that has consumed
// every level holds object indices.
//
// A Tree is safe for concurrent readers; it is never mutated after New.
type Tree struct {
	envelopes []*envelope.Vect
	children  []*ragged.IntMatrix
}

// New assembles a Tree from per-level envelope batches and children
// tables (top level first).
// Stage 1 (Validate): parallel lengths; per level, one children row
// per envelope.
// Stage 2 (Finalize): wrap without copying — callers hand ownership.
// Complexity: O(levels).
func New(envelopes []*envelope.Vect, children []*ragged.IntMatrix) (*Tree, error) {
	if len(envelopes) != len(children) {
		return nil, ErrMismatchedLevels
	}
	for l := range envelopes {
		if envelopes[l] == nil || children[l] == nil {
			return nil, ErrMismatchedLevels
		}
		if envelopes[l].Len() != children[l].Rows() {
			return nil, ErrMismatchedLevels
		}
	}

	return &Tree{envelopes: envelopes, children: children}, nil
}

// Empty returns the zero-level Tree: Depth 0, Len 0.
func Empty() *Tree {
	return &Tree{}
}

// Depth returns the number of levels. Complexity: O(1).
func (t *Tree) Depth() int { return len(t.envelopes) }

// Width returns the number of top-level nodes, 0 when empty.
// Complexity: O(1).
func (t *Tree) Width() int {
	if t.IsEmpty() {
		return 0
	}

	return t.envelopes[0].Len()
}

// Len returns the number of leaves (indexed objects), 0 when empty.
// Complexity: O(1).
func (t *Tree) Len() int {
	if t.IsEmpty() {
		return 0
	}

	return t.envelopes[len(t.envelopes)-1].Len()
}

// IsEmpty reports whether the Tree indexes nothing. Complexity: O(1).
func (t *Tree) IsEmpty() bool { return len(t.envelopes) == 0 }

// Level returns the envelope batch of level l, for inspection and
// invariant tests. Complexity: O(1).
func (t *Tree) Level(l int) (*envelope.Vect, error) {
	if l < 0 || l >= len(t.envelopes) {
		return nil, ErrMismatchedLevels
	}

	return t.envelopes[l], nil
}

// ChildrenAt returns the children table of level l, for inspection and
// invariant tests. Complexity: O(1).
func (t *Tree) ChildrenAt(l int) (*ragged.IntMatrix, error) {
	if l < 0 || l >= len(t.children) {
		return nil, ErrMismatchedLevels
	}

	return t.children[l], nil
}
