// Package bvh: bulk predicate queries.
package bvh

import "github.com/katalvlaran/spindex/envelope"

// predicateFunc is the envelope-level filter shared by every
// predicate: a node survives iff its envelope strictly intersects the
// query envelope. Envelopes that only touch (share an edge or a
// corner) do not survive, so geometries that meet only on such a
// shared envelope boundary are never candidates. Exact predicate
// refinement happens on true geometries downstream; candidates may
// include false positives.
func predicateFunc(obj *envelope.Vect) SearchFunc {
	return func(query []int, nodes *envelope.Vect) ([]bool, error) {
		sub, err := obj.Slice(query)
		if err != nil {
			return nil, err
		}

		return sub.Intersects(nodes)
	}
}

// Query answers a bulk predicate query: for every envelope of obj, the
// leaf indices whose envelopes survive the level filters, in full
// (query-ordered) form. An empty Tree answers every query with an
// empty set; an unknown predicate returns ErrInvalidPredicate.
// Complexity: O(depth × frontier area).
func (t *Tree) Query(obj *envelope.Vect, predicate string) ([][]int, error) {
	if obj == nil {
		return nil, ErrNilBatch
	}
	if t.IsEmpty() {
		result := make([][]int, obj.Len())
		for i := range result {
			result[i] = []int{}
		}

		return result, nil
	}
	if !ValidPredicate(predicate) {
		return nil, ErrInvalidPredicate
	}

	return t.Search(obj, predicateFunc(obj))
}

// QuerySparse is Query in sparse (path) form, for block-style
// downstream joins.
func (t *Tree) QuerySparse(obj *envelope.Vect, predicate string) ([]Path, error) {
	if obj == nil {
		return nil, ErrNilBatch
	}
	if t.IsEmpty() {
		return nil, nil
	}
	if !ValidPredicate(predicate) {
		return nil, ErrInvalidPredicate
	}

	return t.SearchSparse(obj, predicateFunc(obj))
}
