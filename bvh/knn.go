// Package bvh: bulk k-nearest-neighbour search.
package bvh

import (
	"math"

	"github.com/katalvlaran/spindex/envelope"
)

// kthTracker keeps the k smallest MAXMINDIST values of one query's row
// at one level, as a bounded max-heap: the root is the row's k-th upper
// bound once k values arrived.
type kthTracker struct {
	k int
	v []float64 // max-heap, len ≤ k
}

// push records an upper bound, keeping only the k smallest seen.
// Complexity: O(log k).
func (h *kthTracker) push(x float64) {
	if len(h.v) < h.k {
		h.v = append(h.v, x)
		// Sift up.
		i := len(h.v) - 1
		for i > 0 {
			parent := (i - 1) / 2
			if h.v[parent] >= h.v[i] {
				break
			}
			h.v[parent], h.v[i] = h.v[i], h.v[parent]
			i = parent
		}

		return
	}
	if x >= h.v[0] {
		return
	}
	// Replace the root and sift down.
	h.v[0] = x
	i := 0
	for {
		l, r := 2*i+1, 2*i+2
		largest := i
		if l < len(h.v) && h.v[l] > h.v[largest] {
			largest = l
		}
		if r < len(h.v) && h.v[r] > h.v[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		h.v[i], h.v[largest] = h.v[largest], h.v[i]
		i = largest
	}
}

// bound returns the k-th smallest upper bound seen, +Inf until k
// values arrived. Complexity: O(1).
func (h *kthTracker) bound() float64 {
	if len(h.v) < h.k {
		return math.Inf(1)
	}

	return h.v[0]
}

// Nearest answers a bulk k-nearest-neighbour query: for every envelope
// of obj, the leaf indices that may hold one of its k nearest objects.
//
// Per (query, node) pair the engine computes the MINDIST lower bound
// and the MAXMINDIST upper bound in one pass. A query's nodes at one
// level are disjoint subtrees, so the k-th smallest upper bound of its
// row covers k distinct objects; each query keeps the smallest such
// bound any level has produced, and a node survives iff its lower
// bound does not exceed it. The invariant:
// after every level the tracked bound dominates the k-th true nearest
// distance, so the true k nearest are never pruned. Callers refine
// candidates with exact distances and keep the global k smallest.
//
// Complexity: O(depth × frontier area × (D + log k)).
func (t *Tree) Nearest(obj *envelope.Vect, k int) ([][]int, error) {
	if obj == nil {
		return nil, ErrNilBatch
	}
	if k <= 0 {
		return nil, ErrBadK
	}
	if t.IsEmpty() {
		result := make([][]int, obj.Len())
		for i := range result {
			result[i] = []int{}
		}

		return result, nil
	}

	// Per-query bound state, owned by this call.
	bounds := make([]float64, obj.Len())
	for q := range bounds {
		bounds[q] = math.Inf(1)
	}

	fn := func(query []int, nodes *envelope.Vect) ([]bool, error) {
		sub, err := obj.Slice(query)
		if err != nil {
			return nil, err
		}
		lb, ub, err := sub.BoundDist(nodes)
		if err != nil {
			return nil, err
		}
		width := nodes.Len()
		out := make([]bool, len(lb))
		h := kthTracker{k: k, v: make([]float64, 0, k)}
		for i, q := range query {
			// First absorb the whole row of upper bounds, then prune:
			// the bound must reflect every node at this level.
			h.v = h.v[:0]
			for j := 0; j < width; j++ {
				h.push(ub[i*width+j])
			}
			bound := math.Min(bounds[q], h.bound())
			bounds[q] = bound
			for j := 0; j < width; j++ {
				out[i*width+j] = lb[i*width+j] <= bound
			}
		}

		return out, nil
	}

	return t.Search(obj, fn)
}
