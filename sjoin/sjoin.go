// Package sjoin implements the index-backed joins.
package sjoin

import (
	"math"
	"sort"

	"github.com/katalvlaran/spindex/bvh"
	"github.com/katalvlaran/spindex/envelope"
	"github.com/katalvlaran/spindex/geom"
	"github.com/katalvlaran/spindex/strtree"
)

// tieEps is the relative closeness within which maximum measures tie.
const tieEps = 1e-9

// envelopesOf converts a geometry collection into a columnar envelope
// batch via each geometry's bounds.
func envelopesOf(geoms []geom.Geometry, buffer float64) (*envelope.Vect, error) {
	return envelope.FromGeoms(geoms, envelope.Options{Buffer: buffer})
}

// Build packs the collection's bounds into a hierarchy ready for joins.
// An empty collection builds the empty Tree.
// Complexity: O(N log N).
func Build(geoms []geom.Geometry, opts Options) (*bvh.Tree, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	ev, err := envelopesOf(geoms, opts.Buffer)
	if err != nil {
		return nil, err
	}

	return strtree.Build(ev, strtree.Options{
		PageSize:   opts.PageSize,
		MaxTopSize: opts.MaxTopSize,
	})
}

// Query returns, per left geometry, the right indices whose geometries
// satisfy the named predicate: envelope candidates from the index,
// refined by the exact kernel predicate. tree must index right.
// Envelopes that only touch are never candidates, so geometries that
// meet only on a shared envelope boundary (edge-adjacent squares under
// "touches", for one) are not reported.
// Complexity: traversal + one Relate per candidate.
func Query(tree *bvh.Tree, left, right []geom.Geometry, predicate string) ([][]int, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	obj, err := envelopesOf(left, 0)
	if err != nil {
		return nil, err
	}
	candidates, err := tree.Query(obj, predicate)
	if err != nil {
		return nil, err
	}

	result := make([][]int, len(left))
	for i := range left {
		matches := []int{}
		for _, j := range candidates[i] {
			ok, err := left[i].Relate(predicate, right[j])
			if err != nil {
				return nil, err
			}
			if ok {
				matches = append(matches, j)
			}
		}
		result[i] = matches
	}

	return result, nil
}

// KNNJoin returns, per left geometry, its k nearest right geometries
// by exact distance, ascending (ties break on the smaller index).
// Fewer than k results appear when the right collection is smaller
// than k. tree must index right.
// Complexity: traversal + one Distance per surviving candidate.
func KNNJoin(tree *bvh.Tree, left, right []geom.Geometry, k int) ([][]Neighbor, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	obj, err := envelopesOf(left, 0)
	if err != nil {
		return nil, err
	}
	candidates, err := tree.Nearest(obj, k)
	if err != nil {
		return nil, err
	}

	result := make([][]Neighbor, len(left))
	for i := range left {
		neighbors := make([]Neighbor, 0, len(candidates[i]))
		for _, j := range candidates[i] {
			d, err := left[i].Distance(right[j])
			if err != nil {
				return nil, err
			}
			neighbors = append(neighbors, Neighbor{Index: j, Distance: d})
		}
		sort.Slice(neighbors, func(a, b int) bool {
			if neighbors[a].Distance != neighbors[b].Distance {
				return neighbors[a].Distance < neighbors[b].Distance
			}

			return neighbors[a].Index < neighbors[b].Index
		})
		if len(neighbors) > k {
			neighbors = neighbors[:k]
		}
		result[i] = neighbors
	}

	return result, nil
}

// MaxMeasureJoin returns, per left geometry, the right geometries
// maximizing the intersection measure. measure must be MeasureLength
// (lineal left inputs) or MeasureArea (areal left inputs); a left
// geometry of the wrong kind fails with the kernel's unsupported-type
// sentinel before any candidate work. Ties within floating-point
// closeness all appear in Right. A left geometry with no candidate or
// only zero measures yields Right nil and Measure NaN. tree must index
// right.
// Complexity: traversal + one Intersection per candidate.
func MaxMeasureJoin(tree *bvh.Tree, left, right []geom.Geometry, measure string) ([]MaxMatch, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if measure != MeasureLength && measure != MeasureArea {
		return nil, ErrInvalidMeasure
	}
	for _, g := range left {
		if measure == MeasureLength && !g.Type().Lineal() {
			return nil, geom.ErrUnsupportedGeometry
		}
		if measure == MeasureArea && !g.Type().Areal() {
			return nil, geom.ErrUnsupportedGeometry
		}
	}
	obj, err := envelopesOf(left, 0)
	if err != nil {
		return nil, err
	}
	paths, err := tree.QuerySparse(obj, "intersects")
	if err != nil {
		return nil, err
	}

	result := make([]MaxMatch, len(left))
	for i := range result {
		result[i] = MaxMatch{Left: i, Right: nil, Measure: math.NaN()}
	}
	for _, path := range paths {
		for _, q := range path.Query {
			best, indices, err := argmaxMeasure(left[q], right, path.Target, measure)
			if err != nil {
				return nil, err
			}
			if len(indices) > 0 {
				result[q] = MaxMatch{Left: q, Right: indices, Measure: best}
			}
		}
	}

	return result, nil
}

// argmaxMeasure evaluates the intersection measure of one left
// geometry against each candidate and returns the maximum plus every
// index within relative tie closeness of it. A non-positive maximum
// returns no indices.
func argmaxMeasure(lg geom.Geometry, right []geom.Geometry, candidates []int, measure string) (float64, []int, error) {
	measures := make([]float64, len(candidates))
	best := 0.0
	for c, j := range candidates {
		g, err := lg.Intersection(right[j])
		if err != nil {
			return 0, nil, err
		}
		if measure == MeasureLength {
			measures[c] = g.Length()
		} else {
			measures[c] = g.Area()
		}
		if measures[c] > best {
			best = measures[c]
		}
	}
	if best <= 0 {
		return 0, nil, nil
	}
	tol := tieEps * math.Max(1, math.Abs(best))
	indices := make([]int, 0, 1)
	for c, j := range candidates {
		if best-measures[c] <= tol {
			indices = append(indices, j)
		}
	}
	sort.Ints(indices)

	return best, indices, nil
}
