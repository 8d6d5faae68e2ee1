// Package bvh: the level-synchronous branch-and-bound search engine.
package bvh

import (
	"github.com/katalvlaran/spindex/envelope"
)

// SearchFunc evaluates one tree level for one frontier path. query
// holds positions into the query batch; nodes holds the envelopes of
// the path's target nodes. The result is the flat row-major
// (len(query), nodes.Len()) plane where entry (i,j) is true iff query
// query[i] cannot be excluded from matching through node j — i.e. the
// node stays a live candidate.
type SearchFunc func(query []int, nodes *envelope.Vect) ([]bool, error)

// iota0 returns [0..n).
func iota0(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// rowKey packs a boolean row into a byte string, the grouping
// signature: queries with identical rows share one continuation.
func rowKey(row []bool) string {
	buf := make([]byte, (len(row)+7)/8)
	for i, b := range row {
		if b {
			buf[i/8] |= 1 << uint(i%8)
		}
	}

	return string(buf)
}

// SearchSparse runs the engine and returns the raw leaf-level paths.
// Queries that lost every candidate at some level own no path. Path
// order follows level-by-level insertion order and is deterministic
// for identical inputs, but carries no relation to query order.
func (t *Tree) SearchSparse(obj *envelope.Vect, fn SearchFunc) ([]Path, error) {
	// 1) Validate arguments.
	if obj == nil {
		return nil, ErrNilBatch
	}
	if fn == nil {
		return nil, ErrNilSearchFunc
	}
	// 2) Trivial frontiers: nothing indexed or nothing asked.
	if t.IsEmpty() || obj.Len() == 0 {
		return nil, nil
	}

	// 3) The initial path tests every query against every top node.
	paths := []Path{{Query: iota0(obj.Len()), Target: iota0(t.Width())}}

	// 4) Cascade through the levels. Consuming the last level's
	// children (the identity table) leaves object indices in Target.
	var level int
	for level = 0; level < t.Depth(); level++ {
		nodes := t.envelopes[level]
		children := t.children[level]
		next := make([]Path, 0, len(paths))

		for _, path := range paths {
			// 4.1) Envelopes of this path's target nodes, in target order.
			sub, err := nodes.Slice(path.Target)
			if err != nil {
				return nil, err
			}
			// 4.2) One predicate plane for the whole path.
			pred, err := fn(path.Query, sub)
			if err != nil {
				return nil, err
			}
			width := len(path.Target)

			// 4.3) Group query rows by identical candidate patterns,
			// preserving first-seen order for determinism. All-false
			// rows drop out here: those queries have no match.
			keys := make([]string, 0, len(path.Query))
			groups := make(map[string][]int, len(path.Query))
			for i := range path.Query {
				row := pred[i*width : (i+1)*width]
				alive := false
				for _, b := range row {
					if b {
						alive = true
						break
					}
				}
				if !alive {
					continue
				}
				key := rowKey(row)
				if _, seen := groups[key]; !seen {
					keys = append(keys, key)
				}
				groups[key] = append(groups[key], i)
			}

			// 4.4) One continuation per group: the union of children of
			// every selected node, masking dropped.
			for _, key := range keys {
				rows := groups[key]
				lead := pred[rows[0]*width : (rows[0]+1)*width]
				target := make([]int, 0, width)
				for j, hit := range lead {
					if !hit {
						continue
					}
					target, err = children.AppendRow(target, path.Target[j])
					if err != nil {
						return nil, err
					}
				}
				query := make([]int, len(rows))
				for i, r := range rows {
					query[i] = path.Query[r]
				}
				next = append(next, Path{Query: query, Target: target})
			}
		}
		paths = next
	}

	return paths, nil
}

// Search runs the engine and materializes the full output: one target
// slice per query, in query order, empty for queries that lost every
// candidate. Queries that shared a path share the returned slice;
// treat it as read-only.
func (t *Tree) Search(obj *envelope.Vect, fn SearchFunc) ([][]int, error) {
	paths, err := t.SearchSparse(obj, fn)
	if err != nil {
		return nil, err
	}
	result := make([][]int, obj.Len())
	for i := range result {
		result[i] = []int{}
	}
	for _, path := range paths {
		for _, q := range path.Query {
			result[q] = path.Target
		}
	}

	return result, nil
}
