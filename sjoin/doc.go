// Package sjoin provides index-backed bulk spatial joins between two
// geometry collections: predicate joins, k-nearest-neighbour joins and
// maximum-measure joins.
//
// What:
//
//   - Build packs the right collection's bounds into a bvh.Tree.
//   - Query returns, per left geometry, the right indices satisfying a
//     named predicate — envelope candidates refined by the exact
//     geometry kernel.
//   - KNNJoin returns, per left geometry, its k nearest right
//     geometries by exact distance, ascending.
//   - MaxMeasureJoin returns, per left geometry, the right
//     geometry(ies) maximizing the intersection measure (length for
//     lineal, area for areal inputs).
//
// Why:
//
//   - Joining two collections of size M and N naively costs M×N exact
//     geometry tests; the index prunes to near-linear candidate work.
//
// Complexity:
//
//   - Build: O(N log N). Joins: index traversal plus one exact kernel
//     evaluation per surviving candidate.
//
// Options:
//
//   - Options.PageSize / MaxTopSize: packing parameters (strtree).
//   - Options.Buffer: envelope construction padding (envelope).
//
// Errors:
//
//   - ErrInvalidMeasure: measure outside {length, area}.
//   - ErrNilTree: nil index.
//   - strtree/bvh/envelope/geom sentinels propagate unchanged.
//
// The joins never mutate the Tree; one Tree may serve concurrent joins.
// A caller wanting query-side parallelism partitions the left
// collection, runs a join per chunk against the same Tree, and
// concatenates the outputs.
package sjoin
