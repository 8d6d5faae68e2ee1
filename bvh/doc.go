// Package bvh provides the level-indexed bounding volume hierarchy and
// its level-synchronous branch-and-bound search engine.
//
// What:
//
//   - Tree stores one envelope batch and one masked children table per
//     level — arrays instead of linked nodes — so whole query batches
//     descend the hierarchy level by level.
//   - Search is the generic engine: a pluggable SearchFunc marks, per
//     (query, node) pair, whether the node is still a live candidate;
//     queries with identical candidate rows merge into one shared path.
//   - Query answers bulk predicate queries via the conservative
//     envelope intersection filter.
//   - Nearest answers bulk k-nearest-neighbour queries with MINDIST
//     lower bounds pruned against per-query MAXMINDIST upper bounds.
//
// Why:
//
//   - Spatial joins ask thousands of queries against one index; the
//     per-level batch evaluation amortizes traversal bookkeeping and
//     the row-grouping collapses identical continuations, a large
//     constant-factor win on dense data.
//
// Complexity:
//
//   - Search: O(depth × Σ |query|×|target| × D) envelope work; the
//     grouping keeps the frontier a partition of the query set.
//   - Depth/Width/Len/IsEmpty: O(1).
//
// Errors:
//
//   - ErrInvalidPredicate: unknown predicate name in Query.
//   - ErrBadK: Nearest with k ≤ 0.
//   - ErrMismatchedLevels: envelope/children level tables disagree.
//
// A built Tree is immutable: concurrent Query/Nearest/Search calls on
// one Tree are safe. Querying an empty Tree yields all-empty results,
// never an error.
package bvh
