// Package strtree packs a batch of envelopes into a balanced bounding
// volume hierarchy with the Sort-Tile-Recurse (STR) bulk algorithm.
//
// What:
//
//   - Build sorts envelope centers along the first coordinate, splits
//     them into near-equal tiles, recurses on the remaining
//     coordinates inside each tile, and merges each tile into a parent
//     envelope — repeating until the top level shrinks to MaxTopSize.
//   - The output is a bvh.Tree: per-level envelope batches plus masked
//     children tables, top level first.
//
// Why:
//
//   - Bulk packing a frozen collection beats incremental insertion:
//     one pass, tight envelopes, balanced fan-out, no splits.
//   - STR needs nothing but sorts and integer arithmetic, and the
//     groups of each split differ in size by at most one — a perfect
//     fit for masked ragged children tables.
//
// Complexity:
//
//   - Build: O(N log N × D) time, O(N) memory per level,
//     depth ⌈log_F N⌉ ± 1 levels.
//
// Options:
//
//   - Options.PageSize: fan-out F, the target children per node (16).
//   - Options.MaxTopSize: maximum node count of the top level (1).
//
// Errors:
//
//   - ErrBadPageSize / ErrBadTopSize: non-positive option values.
//   - ErrNilBatch: nil envelope batch.
//
// Ties on a sort coordinate keep the original index order (stable
// sort), so identical inputs always pack into identical trees.
package strtree
