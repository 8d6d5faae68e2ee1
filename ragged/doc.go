// Package ragged provides masked ragged integer matrices: fixed-width
// rectangular storage in which trailing cells of a row may be masked
// out, so rows of unequal logical length share one flat allocation.
//
// What:
//
//   - IntMatrix stores rows×cols int cells row-major in one flat slice,
//     with a parallel mask marking the cells that carry no value.
//   - FromRows right-pads ragged input; Identity builds the n×1 matrix
//     of rows [0..n); Concat stacks matrices of differing widths.
//   - Row compresses a row back to its original dense list; Compressed
//     flattens every unmasked cell in row-major order.
//
// Why:
//
//   - Bulk tree packing groups n items into tiles whose sizes differ
//     by one; a masked matrix represents the grouping without per-row
//     allocations and restores each group exactly on demand.
//   - Children tables of the bvh package are ragged by construction.
//
// Complexity:
//
//   - At/Set/MaskedAt:  O(1).
//   - Row:              O(cols), Compressed: O(rows×cols).
//   - FromRows/Concat:  O(total cells), Memory: O(rows×maxWidth).
//
// Errors:
//
//   - ErrBadShape: non-positive dimensions or ragged misuse.
//   - ErrOutOfRange: row or column index outside the matrix.
//
// The contract every consumer relies on: Row(r) yields exactly the
// dense list of values that built row r, in insertion order.
package ragged
