// Package envelope provides bounding volumes for planar geometry:
// scalar rectangles and spheres, and the columnar Vect batch over many
// rectangles at once.
//
// What:
//
//   - Rect is a single axis-aligned minimum bounding rectangle (AAMBR).
//   - Sphere is a single smallest-bounding-sphere volume.
//   - Vect stores N D-dimensional AAMBRs column-major (two flat N×D
//     arrays) and evaluates Intersects / Dist / MaxMinDist / BoundDist
//     between two batches as full (M,K) result planes in one pass.
//   - MergeBy unions groups of envelopes selected by a masked ragged
//     index matrix — the step that lifts one tree level to the next.
//
// Why:
//
//   - Spatial joins test every query envelope against every node of a
//     tree level; doing that rectangle-by-rectangle drowns in call
//     overhead. Batch planes keep the inner loops tight and branch-free.
//   - MINDIST lower bounds and MAXMINDIST upper bounds are the pruning
//     arithmetic of k-nearest-neighbour search.
//
// Complexity:
//
//   - Intersects/Dist/MaxMinDist/BoundDist: O(M×K×D) time, O(M×K) memory.
//   - MergeBy:   O(cells×D). Centers: O(N×D). Slice: O(len(idx)×D).
//
// Options:
//
//   - Options.Buffer: padding applied to every envelope at
//     construction; 0 by default, set small positive values to guard
//     against degenerate (point/line) envelopes in boundary cases.
//
// Errors:
//
//   - ErrDimensionMismatch: operand batches of differing dimensions.
//   - ErrBadBounds: a min coordinate exceeds its max.
//   - ErrBadBuffer: negative construction buffer.
//   - ErrBadShape / ErrOutOfRange: malformed input arrays or indices.
//
// Intersects uses strict inequalities: rectangles that only touch do
// NOT intersect at the envelope level. Callers needing inclusive
// semantics pad inputs via Options.Buffer.
package envelope
