// Package secircle computes the smallest enclosing circle of a set of
// disks (points are radius-zero disks) with Welzl's randomized
// incremental algorithm.
//
// What:
//
//   - Circle is a center plus radius.
//   - Make returns a circle covering every input disk, built by the
//     move-to-front incremental scheme with one and two known boundary
//     disks.
//
// Why:
//
//   - Sphere bounding volumes (envelope.Sphere) need the tightest
//     circle around a geometry's vertices.
//   - Bounding circles are rotation-invariant, unlike rectangles, and
//     occasionally bound long diagonal shapes much tighter.
//
// Complexity:
//
//   - Make: expected O(n) after the initial shuffle, O(n²) worst case.
//
// Errors:
//
//   - ErrNegativeRadius: an input disk with radius < 0.
//   - ErrNoDisks: empty input.
//
// Determinism: the shuffle draws from a seeded source (seed 0 selects
// a fixed default), so identical inputs yield identical circles.
// For radius-zero inputs the result is the exact minimum circle; for
// positive radii it is a valid cover through each disk's far side.
package secircle
