// Package geom defines the geometry kernel surface the spatial joins
// consume, and ships a built-in planar kernel implementing it.
//
// What:
//
//   - Geometry is the kernel interface: bounds, exact distance,
//     intersection with length/area measures, a type tag and the named
//     spatial predicates — everything the index layers need to refine
//     envelope candidates into exact answers.
//   - Point, LineString, MultiLineString and Polygon are the built-in
//     planar implementations, with vector algebra on golang/geo's r2
//     points.
//
// Why:
//
//   - The index core (envelope/strtree/bvh) never touches true shapes;
//     all exact geometry funnels through this one seam, so swapping in
//     an external kernel is a matter of implementing the interface.
//   - The built-in kernel makes the module self-contained for joins
//     and tests.
//
// Scope of the built-in kernel:
//
//   - Distances are exact for every supported pair.
//   - Polygon clipping (intersection area) is exact when the clip
//     operand is convex; rings are normalized to counter-clockwise.
//   - Line∩line intersection carries positive length only for
//     collinear overlap; proper crossings are points of length 0.
//
// Errors:
//
//   - ErrUnsupportedGeometry: a pair of types the kernel cannot handle.
//   - ErrBadPredicate: a predicate name outside the supported set.
//   - ErrBadGeometry: malformed construction input (too few vertices).
package geom
