// Package spindex is a bulk spatial indexing toolkit for planar
// geometry collections in Go.
//
// 🚀 What is spindex?
//
//	A columnar, batch-first spatial index built for joins between two
//	large collections rather than one-at-a-time lookups:
//
//	  • Envelope algebra: vectorized AAMBR intersects / MINDIST / MAXMINDIST
//	  • Bulk packing: Sort-Tile-Recurse builds a balanced hierarchy in one pass
//	  • Level-synchronous search: whole query batches descend the tree together
//	  • Joins: predicate, k-nearest-neighbour and max-measure joins
//
// ✨ Why choose spindex?
//
//   - Batch-oriented        — one search call answers thousands of queries
//   - Allocation-conscious  — per-level arrays, no linked nodes, no interior pointers
//   - Read-parallel         — a built Tree is immutable and safe to share across goroutines
//   - Pure Go               — no cgo; geometry kernels plug in behind one interface
//
// Everything is organized under small focused subpackages:
//
//	envelope/   — scalar Rect/Sphere and the columnar EnvelopeVect batch algebra
//	ragged/     — masked ragged integer matrices (the children tables)
//	strtree/    — Sort-Tile-Recurse bulk packer
//	bvh/        — the level-indexed hierarchy and its branch-and-bound search engine
//	geom/       — geometry kernel interface plus a built-in planar kernel
//	secircle/   — smallest enclosing circle (Welzl) over disks
//	sjoin/      — index-backed bulk joins over geometry collections
//
// Quick ASCII example:
//
//	    ┌───────────┐          level 0 (top envelope)
//	    │ ┌──┐ ┌──┐ │
//	    │ │L0│ │L1│ │          level 1 (leaves, packed by STR)
//	    │ └──┘ └──┘ │
//	    └───────────┘
//
//	a two-leaf hierarchy: each node's rectangle contains all of its
//	descendants' rectangles.
//
// Dive into the subpackage docs and the runnable examples in sjoin and
// strtree for full usage.
//
//	go get github.com/katalvlaran/spindex
package spindex
