// Package envelope: scalar axis-aligned rectangle.
// Rect is the single-envelope mirror of the Vect batch ops, used where
// one-off bounds are handled outside a batch (kernel plumbing, tests).
package envelope

import "math"

// Rect is a single 2-D axis-aligned minimum bounding rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect constructs a Rect, validating min ≤ max per axis.
// Complexity: O(1).
func NewRect(minx, miny, maxx, maxy float64) (Rect, error) {
	if minx > maxx || miny > maxy {
		return Rect{}, ErrBadBounds
	}

	return Rect{MinX: minx, MinY: miny, MaxX: maxx, MaxY: maxy}, nil
}

// RectOf returns the bounding rectangle of any Bounder.
// Complexity: O(1) plus the cost of b.Bounds.
func RectOf(b Bounder) Rect {
	return b.Bounds()
}

// MergeRects returns the smallest rectangle covering every input.
// Returns ErrEmptyBatch for empty input.
// Complexity: O(n).
func MergeRects(rects []Rect) (Rect, error) {
	if len(rects) == 0 {
		return Rect{}, ErrEmptyBatch
	}
	out := rects[0]
	for _, r := range rects[1:] {
		out.MinX = math.Min(out.MinX, r.MinX)
		out.MinY = math.Min(out.MinY, r.MinY)
		out.MaxX = math.Max(out.MaxX, r.MaxX)
		out.MaxY = math.Max(out.MaxY, r.MaxY)
	}

	return out, nil
}

// Center returns the rectangle's barycenter. Complexity: O(1).
func (r Rect) Center() (x, y float64) {
	return 0.5 * (r.MinX + r.MaxX), 0.5 * (r.MinY + r.MaxY)
}

// Intersects reports strict rectangle intersection: rectangles that
// only touch along an edge or corner do NOT intersect.
// Complexity: O(1).
func (r Rect) Intersects(o Rect) bool {
	return r.MinX < o.MaxX && r.MaxX > o.MinX &&
		r.MinY < o.MaxY && r.MaxY > o.MinY
}

// Contains reports whether o lies entirely inside r (inclusive).
// Complexity: O(1).
func (r Rect) Contains(o Rect) bool {
	return r.MinX <= o.MinX && r.MinY <= o.MinY &&
		r.MaxX >= o.MaxX && r.MaxY >= o.MaxY
}

// MinDist returns MINDIST: the smallest Euclidean distance between any
// point of r and any point of o, 0 when they overlap or touch.
// Complexity: O(1).
func (r Rect) MinDist(o Rect) float64 {
	gx := math.Max(0, math.Max(r.MinX-o.MaxX, o.MinX-r.MaxX))
	gy := math.Max(0, math.Max(r.MinY-o.MaxY, o.MinY-r.MaxY))

	return math.Hypot(gx, gy)
}

// MaxMinDist returns MAXMINDIST: per axis the far-side gap
// max(|r.min-o.max|, |r.max-o.min|), rooted over the squared sum. An
// upper bound on the distance from any point of r to the far face of o.
// Complexity: O(1).
func (r Rect) MaxMinDist(o Rect) float64 {
	fx := math.Max(math.Abs(r.MinX-o.MaxX), math.Abs(r.MaxX-o.MinX))
	fy := math.Max(math.Abs(r.MinY-o.MaxY), math.Abs(r.MaxY-o.MinY))

	return math.Hypot(fx, fy)
}
