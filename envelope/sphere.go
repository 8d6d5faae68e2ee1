// Package envelope: scalar smallest-bounding-sphere volume.
// Sphere is the alternative bounding volume to Rect. It bounds long
// diagonal shapes tighter and its pairwise bounds are rotation
// invariant. Only Rect participates in tree packing; Sphere serves
// callers that bound one-off geometries.
package envelope

import (
	"math"

	"github.com/katalvlaran/spindex/secircle"
)

// sphereBuffer is the radius padding applied at construction so
// zero-radius spheres (single points) never degenerate comparisons.
const sphereBuffer = 1e-6

// Sphere is a single bounding sphere: center (X, Y), radius R.
type Sphere struct {
	X, Y, R float64
}

// NewSphere constructs a Sphere around the given vertices via the
// smallest enclosing circle, padding the radius by the construction
// buffer. The seed feeds the deterministic enclosing-circle shuffle.
// Complexity: expected O(len(points)).
func NewSphere(points [][2]float64, seed int64) (Sphere, error) {
	disks := make([]secircle.Circle, len(points))
	for i, p := range points {
		disks[i] = secircle.Circle{X: p[0], Y: p[1]}
	}
	c, err := secircle.Make(disks, seed)
	if err != nil {
		return Sphere{}, err
	}

	return Sphere{X: c.X, Y: c.Y, R: c.R + sphereBuffer}, nil
}

// centerDistSq returns the squared distance between sphere centers.
func (s Sphere) centerDistSq(o Sphere) float64 {
	dx, dy := s.X-o.X, s.Y-o.Y

	return dx*dx + dy*dy
}

// Center returns the sphere's barycenter. Complexity: O(1).
func (s Sphere) Center() (x, y float64) { return s.X, s.Y }

// Intersects reports strict sphere intersection: spheres that only
// touch do NOT intersect. Complexity: O(1).
func (s Sphere) Intersects(o Sphere) bool {
	sum := s.R + o.R

	return s.centerDistSq(o) < sum*sum
}

// MinDist returns a lower bound on the distance between the underlying
// geometries: center distance minus both radii, floored at 0.
// Complexity: O(1).
func (s Sphere) MinDist(o Sphere) float64 {
	return math.Max(0, math.Sqrt(s.centerDistSq(o))-s.R-o.R)
}

// MaxDist returns an upper bound on the distance between the
// underlying geometries. Complexity: O(1).
func (s Sphere) MaxDist(o Sphere) float64 {
	sum := s.R + o.R

	return math.Sqrt(s.centerDistSq(o) + sum*sum)
}
