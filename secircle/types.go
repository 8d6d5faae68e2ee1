// Package secircle: sentinel errors and the Circle value type.
package secircle

import (
	"errors"
	"math"
)

// Sentinel errors for enclosing-circle input validation.
var (
	// ErrNegativeRadius indicates an input disk with radius < 0.
	ErrNegativeRadius = errors.New("secircle: negative radius")

	// ErrNoDisks indicates that Make received no input disks.
	ErrNoDisks = errors.New("secircle: at least one disk is required")
)

// containmentEps is the relative slack on containment checks, guarding
// against boundary disks drifting out of their own circle.
const containmentEps = 1 + 1e-14

// Circle is a disk: center (X, Y) and radius R.
type Circle struct {
	X, Y, R float64
}

// Contains reports whether disk d lies entirely inside c, within the
// relative containment slack. Complexity: O(1).
func (c Circle) Contains(d Circle) bool {
	return math.Hypot(d.X-c.X, d.Y-c.Y)+d.R <= c.R*containmentEps
}
