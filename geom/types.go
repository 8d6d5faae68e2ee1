// Package geom: sentinel errors, type tags and the Geometry interface.
package geom

import (
	"errors"

	"github.com/katalvlaran/spindex/envelope"
)

// Sentinel errors for kernel construction and dispatch.
var (
	// ErrUnsupportedGeometry indicates a type pair the kernel cannot
	// handle for the requested operation.
	ErrUnsupportedGeometry = errors.New("geom: unsupported geometry type")

	// ErrBadPredicate indicates a predicate name outside the supported set.
	ErrBadPredicate = errors.New("geom: invalid predicate")

	// ErrBadGeometry indicates malformed construction input.
	ErrBadGeometry = errors.New("geom: malformed geometry")
)

// Type tags the concrete shape of a Geometry.
type Type int

const (
	// TypeEmpty is the empty geometry (e.g. a void intersection).
	TypeEmpty Type = iota
	// TypePoint is a single position.
	TypePoint
	// TypeLineString is an open polyline.
	TypeLineString
	// TypeMultiLineString is a collection of polylines.
	TypeMultiLineString
	// TypePolygon is a simple ring.
	TypePolygon
	// TypeMultiPolygon is a collection of rings.
	TypeMultiPolygon
)

// Lineal reports whether t measures by length.
func (t Type) Lineal() bool {
	return t == TypeLineString || t == TypeMultiLineString
}

// Areal reports whether t measures by area.
func (t Type) Areal() bool {
	return t == TypePolygon || t == TypeMultiPolygon
}

// Geometry is the kernel surface consumed by the spatial joins.
//
// Implementations must be immutable values: the joins share geometries
// across queries and, optionally, goroutines.
type Geometry interface {
	// Type returns the shape tag.
	Type() Type

	// Bounds returns the axis-aligned minimum bounding rectangle.
	Bounds() envelope.Rect

	// Length returns the 1-D measure (0 for points, the ring perimeter
	// for polygons).
	Length() float64

	// Area returns the 2-D measure (0 for points and lines).
	Area() float64

	// Distance returns the exact minimum Euclidean distance to other,
	// 0 when the geometries touch or overlap.
	Distance(other Geometry) (float64, error)

	// Intersection returns the shared geometry with other; the result
	// carries the Length/Area measures. The empty intersection is the
	// Empty geometry, not an error.
	Intersection(other Geometry) (Geometry, error)

	// Relate evaluates a named predicate (intersects, contains,
	// within, overlaps, crosses, touches) against other.
	Relate(predicate string, other Geometry) (bool, error)
}

// predicates is the vocabulary Relate accepts.
var predicates = map[string]struct{}{
	"intersects": {}, "contains": {}, "within": {},
	"overlaps": {}, "crosses": {}, "touches": {},
}

// ValidPredicate reports whether name is a supported predicate.
func ValidPredicate(name string) bool {
	_, ok := predicates[name]

	return ok
}
