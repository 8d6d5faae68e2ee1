// Package geom: the built-in planar kernel types.
package geom

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/spindex/envelope"
)

// Empty is the empty geometry: the result of a void intersection.
type Empty struct{}

// Type returns TypeEmpty.
func (Empty) Type() Type { return TypeEmpty }

// Bounds returns the degenerate zero rectangle.
func (Empty) Bounds() envelope.Rect { return envelope.Rect{} }

// Length returns 0.
func (Empty) Length() float64 { return 0 }

// Area returns 0.
func (Empty) Area() float64 { return 0 }

// Distance of the empty geometry is undefined.
func (Empty) Distance(Geometry) (float64, error) { return 0, ErrUnsupportedGeometry }

// Intersection of the empty geometry is empty.
func (Empty) Intersection(Geometry) (Geometry, error) { return Empty{}, nil }

// Relate of the empty geometry is vacuously false.
func (Empty) Relate(predicate string, _ Geometry) (bool, error) {
	if !ValidPredicate(predicate) {
		return false, ErrBadPredicate
	}

	return false, nil
}

// Point is a single planar position.
type Point struct {
	c r2.Point
}

// NewPoint constructs a Point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{c: r2.Point{X: x, Y: y}}
}

// XY returns the coordinates.
func (p Point) XY() (x, y float64) { return p.c.X, p.c.Y }

// Type returns TypePoint.
func (Point) Type() Type { return TypePoint }

// Bounds returns the degenerate rectangle at the point.
func (p Point) Bounds() envelope.Rect {
	return envelope.Rect{MinX: p.c.X, MinY: p.c.Y, MaxX: p.c.X, MaxY: p.c.Y}
}

// Length returns 0.
func (Point) Length() float64 { return 0 }

// Area returns 0.
func (Point) Area() float64 { return 0 }

// Distance returns the exact distance to other.
func (p Point) Distance(other Geometry) (float64, error) { return distance(p, other) }

// Intersection returns the shared geometry with other.
func (p Point) Intersection(other Geometry) (Geometry, error) { return intersection(p, other) }

// Relate evaluates a named predicate against other.
func (p Point) Relate(predicate string, other Geometry) (bool, error) {
	return relate(p, predicate, other)
}

// LineString is an open polyline of at least two vertices.
type LineString struct {
	pts []r2.Point
}

// NewLineString constructs a polyline from coordinate pairs.
// Returns ErrBadGeometry for fewer than two vertices.
func NewLineString(coords [][2]float64) (LineString, error) {
	if len(coords) < 2 {
		return LineString{}, ErrBadGeometry
	}
	pts := make([]r2.Point, len(coords))
	for i, c := range coords {
		pts[i] = r2.Point{X: c[0], Y: c[1]}
	}

	return LineString{pts: pts}, nil
}

// Type returns TypeLineString.
func (LineString) Type() Type { return TypeLineString }

// Bounds returns the polyline's bounding rectangle.
func (l LineString) Bounds() envelope.Rect { return boundsOf(l.pts) }

// Length returns the sum of segment lengths.
func (l LineString) Length() float64 {
	sum := 0.0
	for i := 0; i+1 < len(l.pts); i++ {
		sum += l.pts[i+1].Sub(l.pts[i]).Norm()
	}

	return sum
}

// Area returns 0.
func (LineString) Area() float64 { return 0 }

// Distance returns the exact distance to other.
func (l LineString) Distance(other Geometry) (float64, error) { return distance(l, other) }

// Intersection returns the shared geometry with other.
func (l LineString) Intersection(other Geometry) (Geometry, error) { return intersection(l, other) }

// Relate evaluates a named predicate against other.
func (l LineString) Relate(predicate string, other Geometry) (bool, error) {
	return relate(l, predicate, other)
}

// segments visits the polyline's segments.
func (l LineString) segments(visit func(a, b r2.Point) bool) {
	for i := 0; i+1 < len(l.pts); i++ {
		if !visit(l.pts[i], l.pts[i+1]) {
			return
		}
	}
}

// MultiLineString is a collection of polylines, e.g. the pieces of a
// line clipped by a polygon.
type MultiLineString struct {
	parts []LineString
}

// NewMultiLineString assembles a collection from parts.
func NewMultiLineString(parts []LineString) MultiLineString {
	return MultiLineString{parts: append([]LineString(nil), parts...)}
}

// Parts returns the member polylines.
func (m MultiLineString) Parts() []LineString {
	return append([]LineString(nil), m.parts...)
}

// Type returns TypeMultiLineString.
func (MultiLineString) Type() Type { return TypeMultiLineString }

// Bounds returns the union of part bounds.
func (m MultiLineString) Bounds() envelope.Rect {
	var pts []r2.Point
	for _, p := range m.parts {
		pts = append(pts, p.pts...)
	}

	return boundsOf(pts)
}

// Length returns the sum of part lengths.
func (m MultiLineString) Length() float64 {
	sum := 0.0
	for _, p := range m.parts {
		sum += p.Length()
	}

	return sum
}

// Area returns 0.
func (MultiLineString) Area() float64 { return 0 }

// Distance returns the exact distance to other: the minimum over parts.
func (m MultiLineString) Distance(other Geometry) (float64, error) { return distance(m, other) }

// Intersection returns the shared geometry with other.
func (m MultiLineString) Intersection(other Geometry) (Geometry, error) {
	return intersection(m, other)
}

// Relate evaluates a named predicate against other.
func (m MultiLineString) Relate(predicate string, other Geometry) (bool, error) {
	return relate(m, predicate, other)
}

// Polygon is a simple ring, stored counter-clockwise without the
// closing vertex. Clipping operations are exact for convex rings.
type Polygon struct {
	ring []r2.Point
}

// NewPolygon constructs a polygon from coordinate pairs. A closing
// duplicate of the first vertex is dropped; winding is normalized to
// counter-clockwise. Returns ErrBadGeometry for fewer than three
// distinct vertices or a degenerate (zero-area) ring.
func NewPolygon(coords [][2]float64) (Polygon, error) {
	pts := make([]r2.Point, 0, len(coords))
	for _, c := range coords {
		pts = append(pts, r2.Point{X: c[0], Y: c[1]})
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return Polygon{}, ErrBadGeometry
	}
	signed := ringSignedArea(pts)
	if math.Abs(signed) <= epsAbs {
		return Polygon{}, ErrBadGeometry
	}
	if signed < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	return Polygon{ring: pts}, nil
}

// Type returns TypePolygon.
func (Polygon) Type() Type { return TypePolygon }

// Bounds returns the ring's bounding rectangle.
func (p Polygon) Bounds() envelope.Rect { return boundsOf(p.ring) }

// Length returns the ring perimeter.
func (p Polygon) Length() float64 {
	sum := 0.0
	n := len(p.ring)
	for i := 0; i < n; i++ {
		sum += p.ring[(i+1)%n].Sub(p.ring[i]).Norm()
	}

	return sum
}

// Area returns the enclosed area.
func (p Polygon) Area() float64 { return math.Abs(ringSignedArea(p.ring)) }

// Distance returns the exact distance to other.
func (p Polygon) Distance(other Geometry) (float64, error) { return distance(p, other) }

// Intersection returns the shared geometry with other.
func (p Polygon) Intersection(other Geometry) (Geometry, error) { return intersection(p, other) }

// Relate evaluates a named predicate against other.
func (p Polygon) Relate(predicate string, other Geometry) (bool, error) {
	return relate(p, predicate, other)
}

// edges visits the ring's edges.
func (p Polygon) edges(visit func(a, b r2.Point) bool) {
	n := len(p.ring)
	for i := 0; i < n; i++ {
		if !visit(p.ring[i], p.ring[(i+1)%n]) {
			return
		}
	}
}

// boundsOf returns the bounding rectangle of pts.
func boundsOf(pts []r2.Point) envelope.Rect {
	if len(pts) == 0 {
		return envelope.Rect{}
	}
	out := envelope.Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		out.MinX = math.Min(out.MinX, p.X)
		out.MinY = math.Min(out.MinY, p.Y)
		out.MaxX = math.Max(out.MaxX, p.X)
		out.MaxY = math.Max(out.MaxY, p.Y)
	}

	return out
}
