// Package geom: distance, intersection and predicate dispatch over the
// built-in kernel types.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// distance returns the exact minimum distance between two geometries.
func distance(a, b Geometry) (float64, error) {
	switch x := a.(type) {
	case Point:
		switch y := b.(type) {
		case Point:
			return x.c.Sub(y.c).Norm(), nil
		case LineString:
			return pointLineDist(x.c, y), nil
		case MultiLineString:
			return minOverParts(y, func(part LineString) float64 {
				return pointLineDist(x.c, part)
			}), nil
		case Polygon:
			return pointPolyDist(x.c, y), nil
		}
	case LineString:
		switch y := b.(type) {
		case Point:
			return pointLineDist(y.c, x), nil
		case LineString:
			return lineLineDist(x, y), nil
		case MultiLineString:
			return minOverParts(y, func(part LineString) float64 {
				return lineLineDist(x, part)
			}), nil
		case Polygon:
			return linePolyDist(x, y), nil
		}
	case MultiLineString:
		best := math.Inf(1)
		for _, part := range x.parts {
			d, err := distance(part, b)
			if err != nil {
				return 0, err
			}
			if d < best {
				best = d
			}
		}

		return best, nil
	case Polygon:
		switch y := b.(type) {
		case Point:
			return pointPolyDist(y.c, x), nil
		case LineString:
			return linePolyDist(y, x), nil
		case MultiLineString:
			return minOverParts(y, func(part LineString) float64 {
				return linePolyDist(part, x)
			}), nil
		case Polygon:
			return polyPolyDist(x, y), nil
		}
	}

	return 0, ErrUnsupportedGeometry
}

// minOverParts folds a per-part distance over a collection.
func minOverParts(m MultiLineString, f func(LineString) float64) float64 {
	best := math.Inf(1)
	for _, part := range m.parts {
		if d := f(part); d < best {
			best = d
		}
	}

	return best
}

// pointLineDist returns the distance from p to the nearest segment of l.
func pointLineDist(p r2.Point, l LineString) float64 {
	best := math.Inf(1)
	l.segments(func(a, b r2.Point) bool {
		if d := pointSegDist(p, a, b); d < best {
			best = d
		}

		return true
	})

	return best
}

// pointPolyDist returns 0 for p inside or on poly, else the distance
// to the nearest edge.
func pointPolyDist(p r2.Point, poly Polygon) float64 {
	if pointInRing(p, poly.ring) {
		return 0
	}
	best := math.Inf(1)
	poly.edges(func(a, b r2.Point) bool {
		if d := pointSegDist(p, a, b); d < best {
			best = d
		}

		return true
	})

	return best
}

// lineLineDist returns the minimum distance over all segment pairs.
func lineLineDist(x, y LineString) float64 {
	best := math.Inf(1)
	x.segments(func(a, b r2.Point) bool {
		y.segments(func(c, d r2.Point) bool {
			if v := segSegDist(a, b, c, d); v < best {
				best = v
			}

			return best > 0
		})

		return best > 0
	})

	return best
}

// linePolyDist returns 0 when the line reaches into or touches poly,
// else the minimum segment-to-edge distance.
func linePolyDist(l LineString, poly Polygon) float64 {
	for _, p := range l.pts {
		if pointInRing(p, poly.ring) {
			return 0
		}
	}
	best := math.Inf(1)
	l.segments(func(a, b r2.Point) bool {
		poly.edges(func(c, d r2.Point) bool {
			if v := segSegDist(a, b, c, d); v < best {
				best = v
			}

			return best > 0
		})

		return best > 0
	})

	return best
}

// polyPolyDist returns 0 when the polygons share any point, else the
// minimum edge-to-edge distance.
func polyPolyDist(x, y Polygon) float64 {
	for _, p := range x.ring {
		if pointInRing(p, y.ring) {
			return 0
		}
	}
	for _, p := range y.ring {
		if pointInRing(p, x.ring) {
			return 0
		}
	}
	best := math.Inf(1)
	x.edges(func(a, b r2.Point) bool {
		y.edges(func(c, d r2.Point) bool {
			if v := segSegDist(a, b, c, d); v < best {
				best = v
			}

			return best > 0
		})

		return best > 0
	})

	return best
}

// intersection returns the shared geometry of a and b. Void overlap is
// the Empty geometry, never an error.
func intersection(a, b Geometry) (Geometry, error) {
	if _, empty := b.(Empty); empty {
		return Empty{}, nil
	}
	switch x := a.(type) {
	case Empty:
		return Empty{}, nil
	case Point:
		d, err := distance(x, b)
		if err != nil {
			return nil, err
		}
		if d <= epsAbs {
			return x, nil
		}

		return Empty{}, nil
	case LineString:
		switch y := b.(type) {
		case Empty:
			return Empty{}, nil
		case Point:
			return intersection(y, x)
		case LineString:
			return lineLineIntersection(x, y), nil
		case MultiLineString:
			return multiIntersection(y, x)
		case Polygon:
			return linePolyIntersection(x, y), nil
		}
	case MultiLineString:
		return multiIntersection(x, b)
	case Polygon:
		switch y := b.(type) {
		case Empty:
			return Empty{}, nil
		case Point:
			return intersection(y, x)
		case LineString:
			return linePolyIntersection(y, x), nil
		case MultiLineString:
			return multiIntersection(y, x)
		case Polygon:
			return polyPolyIntersection(x, y), nil
		}
	}

	return nil, ErrUnsupportedGeometry
}

// multiIntersection folds intersection over a collection's parts and
// reassembles the lineal pieces.
func multiIntersection(m MultiLineString, b Geometry) (Geometry, error) {
	var parts []LineString
	var point *Point
	for _, part := range m.parts {
		g, err := intersection(part, b)
		if err != nil {
			return nil, err
		}
		switch v := g.(type) {
		case LineString:
			parts = append(parts, v)
		case MultiLineString:
			parts = append(parts, v.parts...)
		case Point:
			point = &v
		}
	}
	switch {
	case len(parts) > 0:
		return MultiLineString{parts: parts}, nil
	case point != nil:
		return *point, nil
	default:
		return Empty{}, nil
	}
}

// lineLineIntersection returns the collinear overlap pieces of two
// polylines, a crossing point when they only meet pointwise, or Empty.
func lineLineIntersection(x, y LineString) Geometry {
	var parts []LineString
	var point *Point
	x.segments(func(a, b r2.Point) bool {
		y.segments(func(c, d r2.Point) bool {
			if p, q, ok := collinearOverlap(a, b, c, d); ok {
				parts = append(parts, LineString{pts: []r2.Point{p, q}})

				return true
			}
			if point == nil && segmentsIntersect(a, b, c, d) {
				pt := meetingPoint(a, b, c, d)
				point = &Point{c: pt}
			}

			return true
		})

		return true
	})
	switch {
	case len(parts) > 0:
		return MultiLineString{parts: parts}
	case point != nil:
		return *point
	default:
		return Empty{}
	}
}

// meetingPoint returns a shared point of two touching or crossing
// segments.
func meetingPoint(a, b, c, d r2.Point) r2.Point {
	if properCross(a, b, c, d) {
		return crossingPoint(a, b, c, d)
	}
	switch {
	case onSegment(c, d, a):
		return a
	case onSegment(c, d, b):
		return b
	case onSegment(a, b, c):
		return c
	default:
		return d
	}
}

// linePolyIntersection clips every segment of l against the convex
// ring and returns the inside pieces.
func linePolyIntersection(l LineString, poly Polygon) Geometry {
	var parts []LineString
	l.segments(func(a, b r2.Point) bool {
		p, q, ok := clipSegmentConvex(a, b, poly.ring)
		if ok && q.Sub(p).Norm() > epsAbs {
			parts = append(parts, LineString{pts: []r2.Point{p, q}})
		}

		return true
	})
	if len(parts) == 0 {
		return Empty{}
	}

	return MultiLineString{parts: parts}
}

// polyPolyIntersection clips x against the convex ring of y.
func polyPolyIntersection(x, y Polygon) Geometry {
	out := clipRingConvex(x.ring, y.ring)
	if len(out) < 3 || math.Abs(ringSignedArea(out)) <= epsAbs {
		return Empty{}
	}

	return Polygon{ring: out}
}

// relate evaluates a named predicate. Exact and conservative for the
// supported pairs; predicates outside a pair's dimension (e.g. two
// polygons crossing) are false per the dimensional predicate rules.
func relate(a Geometry, predicate string, b Geometry) (bool, error) {
	if !ValidPredicate(predicate) {
		return false, ErrBadPredicate
	}
	switch predicate {
	case "intersects":
		d, err := distance(a, b)
		if err != nil {
			return false, err
		}

		return d <= epsAbs, nil
	case "contains":
		return contains(a, b), nil
	case "within":
		return contains(b, a), nil
	case "crosses":
		return crosses(a, b)
	case "overlaps":
		return overlaps(a, b)
	default: // touches
		return touches(a, b)
	}
}

// contains reports whether a contains b. Exact for convex polygon
// operands; vertex containment is the decisive test.
func contains(a, b Geometry) bool {
	switch x := a.(type) {
	case Polygon:
		switch y := b.(type) {
		case Point:
			return pointInRing(y.c, x.ring)
		case LineString:
			for _, p := range y.pts {
				if !pointInRing(p, x.ring) {
					return false
				}
			}

			return true
		case MultiLineString:
			for _, part := range y.parts {
				if !contains(x, part) {
					return false
				}
			}

			return len(y.parts) > 0
		case Polygon:
			for _, p := range y.ring {
				if !pointInRing(p, x.ring) {
					return false
				}
			}

			return true
		}
	case LineString:
		if y, ok := b.(Point); ok {
			return pointLineDist(y.c, x) <= epsAbs
		}
	case Point:
		if y, ok := b.(Point); ok {
			return x.c.Sub(y.c).Norm() <= epsAbs
		}
	}

	return false
}

// crosses reports the dimensional crossing predicate: lines crossing
// pointwise in their interiors, or a line passing in and out of a
// polygon.
func crosses(a, b Geometry) (bool, error) {
	switch x := a.(type) {
	case LineString:
		switch y := b.(type) {
		case LineString:
			found := false
			x.segments(func(p, q r2.Point) bool {
				y.segments(func(r, s r2.Point) bool {
					if properCross(p, q, r, s) {
						found = true
					}

					return !found
				})

				return !found
			})

			return found, nil
		case Polygon:
			return lineCrossesPoly(x, y)
		}
	case Polygon:
		if y, ok := b.(LineString); ok {
			return lineCrossesPoly(y, x)
		}
	}

	return false, nil
}

// lineCrossesPoly reports whether part of l lies inside poly and part
// outside.
func lineCrossesPoly(l LineString, poly Polygon) (bool, error) {
	g := linePolyIntersection(l, poly)
	inside := g.Length()

	return inside > epsAbs && inside < l.Length()-epsAbs, nil
}

// overlaps reports same-dimension partial overlap: positive shared
// measure with neither side containing the other.
func overlaps(a, b Geometry) (bool, error) {
	if a.Type().Areal() != b.Type().Areal() || a.Type().Lineal() != b.Type().Lineal() {
		return false, nil
	}
	g, err := intersection(a, b)
	if err != nil {
		return false, err
	}
	var shared float64
	if a.Type().Areal() {
		shared = g.Area()
	} else {
		shared = g.Length()
	}

	return shared > epsAbs && !contains(a, b) && !contains(b, a), nil
}

// touches reports boundary-only contact: zero distance with disjoint
// interiors.
func touches(a, b Geometry) (bool, error) {
	d, err := distance(a, b)
	if err != nil {
		return false, err
	}
	if d > epsAbs {
		return false, nil
	}
	// Points have no boundary: a point touches only when it sits on the
	// other geometry's boundary, never when inside it.
	if x, ok := a.(Point); ok {
		return pointTouches(x, b), nil
	}
	if y, ok := b.(Point); ok {
		return pointTouches(y, a), nil
	}
	g, err := intersection(a, b)
	if err != nil {
		return false, err
	}
	if a.Type().Areal() && b.Type().Areal() {
		return g.Area() <= epsAbs, nil
	}
	if a.Type().Lineal() && b.Type().Lineal() {
		if cr, err := crosses(a, b); err != nil || cr {
			return false, err
		}

		return g.Length() <= epsAbs, nil
	}
	// Mixed dimensions: contact without interior penetration.
	return g.Length() <= epsAbs && g.Area() <= epsAbs, nil
}

// pointTouches reports whether p sits on the boundary of g.
func pointTouches(p Point, g Geometry) bool {
	switch y := g.(type) {
	case Polygon:
		return pointInRing(p.c, y.ring) && !pointStrictlyInRing(p.c, y.ring)
	case LineString:
		first, last := y.pts[0], y.pts[len(y.pts)-1]

		return p.c.Sub(first).Norm() <= epsAbs || p.c.Sub(last).Norm() <= epsAbs
	case MultiLineString:
		for _, part := range y.parts {
			if pointTouches(p, part) {
				return true
			}
		}
	}

	return false
}
