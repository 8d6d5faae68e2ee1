// Package geom: planar segment and ring primitives shared by the
// built-in kernel types. Everything here operates on r2 points.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// epsAbs is the absolute tolerance for orientation and containment
// decisions.
const epsAbs = 1e-9

// orient returns twice the signed area of triangle (a, b, c):
// positive when c lies left of a→b.
func orient(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment reports whether c lies on segment ab (inclusive).
func onSegment(a, b, c r2.Point) bool {
	if math.Abs(orient(a, b, c)) > epsAbs {
		return false
	}

	return math.Min(a.X, b.X)-epsAbs <= c.X && c.X <= math.Max(a.X, b.X)+epsAbs &&
		math.Min(a.Y, b.Y)-epsAbs <= c.Y && c.Y <= math.Max(a.Y, b.Y)+epsAbs
}

// segmentsIntersect reports whether segments ab and cd share any point
// (touching included).
func segmentsIntersect(a, b, c, d r2.Point) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	return onSegment(c, d, a) || onSegment(c, d, b) ||
		onSegment(a, b, c) || onSegment(a, b, d)
}

// properCross reports whether segments ab and cd cross in both
// interiors (a shared endpoint or collinear touch does not count).
func properCross(a, b, c, d r2.Point) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)

	return ((d1 > epsAbs && d2 < -epsAbs) || (d1 < -epsAbs && d2 > epsAbs)) &&
		((d3 > epsAbs && d4 < -epsAbs) || (d3 < -epsAbs && d4 > epsAbs))
}

// crossingPoint returns the intersection point of properly crossing
// segments ab and cd.
func crossingPoint(a, b, c, d r2.Point) r2.Point {
	ab := b.Sub(a)
	cd := d.Sub(c)
	t := c.Sub(a).Cross(cd) / ab.Cross(cd)

	return a.Add(ab.Mul(t))
}

// pointSegDist returns the distance from p to segment ab.
func pointSegDist(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return p.Sub(a).Norm()
	}
	t := p.Sub(a).Dot(ab) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.Sub(a.Add(ab.Mul(t))).Norm()
}

// segSegDist returns the distance between segments ab and cd, 0 when
// they share a point.
func segSegDist(a, b, c, d r2.Point) float64 {
	if segmentsIntersect(a, b, c, d) {
		return 0
	}
	dist := pointSegDist(a, c, d)
	if v := pointSegDist(b, c, d); v < dist {
		dist = v
	}
	if v := pointSegDist(c, a, b); v < dist {
		dist = v
	}
	if v := pointSegDist(d, a, b); v < dist {
		dist = v
	}

	return dist
}

// ringSignedArea returns the shoelace signed area of ring (positive
// for counter-clockwise winding).
func ringSignedArea(ring []r2.Point) float64 {
	sum := 0.0
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		sum += p.Cross(q)
	}

	return sum / 2
}

// pointInRing reports whether p lies inside or on the boundary of ring.
func pointInRing(p r2.Point, ring []r2.Point) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		if onSegment(ring[i], ring[(i+1)%n], p) {
			return true
		}
	}
	in := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
	}

	return in
}

// pointStrictlyInRing reports whether p lies strictly inside ring.
func pointStrictlyInRing(p r2.Point, ring []r2.Point) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		if onSegment(ring[i], ring[(i+1)%n], p) {
			return false
		}
	}

	return pointInRing(p, ring)
}

// clipRingConvex clips subject against the convex counter-clockwise
// ring clip (Sutherland–Hodgman). The result may be empty.
func clipRingConvex(subject, clip []r2.Point) []r2.Point {
	out := append([]r2.Point(nil), subject...)
	n := len(clip)
	for i := 0; i < n && len(out) > 0; i++ {
		u, v := clip[i], clip[(i+1)%n]
		in := out
		out = make([]r2.Point, 0, len(in)+4)
		for j, cur := range in {
			prev := in[(j+len(in)-1)%len(in)]
			curIn := orient(u, v, cur) >= -epsAbs
			prevIn := orient(u, v, prev) >= -epsAbs
			if curIn {
				if !prevIn {
					out = append(out, lineEdgeIntersection(prev, cur, u, v))
				}
				out = append(out, cur)
			} else if prevIn {
				out = append(out, lineEdgeIntersection(prev, cur, u, v))
			}
		}
	}

	return out
}

// lineEdgeIntersection returns the point where segment ab meets the
// infinite line through uv.
func lineEdgeIntersection(a, b, u, v r2.Point) r2.Point {
	ab := b.Sub(a)
	uv := v.Sub(u)
	t := u.Sub(a).Cross(uv) / ab.Cross(uv)

	return a.Add(ab.Mul(t))
}

// clipSegmentConvex clips segment ab against the convex
// counter-clockwise ring (Cyrus–Beck). ok is false when nothing of the
// segment lies inside.
func clipSegmentConvex(a, b r2.Point, ring []r2.Point) (p, q r2.Point, ok bool) {
	d := b.Sub(a)
	tmin, tmax := 0.0, 1.0
	n := len(ring)
	for i := 0; i < n; i++ {
		u, v := ring[i], ring[(i+1)%n]
		e := v.Sub(u)
		s0 := e.Cross(a.Sub(u)) // ≥ 0 means a is inside this edge
		sd := e.Cross(d)
		if math.Abs(sd) <= epsAbs {
			if s0 < -epsAbs {
				return r2.Point{}, r2.Point{}, false
			}

			continue
		}
		t := -s0 / sd
		if sd > 0 {
			if t > tmin {
				tmin = t
			}
		} else {
			if t < tmax {
				tmax = t
			}
		}
		if tmin > tmax {
			return r2.Point{}, r2.Point{}, false
		}
	}

	return a.Add(d.Mul(tmin)), a.Add(d.Mul(tmax)), true
}

// collinearOverlap returns the shared sub-segment of collinear
// segments ab and cd; ok is false when they are not collinear or only
// meet in a point.
func collinearOverlap(a, b, c, d r2.Point) (p, q r2.Point, ok bool) {
	if math.Abs(orient(a, b, c)) > epsAbs || math.Abs(orient(a, b, d)) > epsAbs {
		return r2.Point{}, r2.Point{}, false
	}
	dir := b.Sub(a)
	den := dir.Dot(dir)
	if den == 0 {
		return r2.Point{}, r2.Point{}, false
	}
	tc := c.Sub(a).Dot(dir) / den
	td := d.Sub(a).Dot(dir) / den
	lo, hi := math.Max(0, math.Min(tc, td)), math.Min(1, math.Max(tc, td))
	if hi-lo <= epsAbs {
		return r2.Point{}, r2.Point{}, false
	}

	return a.Add(dir.Mul(lo)), a.Add(dir.Mul(hi)), true
}
