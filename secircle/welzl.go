// Package secircle implements the move-to-front incremental build of
// the smallest enclosing circle over disks.
package secircle

import "math"

// Make returns a circle enclosing every input disk.
// Stage 1 (Validate): non-empty input, no negative radii.
// Stage 2 (Prepare): copy and shuffle deterministically from seed.
// Stage 3 (Execute): incremental insertion; whenever a disk falls
// outside the current circle it must lie on the boundary of the
// minimal circle of the prefix, so the build restarts with that disk
// pinned (then with two pinned, via circumscription).
// Complexity: expected O(n) time after the shuffle.
func Make(disks []Circle, seed int64) (Circle, error) {
	if len(disks) == 0 {
		return Circle{}, ErrNoDisks
	}
	for _, d := range disks {
		if d.R < 0 {
			return Circle{}, ErrNegativeRadius
		}
	}
	shuffled := append([]Circle(nil), disks...)
	rng := rngFromSeed(seed)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// Progressively add disks, restarting when one falls outside.
	var have bool
	var circle Circle
	for i, d := range shuffled {
		if !have || !circle.Contains(d) {
			circle = makeOneBoundary(shuffled[:i+1], d)
			have = true
		}
	}

	return circle, nil
}

// makeOneBoundary builds the enclosing circle of disks with pinned
// known to lie on the boundary.
func makeOneBoundary(disks []Circle, pinned Circle) Circle {
	circle := pinned
	for i, d := range disks {
		if circle.Contains(d) {
			continue
		}
		if circle.R == pinned.R && circle.X == pinned.X && circle.Y == pinned.Y {
			circle = makeDiameter(pinned, d)
		} else {
			circle = makeTwoBoundary(disks[:i+1], pinned, d)
		}
	}

	return circle
}

// makeTwoBoundary builds the enclosing circle of disks with p and q
// pinned on the boundary, keeping the smaller of the left/right
// circumscribed candidates that still covers everything.
func makeTwoBoundary(disks []Circle, p, q Circle) Circle {
	circ := makeDiameter(p, q)
	var left, right Circle
	var haveLeft, haveRight bool

	px, py := p.X, p.Y
	dx, dy := q.X-p.X, q.Y-p.Y
	for _, d := range disks {
		if circ.Contains(d) {
			continue
		}
		// Classify the candidate circumcircle on the left or right of pq.
		side := cross(px, py, q.X, q.Y, d.X, d.Y)
		c, ok := circumscribe(p, q, d)
		if !ok {
			continue
		}
		cs := cross(px, py, px+dx, py+dy, c.X, c.Y)
		switch {
		case side > 0 && (!haveLeft || cs > cross(px, py, px+dx, py+dy, left.X, left.Y)):
			left, haveLeft = c, true
		case side < 0 && (!haveRight || cs < cross(px, py, px+dx, py+dy, right.X, right.Y)):
			right, haveRight = c, true
		}
	}

	switch {
	case !haveLeft && !haveRight:
		return circ
	case !haveLeft:
		return right
	case !haveRight:
		return left
	case left.R <= right.R:
		return left
	default:
		return right
	}
}

// makeDiameter returns the circle spanning the far sides of two disks:
// its diameter is the segment through both centers extended by each
// radius.
func makeDiameter(a, b Circle) Circle {
	// One disk swallowing the other degenerates to the larger disk.
	if a.Contains(b) {
		return a
	}
	if b.Contains(a) {
		return b
	}
	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	r := 0.5 * (dist + a.R + b.R)
	if dist == 0 {
		// Concentric: the larger disk wins.
		if a.R >= b.R {
			return Circle{X: a.X, Y: a.Y, R: a.R}
		}

		return Circle{X: b.X, Y: b.Y, R: b.R}
	}
	// Center sits along ab, offset so both far sides are covered.
	t := (r - a.R) / dist

	return Circle{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		R: r,
	}
}

// circumscribe returns a circle through the far sides of three disks:
// the circumcenter of the three centers, radius grown to cover each
// disk. Degenerate (collinear) centers yield ok == false.
// The relative-midpoint shift keeps the determinant numerically stable.
func circumscribe(a, b, c Circle) (Circle, bool) {
	ox := (math.Min(a.X, math.Min(b.X, c.X)) + math.Max(a.X, math.Max(b.X, c.X))) / 2
	oy := (math.Min(a.Y, math.Min(b.Y, c.Y)) + math.Max(a.Y, math.Max(b.Y, c.Y))) / 2
	ax, ay := a.X-ox, a.Y-oy
	bx, by := b.X-ox, b.Y-oy
	cx, cy := c.X-ox, c.Y-oy
	d := (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by)) * 2
	if d == 0 {
		return Circle{}, false
	}
	x := ox + ((ax*ax+ay*ay)*(by-cy)+(bx*bx+by*by)*(cy-ay)+(cx*cx+cy*cy)*(ay-by))/d
	y := oy + ((ax*ax+ay*ay)*(cx-bx)+(bx*bx+by*by)*(ax-cx)+(cx*cx+cy*cy)*(bx-ax))/d

	r := math.Hypot(x-a.X, y-a.Y) + a.R
	if rb := math.Hypot(x-b.X, y-b.Y) + b.R; rb > r {
		r = rb
	}
	if rc := math.Hypot(x-c.X, y-c.Y) + c.R; rc > r {
		r = rc
	}

	return Circle{X: x, Y: y, R: r}, true
}

// cross returns twice the signed area of the triangle (x0,y0),(x1,y1),(x2,y2).
func cross(x0, y0, x1, y1, x2, y2 float64) float64 {
	return (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
}
