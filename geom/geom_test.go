package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spindex/envelope"
	"github.com/katalvlaran/spindex/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line builds a LineString, failing the test on error.
func line(t *testing.T, coords ...[2]float64) geom.LineString {
	t.Helper()
	l, err := geom.NewLineString(coords)
	require.NoError(t, err)

	return l
}

// poly builds a Polygon, failing the test on error.
func poly(t *testing.T, coords ...[2]float64) geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon(coords)
	require.NoError(t, err)

	return p
}

// unitSquare is the polygon (0,0)-(1,0)-(1,1)-(0,1).
func unitSquare(t *testing.T) geom.Polygon {
	return poly(t, [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1})
}

// TestConstruction_Validation verifies malformed input sentinels.
func TestConstruction_Validation(t *testing.T) {
	_, err := geom.NewLineString([][2]float64{{0, 0}})
	assert.ErrorIs(t, err, geom.ErrBadGeometry, "one-point line must error")

	_, err = geom.NewPolygon([][2]float64{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, geom.ErrBadGeometry, "two-point ring must error")

	_, err = geom.NewPolygon([][2]float64{{0, 0}, {1, 1}, {2, 2}})
	assert.ErrorIs(t, err, geom.ErrBadGeometry, "collinear ring must error")
}

// TestBounds verifies bounding rectangles.
func TestBounds(t *testing.T) {
	p := geom.NewPoint(2, 3)
	assert.Equal(t, envelope.Rect{MinX: 2, MinY: 3, MaxX: 2, MaxY: 3}, p.Bounds())

	l := line(t, [2]float64{0, 5}, [2]float64{-1, 2}, [2]float64{4, 3})
	assert.Equal(t, envelope.Rect{MinX: -1, MinY: 2, MaxX: 4, MaxY: 5}, l.Bounds())

	sq := unitSquare(t)
	assert.Equal(t, envelope.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, sq.Bounds())
}

// TestMeasures verifies length, perimeter and area.
func TestMeasures(t *testing.T) {
	l := line(t, [2]float64{0, 0}, [2]float64{3, 4})
	assert.InDelta(t, 5.0, l.Length(), 1e-12)
	assert.Equal(t, 0.0, l.Area())

	sq := unitSquare(t)
	assert.InDelta(t, 1.0, sq.Area(), 1e-12)
	assert.InDelta(t, 4.0, sq.Length(), 1e-12)
}

// TestDistance_PointPairs verifies point distances against hand values.
func TestDistance_PointPairs(t *testing.T) {
	a := geom.NewPoint(0, 0)
	b := geom.NewPoint(3, 4)

	d, err := a.Distance(b)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)
}

// TestDistance_PointLine verifies projection distance.
func TestDistance_PointLine(t *testing.T) {
	l := line(t, [2]float64{0, 0}, [2]float64{10, 0})

	d, err := geom.NewPoint(5, 2).Distance(l)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-12)

	// Beyond the segment end the nearest point is the endpoint.
	d, err = geom.NewPoint(13, 4).Distance(l)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)
}

// TestDistance_PointPolygon verifies inside-zero and outside-edge cases.
func TestDistance_PointPolygon(t *testing.T) {
	sq := unitSquare(t)

	d, err := geom.NewPoint(0.5, 0.5).Distance(sq)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "interior point has distance 0")

	d, err = geom.NewPoint(1, 0.5).Distance(sq)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "boundary point has distance 0")

	d, err = geom.NewPoint(3, 0.5).Distance(sq)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-12)
}

// TestDistance_LineLine verifies crossing, touching and separated lines.
func TestDistance_LineLine(t *testing.T) {
	a := line(t, [2]float64{0, 0}, [2]float64{2, 2})
	cross := line(t, [2]float64{0, 2}, [2]float64{2, 0})
	apart := line(t, [2]float64{5, 0}, [2]float64{6, 0})

	d, err := a.Distance(cross)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "crossing lines have distance 0")

	d, err = a.Distance(apart)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(13), d, 1e-9, "endpoint (2,2) to endpoint (5,0)")
}

// TestDistance_Symmetry verifies distance(a,b) == distance(b,a) across
// type pairs.
func TestDistance_Symmetry(t *testing.T) {
	shapes := []geom.Geometry{
		geom.NewPoint(7, 7),
		line(t, [2]float64{0, 0}, [2]float64{1, 1}),
		unitSquare(t),
	}
	for i, a := range shapes {
		for j, b := range shapes {
			dab, err := a.Distance(b)
			require.NoError(t, err)
			dba, err := b.Distance(a)
			require.NoError(t, err)
			assert.InDelta(t, dab, dba, 1e-12, "pair (%d,%d)", i, j)
		}
	}
}

// TestIntersection_PolyPoly verifies clipped area on overlapping squares.
func TestIntersection_PolyPoly(t *testing.T) {
	sq := unitSquare(t)
	shifted := poly(t, [2]float64{0.5, 0.5}, [2]float64{1.5, 0.5}, [2]float64{1.5, 1.5}, [2]float64{0.5, 1.5})

	g, err := sq.Intersection(shifted)
	require.NoError(t, err)
	assert.Equal(t, geom.TypePolygon, g.Type())
	assert.InDelta(t, 0.25, g.Area(), 1e-12)

	// Disjoint squares intersect in the empty geometry.
	far := poly(t, [2]float64{5, 5}, [2]float64{6, 5}, [2]float64{6, 6}, [2]float64{5, 6})
	g, err = sq.Intersection(far)
	require.NoError(t, err)
	assert.Equal(t, geom.TypeEmpty, g.Type())
	assert.Equal(t, 0.0, g.Area())
}

// TestIntersection_LinePoly verifies clipped length of a line through a
// polygon.
func TestIntersection_LinePoly(t *testing.T) {
	sq := unitSquare(t)
	l := line(t, [2]float64{-1, 0.5}, [2]float64{2, 0.5})

	g, err := l.Intersection(sq)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, g.Length(), 1e-9, "the chord inside the unit square")

	// Both orders agree.
	g2, err := sq.Intersection(l)
	require.NoError(t, err)
	assert.InDelta(t, g.Length(), g2.Length(), 1e-12)
}

// TestIntersection_LineLine verifies collinear overlap length and the
// zero-length crossing point.
func TestIntersection_LineLine(t *testing.T) {
	a := line(t, [2]float64{0, 0}, [2]float64{4, 0})
	b := line(t, [2]float64{1, 0}, [2]float64{6, 0})

	g, err := a.Intersection(b)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, g.Length(), 1e-9, "collinear overlap [1,4]")

	c := line(t, [2]float64{2, -1}, [2]float64{2, 1})
	g, err = a.Intersection(c)
	require.NoError(t, err)
	assert.Equal(t, geom.TypePoint, g.Type())
	assert.Equal(t, 0.0, g.Length())
}

// TestIntersection_Point verifies point intersections.
func TestIntersection_Point(t *testing.T) {
	sq := unitSquare(t)

	g, err := geom.NewPoint(0.5, 0.5).Intersection(sq)
	require.NoError(t, err)
	assert.Equal(t, geom.TypePoint, g.Type())

	g, err = geom.NewPoint(9, 9).Intersection(sq)
	require.NoError(t, err)
	assert.Equal(t, geom.TypeEmpty, g.Type())
}

// TestRelate_Vocabulary verifies predicate name validation.
func TestRelate_Vocabulary(t *testing.T) {
	sq := unitSquare(t)

	_, err := sq.Relate("borders", geom.NewPoint(0, 0))
	assert.ErrorIs(t, err, geom.ErrBadPredicate)
}

// TestRelate_ContainsWithin verifies containment both ways.
func TestRelate_ContainsWithin(t *testing.T) {
	big := poly(t, [2]float64{0, 0}, [2]float64{4, 0}, [2]float64{4, 4}, [2]float64{0, 4})
	small := unitSquare(t)

	ok, err := big.Relate("contains", small)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = small.Relate("within", big)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = small.Relate("contains", big)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = big.Relate("contains", geom.NewPoint(2, 2))
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestRelate_OverlapsTouchesCrosses verifies the remaining predicates
// on canonical configurations.
func TestRelate_OverlapsTouchesCrosses(t *testing.T) {
	sq := unitSquare(t)
	shifted := poly(t, [2]float64{0.5, 0}, [2]float64{1.5, 0}, [2]float64{1.5, 1}, [2]float64{0.5, 1})
	adjacent := poly(t, [2]float64{1, 0}, [2]float64{2, 0}, [2]float64{2, 1}, [2]float64{1, 1})

	ok, err := sq.Relate("overlaps", shifted)
	require.NoError(t, err)
	assert.True(t, ok, "half-shifted squares overlap")

	ok, err = sq.Relate("touches", adjacent)
	require.NoError(t, err)
	assert.True(t, ok, "edge-adjacent squares touch")

	ok, err = sq.Relate("overlaps", adjacent)
	require.NoError(t, err)
	assert.False(t, ok, "touching squares do not overlap")

	a := line(t, [2]float64{0, 0}, [2]float64{2, 2})
	b := line(t, [2]float64{0, 2}, [2]float64{2, 0})
	ok, err = a.Relate("crosses", b)
	require.NoError(t, err)
	assert.True(t, ok, "diagonals cross")

	chord := line(t, [2]float64{-1, 0.5}, [2]float64{2, 0.5})
	ok, err = chord.Relate("crosses", sq)
	require.NoError(t, err)
	assert.True(t, ok, "a chord entering and leaving crosses the polygon")
}

// TestRelate_IntersectsMatchesDistance verifies intersects ⇔ zero
// distance across shape pairs.
func TestRelate_IntersectsMatchesDistance(t *testing.T) {
	sq := unitSquare(t)
	shapes := []geom.Geometry{
		geom.NewPoint(0.5, 0.5),
		geom.NewPoint(5, 5),
		line(t, [2]float64{-1, 0.5}, [2]float64{2, 0.5}),
		line(t, [2]float64{10, 10}, [2]float64{11, 11}),
	}
	for i, s := range shapes {
		ok, err := s.Relate("intersects", sq)
		require.NoError(t, err)
		d, err := s.Distance(sq)
		require.NoError(t, err)
		assert.Equal(t, d < 1e-9, ok, "shape %d: intersects must mirror zero distance", i)
	}
}

// TestMultiLineString verifies collection measures and distances.
func TestMultiLineString(t *testing.T) {
	m := geom.NewMultiLineString([]geom.LineString{
		line(t, [2]float64{0, 0}, [2]float64{1, 0}),
		line(t, [2]float64{0, 2}, [2]float64{2, 2}),
	})
	assert.InDelta(t, 3.0, m.Length(), 1e-12)
	assert.Equal(t, geom.TypeMultiLineString, m.Type())
	assert.True(t, m.Type().Lineal())
	assert.False(t, m.Type().Areal())

	d, err := m.Distance(geom.NewPoint(0, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12)
}

// TestLinePolyDistance_Separated verifies the positive-distance branch.
func TestLinePolyDistance_Separated(t *testing.T) {
	sq := unitSquare(t)
	l := line(t, [2]float64{3, 0}, [2]float64{3, 1})

	d, err := l.Distance(sq)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-12)

	// A line fully inside has distance 0.
	inside := line(t, [2]float64{0.2, 0.2}, [2]float64{0.8, 0.8})
	d, err = inside.Distance(sq)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestEmptyGeometry verifies Empty semantics.
func TestEmptyGeometry(t *testing.T) {
	e := geom.Empty{}
	assert.Equal(t, geom.TypeEmpty, e.Type())
	assert.Equal(t, 0.0, e.Length())
	assert.Equal(t, 0.0, e.Area())

	_, err := e.Distance(geom.NewPoint(0, 0))
	assert.ErrorIs(t, err, geom.ErrUnsupportedGeometry)

	ok, err := e.Relate("intersects", geom.NewPoint(0, 0))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, math.Signbit(e.Area()))
}
