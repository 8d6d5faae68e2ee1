package envelope_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spindex/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRect_Validation verifies bound ordering validation.
func TestNewRect_Validation(t *testing.T) {
	_, err := envelope.NewRect(1, 0, 0, 1)
	assert.ErrorIs(t, err, envelope.ErrBadBounds)

	r, err := envelope.NewRect(0, 0, 0, 0)
	require.NoError(t, err, "degenerate point rectangle is legal")
	x, y := r.Center()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

// TestRectOf verifies bounding-rectangle extraction through the
// Bounder seam.
func TestRectOf(t *testing.T) {
	want := envelope.Rect{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}
	assert.Equal(t, want, envelope.RectOf(boundedBox{r: want}))
}

// TestMergeRects verifies the scalar union.
func TestMergeRects(t *testing.T) {
	a, _ := envelope.NewRect(0, 0, 1, 1)
	b, _ := envelope.NewRect(-2, 3, 0, 5)

	m, err := envelope.MergeRects([]envelope.Rect{a, b})
	require.NoError(t, err)
	assert.Equal(t, envelope.Rect{MinX: -2, MinY: 0, MaxX: 1, MaxY: 5}, m)

	_, err = envelope.MergeRects(nil)
	assert.ErrorIs(t, err, envelope.ErrEmptyBatch)
}

// TestRect_ScalarMirrorsBatch verifies that the scalar ops agree with
// the batch ops on the same pairs.
func TestRect_ScalarMirrorsBatch(t *testing.T) {
	a, _ := envelope.NewRect(0, 0, 1, 1)
	cases := []envelope.Rect{
		{MinX: 0.5, MinY: 0.5, MaxX: 2, MaxY: 2},
		{MinX: 1, MinY: 0, MaxX: 2, MaxY: 1},
		{MinX: 3, MinY: 4, MaxX: 5, MaxY: 6},
	}

	av, err := envelope.FromRects([]envelope.Rect{a}, envelope.DefaultOptions())
	require.NoError(t, err)
	bv, err := envelope.FromRects(cases, envelope.DefaultOptions())
	require.NoError(t, err)

	hits, err := av.Intersects(bv)
	require.NoError(t, err)
	lb, ub, err := av.BoundDist(bv)
	require.NoError(t, err)

	for i, c := range cases {
		assert.Equal(t, hits[i], a.Intersects(c), "case %d intersects", i)
		assert.InDelta(t, lb[i], a.MinDist(c), 1e-12, "case %d mindist", i)
		assert.InDelta(t, ub[i], a.MaxMinDist(c), 1e-12, "case %d maxmindist", i)
	}
}

// TestRect_Contains verifies inclusive containment.
func TestRect_Contains(t *testing.T) {
	outer, _ := envelope.NewRect(0, 0, 4, 4)
	inner, _ := envelope.NewRect(1, 1, 2, 2)
	edge, _ := envelope.NewRect(0, 0, 4, 4)

	assert.True(t, outer.Contains(inner))
	assert.True(t, outer.Contains(edge), "containment is inclusive")
	assert.False(t, inner.Contains(outer))
}

// TestSphere_Bounds verifies sphere construction and pairwise bounds.
func TestSphere_Bounds(t *testing.T) {
	s, err := envelope.NewSphere([][2]float64{{0, 0}, {2, 0}}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.X, 1e-9)
	assert.InDelta(t, 0.0, s.Y, 1e-9)
	assert.InDelta(t, 1.0, s.R, 1e-5, "radius 1 plus the tiny construction buffer")

	o, err := envelope.NewSphere([][2]float64{{10, 0}}, 0)
	require.NoError(t, err)

	assert.False(t, s.Intersects(o))
	// Centers 9 apart, radii ~1 and ~0: MinDist ≈ 8.
	assert.InDelta(t, 9.0, s.MinDist(o)+s.R+o.R, 1e-9)
	assert.InDelta(t, math.Sqrt(81+(s.R+o.R)*(s.R+o.R)), s.MaxDist(o), 1e-9)
	assert.LessOrEqual(t, s.MinDist(o), s.MaxDist(o))

	// Overlapping spheres: strict intersection, MinDist 0.
	p, err := envelope.NewSphere([][2]float64{{0.5, 0}}, 0)
	require.NoError(t, err)
	assert.True(t, s.Intersects(p))
	assert.Equal(t, 0.0, s.MinDist(p))
}

// TestSphere_EmptyInput verifies input validation surfaces the
// enclosing-circle sentinel.
func TestSphere_EmptyInput(t *testing.T) {
	_, err := envelope.NewSphere(nil, 0)
	assert.Error(t, err)
}
