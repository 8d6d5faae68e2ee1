package secircle_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spindex/secircle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pts builds radius-zero disks from coordinate pairs.
func pts(coords ...[2]float64) []secircle.Circle {
	out := make([]secircle.Circle, len(coords))
	for i, c := range coords {
		out[i] = secircle.Circle{X: c[0], Y: c[1]}
	}

	return out
}

// covers reports whether c encloses every disk within tolerance.
func covers(c secircle.Circle, disks []secircle.Circle, tol float64) bool {
	for _, d := range disks {
		if math.Hypot(d.X-c.X, d.Y-c.Y)+d.R > c.R+tol {
			return false
		}
	}

	return true
}

// TestMake_Validation verifies the input sentinels.
func TestMake_Validation(t *testing.T) {
	_, err := secircle.Make(nil, 0)
	assert.ErrorIs(t, err, secircle.ErrNoDisks, "empty input must error")

	_, err = secircle.Make([]secircle.Circle{{X: 0, Y: 0, R: -1}}, 0)
	assert.ErrorIs(t, err, secircle.ErrNegativeRadius, "negative radius must error")
}

// TestMake_SinglePoint verifies the degenerate one-point circle.
func TestMake_SinglePoint(t *testing.T) {
	c, err := secircle.Make(pts([2]float64{3, 4}), 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.X)
	assert.Equal(t, 4.0, c.Y)
	assert.Equal(t, 0.0, c.R)
}

// TestMake_TwoPoints verifies the diameter construction.
func TestMake_TwoPoints(t *testing.T) {
	c, err := secircle.Make(pts([2]float64{0, 0}, [2]float64{2, 0}), 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.X, 1e-12)
	assert.InDelta(t, 0.0, c.Y, 1e-12)
	assert.InDelta(t, 1.0, c.R, 1e-12)
}

// TestMake_EquilateralTriangle verifies the circumcircle construction:
// for an equilateral triangle of side s the radius is s/sqrt(3).
func TestMake_EquilateralTriangle(t *testing.T) {
	side := 2.0
	h := side * math.Sqrt(3) / 2
	disks := pts([2]float64{0, 0}, [2]float64{side, 0}, [2]float64{side / 2, h})

	c, err := secircle.Make(disks, 0)
	require.NoError(t, err)
	assert.InDelta(t, side/math.Sqrt(3), c.R, 1e-9)
	assert.True(t, covers(c, disks, 1e-9))
}

// TestMake_CollinearPoints verifies that collinear input degenerates to
// the diameter of the extreme pair.
func TestMake_CollinearPoints(t *testing.T) {
	disks := pts([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2}, [2]float64{3, 3})

	c, err := secircle.Make(disks, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, c.X, 1e-9)
	assert.InDelta(t, 1.5, c.Y, 1e-9)
	assert.InDelta(t, math.Hypot(1.5, 1.5), c.R, 1e-9)
}

// TestMake_CoversRandomClouds cross-checks random point clouds: the
// result always covers the input, and no single input point sits
// further than the radius.
func TestMake_CoversRandomClouds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		n := 3 + rng.Intn(40)
		disks := make([]secircle.Circle, n)
		for i := range disks {
			disks[i] = secircle.Circle{X: rng.Float64() * 100, Y: rng.Float64() * 100}
		}

		c, err := secircle.Make(disks, int64(trial)+1)
		require.NoError(t, err)
		assert.True(t, covers(c, disks, 1e-9), "trial %d: circle must cover all points", trial)
	}
}

// TestMake_Deterministic verifies that the same seed and input yield
// the identical circle.
func TestMake_Deterministic(t *testing.T) {
	disks := pts([2]float64{0, 0}, [2]float64{5, 1}, [2]float64{2, 7}, [2]float64{-3, 4})

	c1, err := secircle.Make(disks, 42)
	require.NoError(t, err)
	c2, err := secircle.Make(disks, 42)
	require.NoError(t, err)
	assert.Equal(t, c1, c2, "identical seed must reproduce the circle")
}

// TestMake_PositiveRadii verifies disk inputs: the circle must cover
// each disk's far side, and one disk containing everything wins.
func TestMake_PositiveRadii(t *testing.T) {
	disks := []secircle.Circle{
		{X: 0, Y: 0, R: 1},
		{X: 4, Y: 0, R: 1},
	}
	c, err := secircle.Make(disks, 0)
	require.NoError(t, err)
	assert.True(t, covers(c, disks, 1e-9))
	assert.InDelta(t, 3.0, c.R, 1e-9, "spanning circle radius is (dist+r1+r2)/2")

	big := []secircle.Circle{
		{X: 0, Y: 0, R: 10},
		{X: 1, Y: 1, R: 0.5},
	}
	c, err = secircle.Make(big, 0)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, c.R, 1e-9, "a disk containing the rest is its own cover")
}
