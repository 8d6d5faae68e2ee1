package envelope_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spindex/envelope"
)

// randomVect builds an n-envelope 2-D batch with centers in [0,100)².
func randomVect(b *testing.B, n int, seed int64) *envelope.Vect {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	bounds := make([][4]float64, n)
	for i := range bounds {
		x, y := rng.Float64()*100, rng.Float64()*100
		bounds[i] = [4]float64{x, y, x + rng.Float64()*2, y + rng.Float64()*2}
	}
	v, err := envelope.FromBounds(bounds, envelope.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}

	return v
}

func BenchmarkIntersects_256x256(b *testing.B) {
	x := randomVect(b, 256, 1)
	y := randomVect(b, 256, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Intersects(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBoundDist_256x256(b *testing.B) {
	x := randomVect(b, 256, 3)
	y := randomVect(b, 256, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := x.BoundDist(y); err != nil {
			b.Fatal(err)
		}
	}
}
