// Package envelope implements the columnar Vect batch of AAMBRs and
// its pairwise algebra. Bounds live in two flat row-major arrays for
// cache friendliness; every pairwise operation fills a flat row-major
// (M,K) result plane.
package envelope

import (
	"math"

	"github.com/katalvlaran/spindex/ragged"
)

// Vect is an ordered batch of n axis-aligned rectangles in dims
// dimensions. mins and maxs are flat row-major n×dims arrays:
// envelope i occupies cells [i*dims, (i+1)*dims).
type Vect struct {
	mins, maxs []float64
	n, dims    int
}

// New constructs a Vect from flat row-major min and max arrays.
// Stage 1 (Validate): options, equal lengths, divisibility by dims,
// and mins ≤ maxs per cell.
// Stage 2 (Prepare): copy both arrays, applying the buffer.
// Stage 3 (Finalize): return the batch; n == 0 is legal (empty batch).
// Complexity: O(n×dims) time and memory.
func New(mins, maxs []float64, dims int, opts Options) (*Vect, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if dims <= 0 || len(mins) != len(maxs) || len(mins)%dims != 0 {
		return nil, ErrBadShape
	}
	for i := range mins {
		if mins[i] > maxs[i] {
			return nil, ErrBadBounds
		}
	}
	lo := make([]float64, len(mins))
	hi := make([]float64, len(maxs))
	for i := range mins {
		lo[i] = mins[i] - opts.Buffer
		hi[i] = maxs[i] + opts.Buffer
	}

	return &Vect{mins: lo, maxs: hi, n: len(mins) / dims, dims: dims}, nil
}

// FromBounds constructs a 2-D Vect from (minx, miny, maxx, maxy) rows.
// Complexity: O(n).
func FromBounds(bounds [][4]float64, opts Options) (*Vect, error) {
	mins := make([]float64, 0, 2*len(bounds))
	maxs := make([]float64, 0, 2*len(bounds))
	for _, b := range bounds {
		mins = append(mins, b[0], b[1])
		maxs = append(maxs, b[2], b[3])
	}

	return New(mins, maxs, 2, opts)
}

// Bounder is any value exposing its axis-aligned bounding rectangle.
// Geometry kernels satisfy it, so geometry collections convert to
// envelope batches without this package knowing about shapes.
type Bounder interface {
	Bounds() Rect
}

// FromGeoms constructs a 2-D Vect from the bounds of a geometry
// collection. The type parameter admits concrete kernel types as well
// as interface-typed collections.
// Complexity: O(n).
func FromGeoms[G Bounder](geoms []G, opts Options) (*Vect, error) {
	bounds := make([][4]float64, len(geoms))
	for i, g := range geoms {
		r := g.Bounds()
		bounds[i] = [4]float64{r.MinX, r.MinY, r.MaxX, r.MaxY}
	}

	return FromBounds(bounds, opts)
}

// FromRects constructs a 2-D Vect from scalar rectangles.
// Complexity: O(n).
func FromRects(rects []Rect, opts Options) (*Vect, error) {
	bounds := make([][4]float64, len(rects))
	for i, r := range rects {
		bounds[i] = [4]float64{r.MinX, r.MinY, r.MaxX, r.MaxY}
	}

	return FromBounds(bounds, opts)
}

// Len returns the number of envelopes in the batch. Complexity: O(1).
func (v *Vect) Len() int { return v.n }

// NDims returns the dimensionality of the batch. Complexity: O(1).
func (v *Vect) NDims() int { return v.dims }

// Bounds returns copies of envelope i's min and max coordinate rows.
// Complexity: O(dims).
func (v *Vect) Bounds(i int) (mins, maxs []float64, err error) {
	if i < 0 || i >= v.n {
		return nil, nil, ErrOutOfRange
	}
	mins = append([]float64(nil), v.mins[i*v.dims:(i+1)*v.dims]...)
	maxs = append([]float64(nil), v.maxs[i*v.dims:(i+1)*v.dims]...)

	return mins, maxs, nil
}

// Slice returns the sub-batch at the given positions, in the given
// order. Positions may repeat.
// Complexity: O(len(idx)×dims).
func (v *Vect) Slice(idx []int) (*Vect, error) {
	mins := make([]float64, len(idx)*v.dims)
	maxs := make([]float64, len(idx)*v.dims)
	for i, p := range idx {
		if p < 0 || p >= v.n {
			return nil, ErrOutOfRange
		}
		copy(mins[i*v.dims:(i+1)*v.dims], v.mins[p*v.dims:(p+1)*v.dims])
		copy(maxs[i*v.dims:(i+1)*v.dims], v.maxs[p*v.dims:(p+1)*v.dims])
	}

	return &Vect{mins: mins, maxs: maxs, n: len(idx), dims: v.dims}, nil
}

// Centers returns the flat row-major n×dims array of envelope centers.
// Complexity: O(n×dims).
func (v *Vect) Centers() []float64 {
	out := make([]float64, len(v.mins))
	for i := range v.mins {
		out[i] = 0.5 * (v.mins[i] + v.maxs[i])
	}

	return out
}

// compatible validates that o is a non-nil batch of the same dimension.
func (v *Vect) compatible(o *Vect) error {
	if o == nil {
		return ErrBadShape
	}
	if v.dims != o.dims {
		return ErrDimensionMismatch
	}

	return nil
}

// Intersects fills the (M,K) plane of strict envelope intersection:
// out[i*K+j] is true iff for every dimension d,
// v.mins[i,d] < o.maxs[j,d] AND v.maxs[i,d] > o.mins[j,d].
// Rectangles that only touch do not intersect under this test.
// Complexity: O(M×K×D) time, O(M×K) memory.
func (v *Vect) Intersects(o *Vect) ([]bool, error) {
	if err := v.compatible(o); err != nil {
		return nil, err
	}
	out := make([]bool, v.n*o.n)
	var i, j, d int
	for i = 0; i < v.n; i++ {
		vlo := v.mins[i*v.dims : (i+1)*v.dims]
		vhi := v.maxs[i*v.dims : (i+1)*v.dims]
		for j = 0; j < o.n; j++ {
			olo := o.mins[j*o.dims : (j+1)*o.dims]
			ohi := o.maxs[j*o.dims : (j+1)*o.dims]
			hit := true
			for d = 0; d < v.dims; d++ {
				if !(vlo[d] < ohi[d] && vhi[d] > olo[d]) {
					hit = false
					break
				}
			}
			out[i*o.n+j] = hit
		}
	}

	return out, nil
}

// Dist fills the (M,K) plane of MINDIST: the smallest Euclidean
// distance between any point of envelope i and any point of envelope j.
// Per dimension the gap is max(0, v.min-o.max, o.min-v.max); the result
// is the root of the squared gap sum, exactly 0 for overlapping pairs.
// Complexity: O(M×K×D) time, O(M×K) memory.
func (v *Vect) Dist(o *Vect) ([]float64, error) {
	if err := v.compatible(o); err != nil {
		return nil, err
	}
	out := make([]float64, v.n*o.n)
	var i, j, d int
	var gap, sq float64
	for i = 0; i < v.n; i++ {
		vlo := v.mins[i*v.dims : (i+1)*v.dims]
		vhi := v.maxs[i*v.dims : (i+1)*v.dims]
		for j = 0; j < o.n; j++ {
			olo := o.mins[j*o.dims : (j+1)*o.dims]
			ohi := o.maxs[j*o.dims : (j+1)*o.dims]
			sq = 0
			for d = 0; d < v.dims; d++ {
				gap = vlo[d] - ohi[d]
				if olo[d]-vhi[d] > gap {
					gap = olo[d] - vhi[d]
				}
				if gap > 0 {
					sq += gap * gap
				}
			}
			out[i*o.n+j] = math.Sqrt(sq)
		}
	}

	return out, nil
}

// MaxMinDist fills the (M,K) plane of MAXMINDIST: per dimension the
// far-side gap max(|v.min-o.max|, |v.max-o.min|), rooted over the
// squared sum. This is a tight upper bound on the distance from any
// point of envelope i to the far face of envelope j, and the pruning
// bound of k-nearest-neighbour search.
// Complexity: O(M×K×D) time, O(M×K) memory.
func (v *Vect) MaxMinDist(o *Vect) ([]float64, error) {
	if err := v.compatible(o); err != nil {
		return nil, err
	}
	out := make([]float64, v.n*o.n)
	var i, j, d int
	var far, sq float64
	for i = 0; i < v.n; i++ {
		vlo := v.mins[i*v.dims : (i+1)*v.dims]
		vhi := v.maxs[i*v.dims : (i+1)*v.dims]
		for j = 0; j < o.n; j++ {
			olo := o.mins[j*o.dims : (j+1)*o.dims]
			ohi := o.maxs[j*o.dims : (j+1)*o.dims]
			sq = 0
			for d = 0; d < v.dims; d++ {
				far = math.Abs(vlo[d] - ohi[d])
				if a := math.Abs(vhi[d] - olo[d]); a > far {
					far = a
				}
				sq += far * far
			}
			out[i*o.n+j] = math.Sqrt(sq)
		}
	}

	return out, nil
}

// BoundDist fills both the MINDIST and MAXMINDIST planes in a single
// pass over the per-dimension gaps, saving one full traversal compared
// to calling Dist and MaxMinDist separately.
// Complexity: O(M×K×D) time, O(M×K) memory per plane.
func (v *Vect) BoundDist(o *Vect) (lb, ub []float64, err error) {
	if err = v.compatible(o); err != nil {
		return nil, nil, err
	}
	lb = make([]float64, v.n*o.n)
	ub = make([]float64, v.n*o.n)
	var i, j, d int
	var gap, far, lsq, usq float64
	for i = 0; i < v.n; i++ {
		vlo := v.mins[i*v.dims : (i+1)*v.dims]
		vhi := v.maxs[i*v.dims : (i+1)*v.dims]
		for j = 0; j < o.n; j++ {
			olo := o.mins[j*o.dims : (j+1)*o.dims]
			ohi := o.maxs[j*o.dims : (j+1)*o.dims]
			lsq, usq = 0, 0
			for d = 0; d < v.dims; d++ {
				gap = vlo[d] - ohi[d]
				if olo[d]-vhi[d] > gap {
					gap = olo[d] - vhi[d]
				}
				if gap > 0 {
					lsq += gap * gap
				}
				far = math.Abs(vlo[d] - ohi[d])
				if a := math.Abs(vhi[d] - olo[d]); a > far {
					far = a
				}
				usq += far * far
			}
			lb[i*o.n+j] = math.Sqrt(lsq)
			ub[i*o.n+j] = math.Sqrt(usq)
		}
	}

	return lb, ub, nil
}

// MergeBy unions groups of envelopes selected by the rows of a masked
// index matrix: result envelope g is the componentwise (min of mins,
// max of maxs) over the unmasked children of row g. This is the step
// that builds one tree level's envelopes from the level below.
// Returns ErrEmptyBatch if any row selects no children, ErrOutOfRange
// if an index falls outside the batch.
// Complexity: O(rows×cols×dims) time, O(rows×dims) memory.
func (v *Vect) MergeBy(idx *ragged.IntMatrix) (*Vect, error) {
	if idx == nil {
		return nil, ErrBadShape
	}
	rows := idx.Rows()
	mins := make([]float64, rows*v.dims)
	maxs := make([]float64, rows*v.dims)
	var g, d int
	for g = 0; g < rows; g++ {
		children, err := idx.Row(g)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, ErrEmptyBatch
		}
		glo := mins[g*v.dims : (g+1)*v.dims]
		ghi := maxs[g*v.dims : (g+1)*v.dims]
		for d = 0; d < v.dims; d++ {
			glo[d] = math.Inf(1)
			ghi[d] = math.Inf(-1)
		}
		for _, c := range children {
			if c < 0 || c >= v.n {
				return nil, ErrOutOfRange
			}
			clo := v.mins[c*v.dims : (c+1)*v.dims]
			chi := v.maxs[c*v.dims : (c+1)*v.dims]
			for d = 0; d < v.dims; d++ {
				if clo[d] < glo[d] {
					glo[d] = clo[d]
				}
				if chi[d] > ghi[d] {
					ghi[d] = chi[d]
				}
			}
		}
	}

	return &Vect{mins: mins, maxs: maxs, n: rows, dims: v.dims}, nil
}
