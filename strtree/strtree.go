// Package strtree implements the Sort-Tile-Recurse bulk packer.
package strtree

import (
	"math"
	"sort"

	"github.com/katalvlaran/spindex/bvh"
	"github.com/katalvlaran/spindex/envelope"
	"github.com/katalvlaran/spindex/ragged"
)

// Build packs the envelope batch into a balanced hierarchy.
// Stage 1 (Validate): options and batch.
// Stage 2 (Prepare): leaves form the bottom level, children the
// identity mapping into the original objects.
// Stage 3 (Execute): while the current top is wider than MaxTopSize,
// tile its centers and merge each tile into a parent envelope.
// Stage 4 (Finalize): reverse both level lists (top first) into a Tree.
// Complexity: O(N log N × D) time, O(N) memory per level.
func Build(ev *envelope.Vect, opts Options) (*bvh.Tree, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, ErrNilBatch
	}
	if ev.Len() == 0 {
		return bvh.Empty(), nil
	}

	identity, err := ragged.Identity(ev.Len())
	if err != nil {
		return nil, err
	}
	envel := []*envelope.Vect{ev}
	children := []*ragged.IntMatrix{identity}

	for envel[len(envel)-1].Len() > opts.MaxTopSize {
		top := envel[len(envel)-1]
		tiles, err := sortTile(top.Centers(), top.Len(), top.NDims(), opts.PageSize)
		if err != nil {
			return nil, err
		}
		merged, err := top.MergeBy(tiles)
		if err != nil {
			return nil, err
		}
		children = append(children, tiles)
		envel = append(envel, merged)
	}

	// Top level first.
	levels := len(envel)
	renv := make([]*envelope.Vect, levels)
	rch := make([]*ragged.IntMatrix, levels)
	for i := 0; i < levels; i++ {
		renv[i] = envel[levels-1-i]
		rch[i] = children[levels-1-i]
	}

	return bvh.New(renv, rch)
}

// tileShape returns the tile count along the next coordinate and the
// resulting tile width for nobs observations in ndims dimensions:
// nbTiles = ⌈(nobs/F)^(1/ndims)⌉, width = ⌈nobs/nbTiles⌉.
func tileShape(nobs, ndims, pageSize int) (nbTiles, width int) {
	nbTiles = int(math.Ceil(math.Pow(float64(nobs)/float64(pageSize), 1/float64(ndims))))
	if nbTiles < 1 {
		nbTiles = 1
	}
	width = (nobs + nbTiles - 1) / nbTiles

	return nbTiles, width
}

// sortTileOne sorts positions [0..n) by xs and splits the permutation
// into nbTiles contiguous groups: the first n%nbTiles groups get one
// extra member. Equal coordinates keep original index order.
// Complexity: O(n log n).
func sortTileOne(xs []float64, nbTiles int) (*ragged.IntMatrix, error) {
	n := len(xs)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return xs[perm[a]] < xs[perm[b]] })

	q, r := n/nbTiles, n%nbTiles
	rows := make([][]int, 0, nbTiles)
	cursor := 0
	for g := 0; g < nbTiles; g++ {
		size := q
		if g < r {
			size++
		}
		rows = append(rows, perm[cursor:cursor+size])
		cursor += size
	}

	return ragged.FromRows(rows)
}

// sortTile recursively tiles n points of dims coordinates, stored flat
// row-major in coords. The result rows hold positions in [0..n),
// every position exactly once.
// Stage 1: tile along coordinate 0.
// Stage 2: for every tile, recurse on the remaining coordinates and
// re-index the recursive rows through the tile's membership.
// Stage 3: stack the per-tile results with masking.
// Complexity: O(n log n × dims).
func sortTile(coords []float64, n, dims, pageSize int) (*ragged.IntMatrix, error) {
	nbTiles, _ := tileShape(n, dims, pageSize)

	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = coords[i*dims]
	}
	splits, err := sortTileOne(xs, nbTiles)
	if err != nil {
		return nil, err
	}
	if dims == 1 {
		return splits, nil
	}

	blocks := make([]*ragged.IntMatrix, 0, splits.Rows())
	for g := 0; g < splits.Rows(); g++ {
		group, err := splits.Row(g)
		if err != nil {
			return nil, err
		}
		// Remaining coordinates of this tile's members, in tile order.
		sub := make([]float64, len(group)*(dims-1))
		for i, m := range group {
			copy(sub[i*(dims-1):(i+1)*(dims-1)], coords[m*dims+1:(m+1)*dims])
		}
		rec, err := sortTile(sub, len(group), dims-1, pageSize)
		if err != nil {
			return nil, err
		}
		// Recursive rows index tile-local positions; map them back to
		// the caller's positions.
		rows := make([][]int, rec.Rows())
		for rr := 0; rr < rec.Rows(); rr++ {
			local, err := rec.Row(rr)
			if err != nil {
				return nil, err
			}
			mapped := make([]int, len(local))
			for i, v := range local {
				mapped[i] = group[v]
			}
			rows[rr] = mapped
		}
		block, err := ragged.FromRows(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return ragged.Concat(blocks)
}
