// Package ragged implements the IntMatrix masked ragged integer matrix.
// IntMatrix is a concrete, row-major structure storing cells in a flat
// slice for cache friendliness, with a parallel mask for absent cells.
package ragged

import "fmt"

// IntMatrix is a row-major matrix of int cells with a boolean mask.
// rows and cols fix the storage rectangle; data holds rows*cols cells
// and mask holds true for every cell that carries no value.
type IntMatrix struct {
	rows, cols int
	data       []int  // flat backing storage, length == rows*cols
	mask       []bool // parallel to data; true = masked (empty) cell
}

// matrixErrorf wraps an underlying error with IntMatrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("IntMatrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates a rows×cols IntMatrix with every cell masked.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing and mask slices.
// Stage 3 (Finalize): fill sentinels, return new matrix or ErrBadShape.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*IntMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([]int, rows*cols)
	mask := make([]bool, rows*cols)
	for i := range data {
		data[i] = Masked
		mask[i] = true
	}

	return &IntMatrix{rows: rows, cols: cols, data: data, mask: mask}, nil
}

// FromRows builds a matrix from ragged input rows, right-padding each
// row with masked cells up to the widest row.
// Stage 1 (Validate): at least one row; empty rows are permitted.
// Stage 2 (Prepare): allocate rows×maxWidth storage, all masked.
// Stage 3 (Execute): copy each input row into its prefix, unmasking.
// Complexity: O(rows×maxWidth) time and memory.
func FromRows(in [][]int) (*IntMatrix, error) {
	if len(in) == 0 {
		return nil, ErrBadShape
	}
	width := 0
	for _, row := range in {
		if len(row) > width {
			width = len(row)
		}
	}
	// An all-empty input still needs one storage column.
	if width == 0 {
		width = 1
	}
	m, err := New(len(in), width)
	if err != nil {
		return nil, err
	}
	var r, c int
	for r = 0; r < len(in); r++ {
		for c = 0; c < len(in[r]); c++ {
			m.data[r*width+c] = in[r][c]
			m.mask[r*width+c] = false
		}
	}

	return m, nil
}

// Identity returns the n×1 matrix whose rows are [0..n), fully unmasked.
// This is the leaf-level children table: leaf i maps to object i.
// Complexity: O(n).
func Identity(n int) (*IntMatrix, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	m := &IntMatrix{
		rows: n,
		cols: 1,
		data: make([]int, n),
		mask: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		m.data[i] = i
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *IntMatrix) Rows() int { return m.rows }

// Cols returns the storage width in cells. Complexity: O(1).
func (m *IntMatrix) Cols() int { return m.cols }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *IntMatrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.cols {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At retrieves the cell at (row, col) together with its mask state.
// masked == true means the cell carries no value and v is the sentinel.
// Complexity: O(1).
func (m *IntMatrix) At(row, col int) (v int, masked bool, err error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, true, err
	}

	return m.data[idx], m.mask[idx], nil
}

// Set stores v at (row, col) and unmasks the cell.
// Complexity: O(1).
func (m *IntMatrix) Set(row, col, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	m.mask[idx] = false

	return nil
}

// MaskedAt reports whether the cell at (row, col) is masked.
// Complexity: O(1).
func (m *IntMatrix) MaskedAt(row, col int) (bool, error) {
	idx, err := m.indexOf("MaskedAt", row, col)
	if err != nil {
		return true, err
	}

	return m.mask[idx], nil
}

// CountRow returns the number of unmasked cells in row r.
// Complexity: O(cols).
func (m *IntMatrix) CountRow(r int) (int, error) {
	if r < 0 || r >= m.rows {
		return 0, matrixErrorf("CountRow", r, 0, ErrOutOfRange)
	}
	n := 0
	for c := 0; c < m.cols; c++ {
		if !m.mask[r*m.cols+c] {
			n++
		}
	}

	return n, nil
}

// Row compresses row r: the unmasked cells of the row, in storage order.
// The returned slice is freshly allocated and safe to retain.
// Complexity: O(cols).
func (m *IntMatrix) Row(r int) ([]int, error) {
	if r < 0 || r >= m.rows {
		return nil, matrixErrorf("Row", r, 0, ErrOutOfRange)
	}
	out := make([]int, 0, m.cols)
	for c := 0; c < m.cols; c++ {
		if !m.mask[r*m.cols+c] {
			out = append(out, m.data[r*m.cols+c])
		}
	}

	return out, nil
}

// AppendRow appends the unmasked cells of row r to dst and returns the
// extended slice. Allocation-free when dst has capacity; the search
// engine uses this to gather child frontiers without temporaries.
// Complexity: O(cols).
func (m *IntMatrix) AppendRow(dst []int, r int) ([]int, error) {
	if r < 0 || r >= m.rows {
		return dst, matrixErrorf("AppendRow", r, 0, ErrOutOfRange)
	}
	for c := 0; c < m.cols; c++ {
		if !m.mask[r*m.cols+c] {
			dst = append(dst, m.data[r*m.cols+c])
		}
	}

	return dst, nil
}

// Compressed flattens every unmasked cell in row-major order.
// Complexity: O(rows×cols).
func (m *IntMatrix) Compressed() []int {
	out := make([]int, 0, len(m.data))
	for i, v := range m.data {
		if !m.mask[i] {
			out = append(out, v)
		}
	}

	return out
}

// Count returns the total number of unmasked cells.
// Complexity: O(rows×cols).
func (m *IntMatrix) Count() int {
	n := 0
	for _, masked := range m.mask {
		if !masked {
			n++
		}
	}

	return n
}

// Gather returns a new matrix consisting of the given rows of m, in
// the given order. Row indices may repeat.
// Complexity: O(len(rows)×cols).
func (m *IntMatrix) Gather(rows []int) (*IntMatrix, error) {
	if len(rows) == 0 {
		return nil, ErrBadShape
	}
	out := &IntMatrix{
		rows: len(rows),
		cols: m.cols,
		data: make([]int, len(rows)*m.cols),
		mask: make([]bool, len(rows)*m.cols),
	}
	for i, r := range rows {
		if r < 0 || r >= m.rows {
			return nil, matrixErrorf("Gather", r, 0, ErrOutOfRange)
		}
		copy(out.data[i*m.cols:(i+1)*m.cols], m.data[r*m.cols:(r+1)*m.cols])
		copy(out.mask[i*m.cols:(i+1)*m.cols], m.mask[r*m.cols:(r+1)*m.cols])
	}

	return out, nil
}

// Concat stacks blocks vertically, right-padding narrower blocks with
// masked cells so the result width is the widest block width.
// Stage 1 (Validate): non-empty, non-nil blocks.
// Stage 2 (Prepare): total rows and maximum width.
// Stage 3 (Execute): copy each block's rows into the result.
// Complexity: O(total cells) time and memory.
func Concat(blocks []*IntMatrix) (*IntMatrix, error) {
	if len(blocks) == 0 {
		return nil, ErrBadShape
	}
	rows, width := 0, 0
	for _, b := range blocks {
		if b == nil {
			return nil, ErrNilMatrix
		}
		rows += b.rows
		if b.cols > width {
			width = b.cols
		}
	}
	out := &IntMatrix{
		rows: rows,
		cols: width,
		data: make([]int, rows*width),
		mask: make([]bool, rows*width),
	}
	for i := range out.data {
		out.data[i] = Masked
		out.mask[i] = true
	}
	cursor := 0
	for _, b := range blocks {
		for r := 0; r < b.rows; r++ {
			copy(out.data[cursor*width:cursor*width+b.cols], b.data[r*b.cols:(r+1)*b.cols])
			copy(out.mask[cursor*width:cursor*width+b.cols], b.mask[r*b.cols:(r+1)*b.cols])
			cursor++
		}
	}

	return out, nil
}
