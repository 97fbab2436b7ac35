// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Keep Dense a value: no exported mutators, every kernel allocates its result.
//   - Adopt caller grids by deep copy so later edits to the grid never leak in.
//
// Complexity quicksheet:
//   - New: O(r*c) validate + copy; NewDense: O(r*c) zero-init; At: O(1); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxRow = "Row"
	ctxCol = "Col"
	ctxNew = "New"
)

// ---------- Formatting literals ----------

const (
	_fmtCell     = "%g"
	_fmtCellSep  = " "
	_fmtRowClose = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete, immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1 for any instance built by
//     the public constructors.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New adopts a rectangular grid of reals as a Dense matrix.
// MAIN DESCRIPTION:
//   - Height = len(grid), width = len(grid[0]); the grid is deep-copied so the
//     caller may keep mutating its slices without affecting the matrix.
//
// Implementation:
//   - Stage 1: resolve options (numeric policy).
//   - Stage 2: ValidateGrid (non-empty, rectangular, finite when policy ON).
//   - Stage 3: copy rows into one flat buffer.
//
// Errors:
//   - ErrInvalidDimensions (empty grid or empty first row).
//   - ErrRaggedGrid        (rows of different lengths; is ErrDimensionMismatch).
//   - ErrNaNInf            (non-finite entry while the policy is ON).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(grid [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateGrid(grid, o.validateNaNInf); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}

	rows, cols := len(grid), len(grid[0])
	buf := make([]float64, 0, rows*cols)
	for _, row := range grid {
		buf = append(buf, row...) // row-major flatten; copies values
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and examples where the grid is known to be valid.
func MustNew(grid [][]float64, opts ...Option) *Dense {
	m, err := New(grid, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count (the height). No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (the width). No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange when j is outside [0, Cols()).
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j] // stride c down the column
	}

	return out, nil
}

// Grid returns the rows as a freshly allocated [][]float64.
// Mutating the result never affects m.
func (m *Dense) Grid() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders each row as its values, each followed by one space, and
// terminates the row with a newline: [[1,2],[3,4]] → "1 2 \n3 4 \n".
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf(_fmtCell, m.data[base+j]))
			b.WriteString(_fmtCellSep)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. No allocations; read-only.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
