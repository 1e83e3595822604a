// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep values immutable: constructors copy caller data, no setters are exported.
//   - Enforce the numeric policy (finite values only) at construction time.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At: O(1); Row/ToRows: O(c)/O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"          // method tag used in error wrappers
	ctxRow      = "Row"         // method tag used in error wrappers
	ctxNewDense = "NewDense"    // ctor tag
	ctxFromRows = "NewFromRows" // ctor tag
	ctxIdentity = "NewIdentity" // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <cause>" and preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A *Dense is safe for concurrent reads; nothing in the package writes to it
// after the constructor or operation that produced it returns.
type Dense struct {
	r, c int       // row and column counts (>= 1)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// newDense allocates a zeroed r×c result buffer for package operations.
// Callers MUST have validated r,c > 0 (operands are valid matrices).
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewDense creates an r×c matrix from a row-major slice.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the finite-only policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: nil data means a zero matrix; otherwise len(data) must be rows*cols.
//   - Stage 3: copy data, rejecting NaN/±Inf with the offending coordinates.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - data: row-major values (copied; the caller keeps ownership), or nil.
//
// Errors:
//   - ErrInvalidDimensions, ErrShapeMismatch (length), ErrInvalidInput (NaN/Inf).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDense, rows, cols, ErrInvalidDimensions)
	}
	m := newDense(rows, cols)
	if data == nil {
		return m, nil
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): data length %d: %w", ctxNewDense, rows, cols, len(data), ErrShapeMismatch)
	}
	for idx, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf(ctxNewDense, idx/cols, idx%cols, ErrInvalidInput)
		}
	}
	copy(m.data, data)

	return m, nil
}

// NewFromRows builds a matrix from nested rows (copied).
// Every row must have the same, non-zero length.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrInvalidInput (ragged row or NaN/±Inf value).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := newDense(r, c)
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(rows[i]), c, ErrInvalidInput)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrInvalidInput)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxIdentity, n, ErrInvalidDimensions)
	}
	I := newDense(n, n)
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Dense) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the error carries the coordinates.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns the contents as freshly allocated nested rows.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
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

// String renders rows as lines with comma-separated %g values.
// Intended for logs and debugging; use a fixed-precision renderer for display.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
