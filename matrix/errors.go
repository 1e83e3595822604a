// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and typed detail errors.
//
// All exported operations return these sentinels (possibly wrapped with an
// operation tag) and callers MUST match them via errors.Is. Typed errors
// (*CellError, *ShapeError) carry positions and shapes for diagnostics and
// unwrap to their sentinel, so errors.Is keeps working through them.
// No exported function panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with matrixErrorf(opTag, err),
// producing "<Op>: <cause>" while preserving the sentinel for errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// dimensions -> nil operand -> cell input -> shape compatibility.

var (
	// ErrInvalidDimensions is returned when a requested shape is non-positive
	// (rows <= 0 or cols <= 0). Checked before any cell is read.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrInvalidInput signals a cell that is missing, fails to parse as a
	// number, or parses to NaN/±Inf.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add/Sub of
	// different shapes, or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At returns this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// CellError reports the cell that stopped construction from text.
// Row and Col are zero-based; Text is the raw (untrimmed) cell content,
// empty when the cell is missing altogether.
type CellError struct {
	Row, Col int
	Text     string
	Reason   string
}

// Error implements error.
func (e *CellError) Error() string {
	return fmt.Sprintf("%s at cell (%d,%d) %q: %s", ErrInvalidInput, e.Row, e.Col, e.Text, e.Reason)
}

// Unwrap exposes ErrInvalidInput to errors.Is.
func (e *CellError) Unwrap() error { return ErrInvalidInput }

// ShapeError reports the operand shapes of a failed binary operation.
// Dim names the mismatched dimension ("rows", "cols" or "inner").
type ShapeError struct {
	Op   string
	A, B Shape
	Dim  string
}

// Error implements error.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s %s vs %s (%s)", ErrShapeMismatch, e.Op, e.A, e.B, e.Dim)
}

// Unwrap exposes ErrShapeMismatch to errors.Is.
func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }
