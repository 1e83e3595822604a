// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by constructors and operations.
// This file contains ONLY the read-only Matrix interface and the Shape value.
// Errors live in errors.go; the concrete storage lives in dense.go.
package matrix

import "fmt"

// Shape is the (rows, cols) pair describing a matrix's dimensions.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Square reports whether Rows == Cols.
func (s Shape) Square() bool { return s.Rows == s.Cols }

// Matrix is a read-only view of a rectangular grid of float64 values.
//
// The interface deliberately has no setters: every operation in this package
// returns a freshly allocated result and never writes into its operands.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// shapeOf reads the shape of any Matrix.
func shapeOf(m Matrix) Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }
