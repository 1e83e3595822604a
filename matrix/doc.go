// Package matrix is a small dense linear-algebra core for real-valued matrices.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major matrix of finite float64 values, and the
//     read-only Matrix interface it implements.
//   - Build, which turns a grid of user-entered text cells into a Dense,
//     reporting the first offending cell.
//   - Add, Sub, Mul and Transpose, each returning a fresh Dense.
//   - Det, backed by Decompose (LU with partial pivoting).
//   - AllClose/Equal comparisons and gonum interop (ToGonum, FromGonum).
//
// Errors are sentinel values (ErrInvalidDimensions, ErrInvalidInput,
// ErrShapeMismatch, ErrNotSquare, ErrNilMatrix, ErrOutOfRange) matched with
// errors.Is; *CellError and *ShapeError carry positions and shapes.
//
// Every operation is synchronous and pure: operands are never mutated, so a
// Dense may be shared freely between goroutines.
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	d, _ := matrix.Det(a) // -2
package matrix
