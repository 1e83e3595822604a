// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/square checks here.
//  - Return sentinel errors (or typed errors unwrapping to them) so call sites
//    can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface counts as nil too.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape checks a and b have identical dimensions.
// Assumes both are non-nil. Returns *ShapeError (ErrShapeMismatch) naming
// the first mismatched dimension.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return &ShapeError{Op: "ValidateSameShape", A: shapeOf(a), B: shapeOf(b), Dim: "rows"}
	}
	if a.Cols() != b.Cols() {
		return &ShapeError{Op: "ValidateSameShape", A: shapeOf(a), B: shapeOf(b), Dim: "cols"}
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil. The error names the actual shape.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%s: %w", shapeOf(m), ErrNotSquare))
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// The *ShapeError reports both shapes and Dim "inner".
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return &ShapeError{Op: "ValidateMulCompatible", A: shapeOf(a), B: shapeOf(b), Dim: "inner"}
	}

	return nil
}
