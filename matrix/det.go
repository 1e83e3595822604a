// SPDX-License-Identifier: MIT

// Package matrix - LU factorisation with partial pivoting and determinant.
//
// The factorisation is PA = LU (Doolittle form: unit lower L, upper U), with
// the row permutation kept as a pivot vector and its parity as a sign.
// Det always goes through this path: O(n³), and the largest-magnitude pivot
// bounds every multiplier by 1 in absolute value.
//
// Tolerance: for well-conditioned inputs Det agrees with the exact value to a
// relative error of order n·ε (ε = 2⁻⁵²). Identity matrices give exactly 1.
// A matrix with two identical rows gives exactly 0: once one of the rows is
// chosen as pivot the other is eliminated with multiplier 1, which cancels
// exactly. Ill-conditioned inputs lose digits in proportion to their
// condition number; no bit-exact parity with other libraries is promised.

package matrix

// LU holds a PA = LU factorisation of a square matrix.
type LU struct {
	n        int
	lu       []float64 // strict lower part: L multipliers; upper incl. diagonal: U
	piv      []int     // piv[i] = original row placed at row i
	sign     float64   // +1 or -1, parity of the row swaps
	singular bool      // an exactly zero pivot column was met
}

// Decompose factors a square matrix with partial pivoting.
// Implementation:
//   - Stage 1: ValidateSquareNonNil; copy the operand into a working buffer.
//   - Stage 2: for each column k pick the row p ≥ k with the largest |a[p,k]|
//     (first one on ties), swap rows k and p, flip the sign.
//   - Stage 3: eliminate below the pivot, storing multipliers in place.
//
// Behavior highlights:
//   - An all-zero pivot column marks the factorisation singular; elimination
//     skips that column instead of dividing by zero.
//   - The operand is never written to.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare (with the actual shape).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Decompose(m Matrix) (*LU, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	f := &LU{
		n:    n,
		lu:   make([]float64, n*n),
		piv:  make([]int, n),
		sign: 1,
	}
	if d, ok := m.(*Dense); ok {
		copy(f.lu, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opLU, err)
				}
				f.lu[i*n+j] = v
			}
		}
	}
	for i := range f.piv {
		f.piv[i] = i
	}

	a := f.lu
	var (
		i, j, k, p     int
		maxAbs, absVal float64
		pivot, factor  float64
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest |a[i,k]| for i ≥ k.
		p, maxAbs = k, abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if absVal = abs(a[i*n+k]); absVal > maxAbs {
				p, maxAbs = i, absVal
			}
		}
		if maxAbs == 0 {
			f.singular = true
			continue
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
			f.sign = -f.sign
		}

		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = a[i*n+k] / pivot
			a[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= factor * a[k*n+j]
			}
		}
	}

	return f, nil
}

// L returns the unit lower-triangular factor.
func (f *LU) L() *Dense {
	n := f.n
	out := newDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			out.data[i*n+j] = f.lu[i*n+j]
		}
		out.data[i*n+i] = 1
	}

	return out
}

// U returns the upper-triangular factor.
func (f *LU) U() *Dense {
	n := f.n
	out := newDense(n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.data[i*n+j] = f.lu[i*n+j]
		}
	}

	return out
}

// Pivot returns a copy of the row permutation: row i of PA is row Pivot()[i] of A.
func (f *LU) Pivot() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// Sign is the parity of the row permutation (+1 or -1).
func (f *LU) Sign() float64 { return f.sign }

// Singular reports whether an exactly zero pivot column was found.
func (f *LU) Singular() bool { return f.singular }

// Det returns sign · Π U[i,i]; exactly 0 for singular factorisations.
func (f *LU) Det() float64 {
	if f.singular {
		return 0
	}
	det := f.sign
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// Det computes the determinant of a square matrix.
// A 1×1 matrix yields its single entry; larger inputs go through Decompose.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare (the error text carries the actual shape).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if m.Rows() == 1 {
		v, err := m.At(0, 0)
		if err != nil {
			return 0, matrixErrorf(opDet, err)
		}
		return v, nil
	}

	f, err := Decompose(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
