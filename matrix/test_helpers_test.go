// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from nested rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustFilled builds an r×c *Dense from a row-major slice or fails the test.
func MustFilled(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// RandomDense returns an r×c matrix with deterministic U(-1,1) values by seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustFilled(t, r, c, vals)
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireRows asserts exact contents of m against nested rows.
func RequireRows(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, want, m.ToRows())
}

// RequireClose asserts AllClose(got, want) for the given tolerance.
func RequireClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, tol, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant\n%v\ngot\n%v", tol, want, got)
}
