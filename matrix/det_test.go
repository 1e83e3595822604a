// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestDet_Scenario2x2(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	d, err := matrix.Det(A)
	require.NoError(t, err)
	require.InDelta(t, -2.0, d, 1e-12)
}

func TestDet_OneByOne(t *testing.T) {
	d, err := matrix.Det(MustRows(t, [][]float64{{-7.25}}))
	require.NoError(t, err)
	require.Equal(t, -7.25, d)
}

func TestDet_IdentityIsExactlyOne(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		d, err := matrix.Det(MustIdentity(t, n))
		require.NoError(t, err)
		require.Equal(t, 1.0, d, "n=%d", n)
	}
}

func TestDet_IdenticalRowsIsZero(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 5} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			rows := RandomDense(t, n, n, int64(n)).ToRows()
			rows[n-1] = append([]float64(nil), rows[0]...)

			d, err := matrix.Det(MustRows(t, rows))
			require.NoError(t, err)
			require.InDelta(t, 0.0, d, 1e-12)
		})
	}
}

func TestDet_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"upper triangular", [][]float64{{2, 1, 3}, {0, 4, 5}, {0, 0, -1}}, -8},
		{"needs pivot", [][]float64{{0, 1}, {1, 0}}, -1},
		{"zero column", [][]float64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}}, 0},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"4x4", [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := matrix.Det(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, d, 1e-9)

			// The generic path must agree.
			d2, err := matrix.Det(hide{MustRows(t, tc.rows)})
			require.NoError(t, err)
			require.Equal(t, d, d2)
		})
	}
}

func TestDet_NotSquare(t *testing.T) {
	_, err := matrix.Det(MustFilled(t, 2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	require.Contains(t, err.Error(), "2x3")

	_, err = matrix.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDet_TransposeInvariant(t *testing.T) {
	A := RandomDense(t, 6, 6, 99)
	T, err := matrix.Transpose(A)
	require.NoError(t, err)

	d1, err := matrix.Det(A)
	require.NoError(t, err)
	d2, err := matrix.Det(T)
	require.NoError(t, err)
	require.InDelta(t, d1, d2, 1e-12)
}

func TestDecompose_Reconstructs(t *testing.T) {
	t.Parallel()

	A := RandomDense(t, 5, 5, 2024)
	f, err := matrix.Decompose(A)
	require.NoError(t, err)
	require.False(t, f.Singular())

	LU, err := matrix.Mul(f.L(), f.U())
	require.NoError(t, err)

	// Row i of LU equals row Pivot()[i] of A.
	piv := f.Pivot()
	rows := A.ToRows()
	permuted := make([][]float64, len(piv))
	for i, p := range piv {
		permuted[i] = rows[p]
	}
	RequireClose(t, MustRows(t, permuted), LU, 1e-12)

	// L is unit lower, U is upper.
	L, U := f.L(), f.U()
	for i := 0; i < 5; i++ {
		require.Equal(t, 1.0, MustAt(t, L, i, i))
		for j := i + 1; j < 5; j++ {
			require.Zero(t, MustAt(t, L, i, j))
			require.Zero(t, MustAt(t, U, j, i))
		}
	}
}

func TestDecompose_SignTracksSwaps(t *testing.T) {
	f, err := matrix.Decompose(MustRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	require.Equal(t, -1.0, f.Sign())
	require.Equal(t, []int{1, 0}, f.Pivot())
	require.Equal(t, -1.0, f.Det())
}

func TestDecompose_Singular(t *testing.T) {
	f, err := matrix.Decompose(MustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	require.True(t, f.Singular())
	require.Equal(t, 0.0, f.Det())
}

func TestDecompose_DoesNotMutateOperand(t *testing.T) {
	A := MustRows(t, [][]float64{{0, 2}, {3, 4}})
	_, err := matrix.Decompose(A)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{0, 2}, {3, 4}}, A)
}
