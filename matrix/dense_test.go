// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols, nil)
			require.NoError(t, err)
			require.Equal(t, matrix.Shape{Rows: tc.rows, Cols: tc.cols}, m.Shape())
			m.Do(func(i, j int, v float64) bool {
				require.Zerof(t, v, "element [%d,%d]", i, j)
				return true
			})
		})
	}
}

func TestNewDense_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		data       []float64
		want       error
	}{
		{"zero rows", 0, 2, nil, matrix.ErrInvalidDimensions},
		{"negative cols", 2, -1, nil, matrix.ErrInvalidDimensions},
		{"short data", 2, 2, []float64{1, 2, 3}, matrix.ErrShapeMismatch},
		{"nan", 1, 2, []float64{1, math.NaN()}, matrix.ErrInvalidInput},
		{"inf", 1, 2, []float64{math.Inf(-1), 0}, matrix.ErrInvalidInput},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.NewDense(tc.rows, tc.cols, tc.data)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewDense_CopiesCallerData(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	m := MustFilled(t, 2, 2, data)
	data[0] = 99

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewFromRows(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidInput)
}

func TestNewIdentity(t *testing.T) {
	I := MustIdentity(t, 3)
	RequireRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	_, err := matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAt_OutOfRange(t *testing.T) {
	t.Parallel()

	m := MustFilled(t, 2, 3, nil)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.Contains(t, err.Error(), fmt.Sprintf("Dense.At(%d,%d)", ij[0], ij[1]))
	}
}

func TestRow_ReturnsCopy(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = -1
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestToRows_ReturnsCopy(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	rows := m.ToRows()
	rows[0][0] = 42

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestDo_EarlyStop(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 2
	})
	require.Equal(t, []float64{1, 2}, seen)
}

func TestString(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2.5}, {-3, 4}})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "2x3", matrix.Shape{Rows: 2, Cols: 3}.String())
	assert.True(t, matrix.Shape{Rows: 4, Cols: 4}.Square())
	assert.False(t, matrix.Shape{Rows: 4, Cols: 1}.Square())
}
