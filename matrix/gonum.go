// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new gonum *mat.Dense.
func (m *Dense) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any gonum matrix into an immutable *Dense, applying the
// same finite-only policy as NewDense.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("FromGonum: %dx%d: %w", r, c, ErrInvalidDimensions)
	}
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = g.At(i, j)
		}
	}

	return NewDense(r, c, data)
}
