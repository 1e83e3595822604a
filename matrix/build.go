// SPDX-License-Identifier: MIT

// Package matrix - construction from user-entered text cells.
//
// Build is the entry point used by input forms: the caller declares the shape
// it intends and passes the raw text of every cell. Validation order is fixed:
// dimensions first (no cell is read when the shape is invalid), then cells in
// row-major order, then surplus text beyond the declared shape.

package matrix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const opBuild = "Build"

// Reasons attached to CellError.
const (
	reasonMissing   = "missing cell"
	reasonNotNumber = "not a number"
	reasonNotFinite = "not a finite number"
	reasonSurplus   = "outside declared shape"
)

// Build parses a grid of text cells into an immutable rows×cols matrix.
//
// Implementation:
//   - Stage 1: rows<=0 || cols<=0 → ErrInvalidDimensions (cells untouched).
//   - Stage 2: for i→j, trim and strconv.ParseFloat each cell.
//   - Stage 3: reject any non-empty text beyond the declared shape.
//
// Behavior highlights:
//   - The first offending cell stops construction; the returned error is a
//     *CellError (wrapped with the "Build" tag) naming its position.
//   - Hex, exponent and underscore-free decimal syntaxes accepted by
//     strconv.ParseFloat are valid; "NaN", "Inf" and overflowing literals are not.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidInput (via *CellError).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Build(cells [][]string, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opBuild, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	m := newDense(rows, cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if i >= len(cells) || j >= len(cells[i]) {
				return nil, matrixErrorf(opBuild, &CellError{Row: i, Col: j, Reason: reasonMissing})
			}
			v, err = parseCell(cells[i][j])
			if err != nil {
				return nil, matrixErrorf(opBuild, &CellError{Row: i, Col: j, Text: cells[i][j], Reason: err.Error()})
			}
			m.data[i*cols+j] = v
		}
	}

	if i, j, ok := surplusCell(cells, rows, cols); ok {
		return nil, matrixErrorf(opBuild, &CellError{Row: i, Col: j, Text: cells[i][j], Reason: reasonSurplus})
	}

	return m, nil
}

// parseCell converts one trimmed cell into a finite float64.
func parseCell(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, errors.New(reasonNotNumber)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat reports overflow as ErrRange with ±Inf; both are non-finite.
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return 0, errors.New(reasonNotFinite)
		}
		return 0, errors.New(reasonNotNumber)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(reasonNotFinite)
	}

	return v, nil
}

// surplusCell finds the first non-blank cell outside rows×cols.
// Blank trailing cells are tolerated so that grids padded by a UI still build.
func surplusCell(cells [][]string, rows, cols int) (int, int, bool) {
	for i := range cells {
		for j := range cells[i] {
			if i < rows && j < cols {
				continue
			}
			if strings.TrimSpace(cells[i][j]) != "" {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}
