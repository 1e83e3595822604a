// SPDX-License-Identifier: MIT

package form

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// ParseGrid splits free text into grid cells. Rows end at ';' or a newline,
// cells are separated by whitespace or commas. Empty rows are skipped. Cell
// text is not validated here; matrix.Build does that on Apply.
//
//	ParseGrid("1 2; 3 4")    // [["1" "2"] ["3" "4"]]
//	ParseGrid("1,2\n3,4")    // same
func ParseGrid(text string) ([][]string, error) {
	rowTexts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == '\n'
	})

	cells := make([][]string, 0, len(rowTexts))
	for _, rt := range rowTexts {
		row := strings.FieldsFunc(rt, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(row) == 0 {
			continue
		}
		cells = append(cells, row)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("ParseGrid: %w: no cells", matrix.ErrInvalidDimensions)
	}
	if err := checkRectangular(cells); err != nil {
		return nil, fmt.Errorf("ParseGrid: %w", err)
	}

	return cells, nil
}

func checkRectangular(cells [][]string) error {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return matrix.ErrInvalidDimensions
	}
	want := len(cells[0])
	for i, row := range cells {
		if len(row) != want {
			return fmt.Errorf("%w: row %d has %d cells, want %d", matrix.ErrInvalidInput, i, len(row), want)
		}
	}
	return nil
}
