// SPDX-License-Identifier: MIT

// Package render prints a form.Result with a fixed number of decimals,
// either as a plain text grid or as JSON.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/matcalc/internal/form"
)

// DefaultPrecision is the number of decimals shown when none is configured.
const DefaultPrecision = 2

const cellSeparator = "  "

// ErrEmptyResult is returned for a matrix result without a matrix.
var ErrEmptyResult = errors.New("render: result has no value")

// Text writes one line per matrix row, cells separated by two spaces, or
// "Result: <value>" for a scalar.
//
//	6.00  8.00
//	10.00  12.00
func Text(w io.Writer, res form.Result, precision int) error {
	if res.IsScalar {
		_, err := fmt.Fprintf(w, "Result: %s\n", formatValue(res.Scalar, precision))
		return err
	}
	if res.Matrix == nil {
		return ErrEmptyResult
	}

	var sb strings.Builder
	for _, row := range formatCells(res, precision) {
		sb.WriteString(strings.Join(row, cellSeparator))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

type jsonResult struct {
	Op     string     `json:"op"`
	Rows   int        `json:"rows,omitempty"`
	Cols   int        `json:"cols,omitempty"`
	Cells  [][]string `json:"cells,omitempty"`
	Scalar string     `json:"scalar,omitempty"`
}

// JSON writes the result as a single JSON object followed by a newline.
// Values are strings formatted with precision decimals, as in Text.
func JSON(w io.Writer, res form.Result, precision int) error {
	out := jsonResult{Op: string(res.Op)}
	if res.IsScalar {
		out.Scalar = formatValue(res.Scalar, precision)
	} else {
		if res.Matrix == nil {
			return ErrEmptyResult
		}
		out.Rows = res.Matrix.Rows()
		out.Cols = res.Matrix.Cols()
		out.Cells = formatCells(res, precision)
	}

	data, err := sonic.ConfigStd.Marshal(out)
	if err != nil {
		return fmt.Errorf("render: encode json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func formatCells(res form.Result, precision int) [][]string {
	rows := res.Matrix.ToRows()
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = formatValue(v, precision)
		}
	}
	return out
}

func formatValue(v float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
