// SPDX-License-Identifier: MIT

// Package form models the calculator's input form: two editable text grids
// (A and B), a row/column size, and the last computed result. Apply turns the
// grids into matrices with matrix.Build and runs the selected operation.
//
// A Form is not safe for concurrent use; it represents a single session.
package form

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/matrix"
)

// Default grid size and cell text of a fresh form.
const (
	DefaultRows     = 2
	DefaultCols     = 2
	DefaultCellText = "0"
)

// Grid selects one of the two input grids.
type Grid int

const (
	GridA Grid = iota
	GridB
)

func (g Grid) String() string {
	switch g {
	case GridA:
		return "A"
	case GridB:
		return "B"
	default:
		return fmt.Sprintf("Grid(%d)", int(g))
	}
}

// ErrUnknownGrid is returned when a Grid value is neither GridA nor GridB.
var ErrUnknownGrid = errors.New("form: unknown grid")

// Result is the outcome of one Apply: a matrix, or a scalar for determinant.
type Result struct {
	Op       Operation
	Matrix   *matrix.Dense
	Scalar   float64
	IsScalar bool
}

// Form holds the editable state.
type Form struct {
	grids [2][][]string
	last  *Result
	log   *zap.Logger
}

// Option configures a Form.
type Option func(*formOptions)

type formOptions struct {
	log        *zap.Logger
	rows, cols int
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *formOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSize sets the initial grid size. Panics on non-positive values
// (programmer error; use Resize for user input).
func WithSize(rows, cols int) Option {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("form: WithSize(%d, %d): dimensions must be positive", rows, cols))
	}
	return func(o *formOptions) {
		o.rows, o.cols = rows, cols
	}
}

// New returns a form whose grids are DefaultRows×DefaultCols filled with
// DefaultCellText.
func New(opts ...Option) *Form {
	o := formOptions{log: zap.NewNop(), rows: DefaultRows, cols: DefaultCols}
	for _, opt := range opts {
		opt(&o)
	}

	f := &Form{log: o.log}
	f.grids[GridA] = filledCells(o.rows, o.cols)
	f.grids[GridB] = filledCells(o.rows, o.cols)
	return f
}

// Resize replaces both grids with rows×cols grids of DefaultCellText and
// clears the last result. Non-positive sizes leave the form untouched.
func (f *Form) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("Resize(%d, %d): %w", rows, cols, matrix.ErrInvalidDimensions)
	}
	f.grids[GridA] = filledCells(rows, cols)
	f.grids[GridB] = filledCells(rows, cols)
	f.last = nil
	f.log.Debug("form resized", zap.Int("rows", rows), zap.Int("cols", cols))
	return nil
}

// Shape returns the current size of grid g.
func (f *Form) Shape(g Grid) (matrix.Shape, error) {
	if err := checkGrid(g); err != nil {
		return matrix.Shape{}, err
	}
	cells := f.grids[g]
	return matrix.Shape{Rows: len(cells), Cols: len(cells[0])}, nil
}

// Cells returns a copy of grid g's text.
func (f *Form) Cells(g Grid) ([][]string, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}
	return copyCells(f.grids[g]), nil
}

// SetCell replaces the text of one cell.
func (f *Form) SetCell(g Grid, row, col int, text string) error {
	if err := checkGrid(g); err != nil {
		return err
	}
	cells := f.grids[g]
	if row < 0 || row >= len(cells) || col < 0 || col >= len(cells[row]) {
		return fmt.Errorf("SetCell(%s, %d, %d): %w", g, row, col, matrix.ErrOutOfRange)
	}
	cells[row][col] = text
	return nil
}

// SetGrid replaces grid g with a copy of cells; the grid takes their shape.
// cells must be non-empty and rectangular.
func (f *Form) SetGrid(g Grid, cells [][]string) error {
	if err := checkGrid(g); err != nil {
		return err
	}
	if err := checkRectangular(cells); err != nil {
		return fmt.Errorf("SetGrid(%s): %w", g, err)
	}
	f.grids[g] = copyCells(cells)
	return nil
}

// Last returns the most recent successful result.
func (f *Form) Last() (Result, bool) {
	if f.last == nil {
		return Result{}, false
	}
	return *f.last, true
}

// Apply builds the operands from the grids and runs op. On failure the grids
// and the last result are left as they were.
func (f *Form) Apply(op Operation) (Result, error) {
	if !op.valid() {
		return Result{}, fmt.Errorf("Apply: %w: %q", ErrUnknownOperation, string(op))
	}

	res, err := f.compute(op)
	if err != nil {
		f.log.Warn("operation failed",
			zap.String("op", string(op)),
			zap.Stringer("shapeA", f.mustShape(GridA)),
			zap.Stringer("shapeB", f.mustShape(GridB)),
			zap.Error(err),
		)
		return Result{}, err
	}

	f.last = &res
	fields := []zap.Field{zap.String("op", string(op))}
	if res.IsScalar {
		fields = append(fields, zap.Float64("scalar", res.Scalar))
	} else {
		fields = append(fields, zap.Stringer("shape", res.Matrix.Shape()))
	}
	f.log.Debug("operation applied", fields...)

	return res, nil
}

func (f *Form) compute(op Operation) (Result, error) {
	a, err := f.build(GridA)
	if err != nil {
		return Result{}, err
	}

	var b *matrix.Dense
	if op.Binary() {
		if b, err = f.build(GridB); err != nil {
			return Result{}, err
		}
	}

	res := Result{Op: op}
	switch op {
	case OpAdd:
		res.Matrix, err = matrix.Add(a, b)
	case OpSubtract:
		res.Matrix, err = matrix.Sub(a, b)
	case OpMultiply:
		res.Matrix, err = matrix.Mul(a, b)
	case OpTranspose:
		res.Matrix, err = matrix.Transpose(a)
	case OpDeterminant:
		res.Scalar, err = matrix.Det(a)
		res.IsScalar = true
	}
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

func (f *Form) build(g Grid) (*matrix.Dense, error) {
	cells := f.grids[g]
	m, err := matrix.Build(cells, len(cells), len(cells[0]))
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %w", g, err)
	}
	return m, nil
}

func (f *Form) mustShape(g Grid) matrix.Shape {
	s, _ := f.Shape(g)
	return s
}

func checkGrid(g Grid) error {
	if g != GridA && g != GridB {
		return fmt.Errorf("%w: %s", ErrUnknownGrid, g)
	}
	return nil
}

func filledCells(rows, cols int) [][]string {
	cells := make([][]string, rows)
	for i := range cells {
		row := make([]string, cols)
		for j := range row {
			row[j] = DefaultCellText
		}
		cells[i] = row
	}
	return cells
}

func copyCells(src [][]string) [][]string {
	dst := make([][]string, len(src))
	for i, row := range src {
		dst[i] = append([]string(nil), row...)
	}
	return dst
}
