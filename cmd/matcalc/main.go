// SPDX-License-Identifier: MIT

// Command matcalc runs one matrix operation on grids given as text.
//
//	matcalc -op add -a "1 2; 3 4" -b "5 6; 7 8"
//	matcalc -op det -a "1 2; 3 4" -precision 4 -format json
//
// Exit status is 0 on success, 1 when the operation fails and 2 on usage
// or configuration errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/form"
	"github.com/katalvlaran/matcalc/internal/logging"
	"github.com/katalvlaran/matcalc/internal/render"
)

const (
	exitOK    = 0
	exitOp    = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opName := fs.String("op", "", "Operation: add, subtract, multiply, transpose, determinant")
	aText := fs.String("a", "", `Matrix A, rows split by ';' or newline, e.g. "1 2; 3 4"`)
	bText := fs.String("b", "", "Matrix B, same syntax as -a")
	format := fs.String("format", "", "Output format: text or json")
	precision := fs.Int("precision", render.DefaultPrecision, "Decimal places in the output")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	cfgPath := fs.String("config", "", "Path to YAML config")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *opName == "" {
		fmt.Fprintln(stderr, "matcalc: -op is required")
		fs.Usage()
		return exitUsage
	}
	op, err := form.ParseOperation(*opName)
	if err != nil {
		fmt.Fprintf(stderr, "matcalc: %v\n", err)
		return exitUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "matcalc: load config: %v\n", err)
		return exitUsage
	}
	overrides := config.Overrides{Format: *format, LogLevel: *logLevel}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "precision" {
			overrides.Precision = precision
		}
	})
	cfg.ApplyOverrides(overrides)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "matcalc: %v\n", err)
		return exitUsage
	}

	logger := logging.NewOrNop(cfg.Logging.Logger())
	defer func() { _ = logger.Sync() }()

	f := form.New(form.WithLogger(logger), form.WithSize(cfg.Form.Rows, cfg.Form.Cols))
	if err := loadGrid(f, form.GridA, *aText); err != nil {
		fmt.Fprintf(stderr, "matcalc: -a: %v\n", err)
		return exitOp
	}
	if op.Binary() {
		if err := loadGrid(f, form.GridB, *bText); err != nil {
			fmt.Fprintf(stderr, "matcalc: -b: %v\n", err)
			return exitOp
		}
	}

	res, err := f.Apply(op)
	if err != nil {
		fmt.Fprintf(stderr, "matcalc: %v\n", err)
		return exitOp
	}
	logger.Info("result ready", zap.String("op", string(op)), zap.String("format", cfg.Display.Format))

	if cfg.Display.Format == config.FormatJSON {
		err = render.JSON(stdout, res, cfg.Display.Precision)
	} else {
		err = render.Text(stdout, res, cfg.Display.Precision)
	}
	if err != nil {
		fmt.Fprintf(stderr, "matcalc: %v\n", err)
		return exitOp
	}

	return exitOK
}

// loadGrid replaces grid g with the parsed text. Empty text keeps the
// form's default grid of zeros.
func loadGrid(f *form.Form, g form.Grid, text string) error {
	if text == "" {
		return nil
	}
	cells, err := form.ParseGrid(text)
	if err != nil {
		return err
	}
	return f.SetGrid(g, cells)
}
