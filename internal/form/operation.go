// SPDX-License-Identifier: MIT

package form

import (
	"errors"
	"fmt"
	"strings"
)

// Operation names one of the calculator's actions.
type Operation string

// Supported operations.
const (
	OpAdd         Operation = "add"
	OpSubtract    Operation = "subtract"
	OpMultiply    Operation = "multiply"
	OpTranspose   Operation = "transpose"
	OpDeterminant Operation = "determinant"
)

// ErrUnknownOperation is returned for names ParseOperation does not know and
// for Operation values Apply cannot run.
var ErrUnknownOperation = errors.New("form: unknown operation")

var operationAliases = map[string]Operation{
	"add":         OpAdd,
	"+":           OpAdd,
	"subtract":    OpSubtract,
	"sub":         OpSubtract,
	"-":           OpSubtract,
	"multiply":    OpMultiply,
	"mul":         OpMultiply,
	"*":           OpMultiply,
	"transpose":   OpTranspose,
	"t":           OpTranspose,
	"determinant": OpDeterminant,
	"det":         OpDeterminant,
}

// Operations lists every supported operation in display order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpTranspose, OpDeterminant}
}

// ParseOperation resolves a name or alias, case-insensitively.
func ParseOperation(name string) (Operation, error) {
	op, ok := operationAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// Binary reports whether the operation reads grid B as well as grid A.
func (op Operation) Binary() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply:
		return true
	default:
		return false
	}
}

func (op Operation) valid() bool {
	for _, known := range Operations() {
		if op == known {
			return true
		}
	}
	return false
}
