package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOp is returned when an operator name is not recognised.
var ErrUnknownOp = errors.New("unknown operator")

// Op identifies one of the four arithmetic operations.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

// Ops lists the operations in display order.
var Ops = []Op{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Symbol returns the infix symbol for the operation.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Valid reports whether o is one of the four operations.
func (o Op) Valid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// ParseOp accepts the canonical names, short names and symbols, case-insensitive.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+", "plus":
		return OpAdd, nil
	case "subtract", "sub", "-", "minus":
		return OpSubtract, nil
	case "multiply", "mul", "*", "x", "times":
		return OpMultiply, nil
	case "divide", "div", "/":
		return OpDivide, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
}

// Apply runs op on a and b.
func Apply(op Op, a, b int) (int, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, string(op))
	}
}

// Result is a completed calculation.
type Result struct {
	Op    Op  `json:"op"`
	A     int `json:"a"`
	B     int `json:"b"`
	Value int `json:"result"`
}

// Compute applies op and packages the outcome as a Result.
func Compute(op Op, a, b int) (Result, error) {
	v, err := Apply(op, a, b)
	if err != nil {
		return Result{}, err
	}
	return Result{Op: op, A: a, B: b, Value: v}, nil
}

// String renders the result as an infix equation, e.g. "3 + 4 = 7".
func (r Result) String() string {
	return fmt.Sprintf("%d %s %d = %d", r.A, r.Op.Symbol(), r.B, r.Value)
}
