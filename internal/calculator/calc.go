// Package calculator provides basic arithmetic operations.
//
// Operands are Go ints, so Add, Subtract and Multiply wrap on overflow.
// Divide truncates toward zero and is the only operation that can fail.
package calculator

import "errors"

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns a times b.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a divided by b, truncated toward zero.
// Returns ErrDivisionByZero if b is zero.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Calculator exposes the operations as methods. The zero value is ready to use
// and holds no state, so a single value can be shared freely.
type Calculator struct{}

// Add returns the sum of a and b.
func (Calculator) Add(a, b int) int { return Add(a, b) }

// Subtract returns a minus b.
func (Calculator) Subtract(a, b int) int { return Subtract(a, b) }

// Multiply returns a times b.
func (Calculator) Multiply(a, b int) int { return Multiply(a, b) }

// Divide returns a divided by b, or ErrDivisionByZero.
func (Calculator) Divide(a, b int) (int, error) { return Divide(a, b) }

// Apply runs op on a and b.
func (Calculator) Apply(op Op, a, b int) (int, error) { return Apply(op, a, b) }
