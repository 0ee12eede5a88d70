// Package mathops implements the validated arithmetic operations.
// Operations are pure functions: they reject invalid inputs with a typed
// error from the apperrors package and have no side effects.
package mathops

import (
	"math"

	apperrors "github.com/agbru/mathmon/internal/errors"
)

// Divide returns the quotient a / b.
//
// It fails with apperrors.DivisionByZeroError when b == 0, and with
// apperrors.NegativeOperandError when either operand is negative. The zero
// check runs first, so Divide(-5, 0) reports a division by zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, apperrors.DivisionByZeroError{Dividend: a}
	}
	if a < 0 {
		return 0, apperrors.NegativeOperandError{Operation: "divide", Operand: a}
	}
	if b < 0 {
		return 0, apperrors.NegativeOperandError{Operation: "divide", Operand: b}
	}
	return a / b, nil
}

// Sqrt returns the non-negative square root of x.
//
// It fails with apperrors.NegativeOperandError when x < 0.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, apperrors.NegativeOperandError{Operation: "sqrt", Operand: x}
	}
	return math.Sqrt(x), nil
}
