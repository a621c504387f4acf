// Package calculator provides basic arithmetic operations over loosely typed
// operands.
//
// Operands usually come from decoded JSON, so every operation validates that
// its arguments are numbers before computing anything. Two kinds of failure
// are reported: ErrType for operands that are not numbers, and
// ErrInvalidInput for numbers the operation is undefined for.
package calculator

import (
	"fmt"
	"math"
)

// Operation names a calculator operation.
type Operation string

const (
	OpSum      Operation = "sum"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
	OpLog      Operation = "log"
)

// Calculator performs single, stateless numeric operations.
// It is safe for concurrent use.
type Calculator struct{}

// New returns a Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Operations returns the supported operation names.
func (c *Calculator) Operations() []Operation {
	return []Operation{OpSum, OpMultiply, OpDivide, OpLog}
}

// Sum returns the sum of values, or 0 when no values are given.
func (c *Calculator) Sum(values ...any) (float64, error) {
	nums, err := operands(OpSum, values)
	if err != nil {
		return 0, err
	}
	return c.SumSlice(nums), nil
}

// SumSlice returns the sum of already typed values.
func (c *Calculator) SumSlice(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Multiply returns a * b.
func (c *Calculator) Multiply(a, b any) (float64, error) {
	nums, err := operands(OpMultiply, []any{a, b})
	if err != nil {
		return 0, err
	}
	return nums[0] * nums[1], nil
}

// Divide returns a / b.
// If b is zero (of either sign) it returns ErrDivisionByZero. Infinite
// operands are not an error: Divide(+Inf, +Inf) is NaN.
func (c *Calculator) Divide(a, b any) (float64, error) {
	nums, err := operands(OpDivide, []any{a, b})
	if err != nil {
		return 0, err
	}
	if nums[1] == 0 {
		return 0, fmt.Errorf("%s %v by zero: %w", OpDivide, nums[0], ErrDivisionByZero)
	}
	return nums[0] / nums[1], nil
}

// Log returns the logarithm of value in the given base.
// Value and base must be positive and neither may be 1.
func (c *Calculator) Log(value, base any) (float64, error) {
	nums, err := operands(OpLog, []any{value, base})
	if err != nil {
		return 0, err
	}
	v, b := nums[0], nums[1]

	switch {
	case v <= 0:
		return 0, fmt.Errorf("%s: value must be positive, got %v: %w", OpLog, v, ErrInvalidInput)
	case b <= 0:
		return 0, fmt.Errorf("%s: base must be positive, got %v: %w", OpLog, b, ErrInvalidInput)
	case b == 1:
		return 0, fmt.Errorf("%s: base must not be 1: %w", OpLog, ErrInvalidInput)
	case v == 1:
		return 0, fmt.Errorf("%s: value must not be 1: %w", OpLog, ErrInvalidInput)
	}
	return math.Log(v) / math.Log(b), nil
}

// Apply runs the named operation. Binary operations require exactly two
// arguments.
func (c *Calculator) Apply(op Operation, args ...any) (float64, error) {
	if op == OpSum {
		return c.Sum(args...)
	}

	var binary func(a, b any) (float64, error)
	switch op {
	case OpMultiply:
		binary = c.Multiply
	case OpDivide:
		binary = c.Divide
	case OpLog:
		binary = c.Log
	default:
		return 0, fmt.Errorf("%q: %w", op, ErrUnknownOperation)
	}

	if len(args) != 2 {
		return 0, fmt.Errorf("%s takes 2 operands, got %d: %w", op, len(args), ErrInvalidInput)
	}
	return binary(args[0], args[1])
}
