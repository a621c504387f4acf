package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrType is returned when an operand is not a numeric value.
	ErrType = errors.New("operand is not a number")

	// ErrInvalidInput is returned when numeric operands are outside the
	// domain of the requested operation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero is a specialization of ErrInvalidInput.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrInvalidInput)

	// ErrUnknownOperation is returned by Apply for an unsupported operation name.
	ErrUnknownOperation = errors.New("unknown operation")
)

// OperandError describes a non-numeric operand passed to an operation.
type OperandError struct {
	Op    Operation
	Index int
	Value any
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("%s: operand %d (%T): %v", e.Op, e.Index, e.Value, ErrType)
}

func (e *OperandError) Unwrap() error {
	return ErrType
}

// ErrorKind classifies calculator errors for callers that report them.
type ErrorKind string

const (
	KindTypeError      ErrorKind = "type_error"
	KindInvalidInput   ErrorKind = "invalid_input"
	KindDivisionByZero ErrorKind = "division_by_zero"
	KindUnknown        ErrorKind = "unknown"
)

// Kind reports which kind of failure err represents.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrType):
		return KindTypeError
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindUnknown
	}
}
