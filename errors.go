package frac

import "errors"

var (
	// ErrInvalidArgument is returned when a zero denominator is supplied to a
	// constructor, a setter-built value is normalized, or a zero denominator
	// is read from text.
	ErrInvalidArgument = errors.New("frac: invalid argument")

	// ErrDivideByZero is returned when the divisor of a division is zero.
	ErrDivideByZero = errors.New("frac: division by zero")

	// ErrOverflow is returned when an intermediate or final integer would not
	// fit in an int32.
	ErrOverflow = errors.New("frac: integer overflow")

	// ErrFormat is returned when text input does not contain two well-formed
	// integers.
	ErrFormat = errors.New("frac: invalid format")
)
