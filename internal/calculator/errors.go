package calculator

import "errors"

var (
	// ErrOverflow is returned by the checked operations when the exact result
	// does not fit in an int64.
	ErrOverflow = errors.New("integer overflow")

	// ErrInvalidDuration is returned when a delay is negative, NaN, infinite,
	// or too long to represent as a time.Duration.
	ErrInvalidDuration = errors.New("invalid duration")
)
