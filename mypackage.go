// Package mypackage exposes integer addition, integer multiplication, and a
// context-aware timed delay.
//
// Arithmetic wraps around on overflow like Go's int64; the checked variants
// report ErrOverflow instead.
package mypackage

import (
	"context"

	"github.com/pengelbrecht/mypackage/internal/calculator"
)

// Version is the package version.
const Version = "0.1.0"

var (
	// ErrOverflow is returned by AddChecked and MultiplyChecked.
	ErrOverflow = calculator.ErrOverflow
	// ErrInvalidDuration is returned by Delay for negative, NaN, infinite, or
	// unrepresentable durations.
	ErrInvalidDuration = calculator.ErrInvalidDuration
)

// Add returns the sum of a and b.
func Add(a, b int64) int64 {
	return calculator.Add(a, b)
}

// Multiply returns the product of a and b.
func Multiply(a, b int64) int64 {
	return calculator.Multiply(a, b)
}

// AddChecked is like Add but reports overflow.
func AddChecked(a, b int64) (int64, error) {
	return calculator.AddChecked(a, b)
}

// MultiplyChecked is like Multiply but reports overflow.
func MultiplyChecked(a, b int64) (int64, error) {
	return calculator.MultiplyChecked(a, b)
}

// Delay waits for at least the given number of seconds, or until ctx is done.
func Delay(ctx context.Context, seconds float64) error {
	return calculator.Delay(ctx, seconds)
}
