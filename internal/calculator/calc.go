// Package calculator provides basic arithmetic operations and a timed delay.
//
// Add, Subtract and Multiply wrap around on overflow, following Go's int64
// semantics. Use AddChecked or MultiplyChecked when overflow must be reported.
package calculator

import (
	"fmt"
	"math"
)

// Add returns the sum of a and b.
func Add(a, b int64) int64 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b int64) int64 {
	return a - b
}

// Multiply returns a times b.
func Multiply(a, b int64) int64 {
	return a * b
}

// AddChecked returns the sum of a and b, or ErrOverflow if it does not fit in an int64.
func AddChecked(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// MultiplyChecked returns the product of a and b, or ErrOverflow if it does not fit in an int64.
func MultiplyChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// MinInt64 / -1 wraps back to MinInt64, so the division check below misses it.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	p := a * b
	if p/b != a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return p, nil
}
