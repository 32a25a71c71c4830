package calculator

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
)

// Duration converts fractional seconds to a time.Duration.
// The result is rounded up to the next nanosecond so a delay never
// undershoots the requested time.
func Duration(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || seconds < 0 {
		return 0, fmt.Errorf("%w: %v seconds", ErrInvalidDuration, seconds)
	}
	ns := math.Ceil(seconds * float64(time.Second))
	// float64(math.MaxInt64) rounds up to 2^63, which no Duration can hold.
	if ns >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("%w: %v seconds", ErrInvalidDuration, seconds)
	}
	return time.Duration(ns), nil
}

// Delay blocks the calling goroutine for at least the given number of
// seconds. It returns ctx.Err() if the context is done first.
func Delay(ctx context.Context, seconds float64) error {
	d, err := Duration(seconds)
	if err != nil {
		return err
	}
	if d == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DelayAll runs one Delay per duration concurrently and returns once all of
// them have resumed. The first failure cancels the remaining delays.
func DelayAll(ctx context.Context, seconds ...float64) error {
	for _, s := range seconds {
		if _, err := Duration(s); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, s := range seconds {
		g.Go(func() error {
			return Delay(ctx, s)
		})
	}
	return g.Wait()
}
