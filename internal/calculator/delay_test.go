package calculator

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelay_WaitsMinimumTime(t *testing.T) {
	for _, seconds := range []float64{0.05, 0.1} {
		start := time.Now()
		require.NoError(t, Delay(context.Background(), seconds))
		elapsed := time.Since(start)

		assert.GreaterOrEqual(t, elapsed.Seconds(), seconds,
			"delay should wait at least %vs, waited %.4fs", seconds, elapsed.Seconds())
	}
}

func TestDelay_ZeroCompletesQuickly(t *testing.T) {
	start := time.Now()
	require.NoError(t, Delay(context.Background(), 0))
	elapsed := time.Since(start)

	assert.Less(t, elapsed.Seconds(), 0.1, "zero delay took %.4fs", elapsed.Seconds())
}

func TestDelay_RejectsInvalidDurations(t *testing.T) {
	invalid := []float64{-1, -0.001, math.NaN(), math.Inf(1), math.Inf(-1), 1e12}

	for _, seconds := range invalid {
		start := time.Now()
		err := Delay(context.Background(), seconds)
		assert.ErrorIs(t, err, ErrInvalidDuration, "seconds=%v", seconds)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	}
}

func TestDelay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := Delay(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDelay_ZeroWithDoneContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, Delay(ctx, 0), context.Canceled)
}

func TestDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		want    time.Duration
	}{
		{0, 0},
		{0.05, 50 * time.Millisecond},
		{0.1, 100 * time.Millisecond},
		{1, time.Second},
		{1.5, 1500 * time.Millisecond},
		{1e-10, time.Nanosecond},
	}

	for _, tc := range cases {
		got, err := Duration(tc.seconds)
		require.NoError(t, err)
		// Rounding up may add one nanosecond when the float is not exact.
		assert.GreaterOrEqual(t, got, tc.want, "seconds=%v", tc.seconds)
		assert.LessOrEqual(t, got, tc.want+time.Nanosecond, "seconds=%v", tc.seconds)
	}
}

func TestDelayAll_RunsConcurrently(t *testing.T) {
	start := time.Now()
	require.NoError(t, DelayAll(context.Background(), 0.1, 0.1, 0.1, 0.05))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed.Seconds(), 0.1)
	assert.Less(t, elapsed.Seconds(), 0.3, "delays should overlap, took %.4fs", elapsed.Seconds())
}

func TestDelayAll_Empty(t *testing.T) {
	assert.NoError(t, DelayAll(context.Background()))
}

func TestDelayAll_RejectsInvalidBeforeWaiting(t *testing.T) {
	start := time.Now()
	err := DelayAll(context.Background(), 5, -1)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDelayAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := DelayAll(ctx, 10, 10)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
