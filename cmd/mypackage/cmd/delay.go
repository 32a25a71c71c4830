package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pengelbrecht/mypackage/internal/calculator"
	"github.com/pengelbrecht/mypackage/internal/demo"
	"github.com/spf13/cobra"
)

func newDelayCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delay <seconds>...",
		Short: "Wait for one or more durations",
		Long: `Wait for the given number of seconds. Fractional values are allowed.

When several durations are given they run concurrently, so the command
returns after the longest one.`,
		Example: "  mypackage delay 1\n  mypackage delay 0.5 0.25 0.1",
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelay(cmd, opts, args)
		},
	}
}

func runDelay(cmd *cobra.Command, opts *RootOptions, args []string) error {
	seconds := make([]float64, 0, len(args))
	longest := 0.0
	for _, arg := range args {
		s, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return usageError(fmt.Sprintf("invalid duration %q", arg), err)
		}
		if _, err := calculator.Duration(s); err != nil {
			return usageError(fmt.Sprintf("invalid duration %q", arg), err)
		}
		seconds = append(seconds, s)
		longest = max(longest, s)
	}

	label := fmt.Sprintf("Waiting for %s...", demo.FormatSeconds(longest))
	if len(seconds) > 1 {
		label = fmt.Sprintf("Waiting for %d delays, longest %s...", len(seconds), demo.FormatSeconds(longest))
	}

	out := cmd.OutOrStdout()
	if opts.Format == FormatText {
		fmt.Fprintln(out, label)
	}

	opts.logger.Debug("delay started", "seconds", seconds)
	start := time.Now()
	err := waitWithProgress(cmd.Context(), cmd, opts, label, func(ctx context.Context) error {
		return calculator.DelayAll(ctx, seconds...)
	})
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return failure("delay interrupted", err)
		}
		return failure("delay failed", err)
	}
	opts.logger.Debug("delay resumed", "elapsed", elapsed)

	res := DelayResult{Seconds: seconds, ElapsedSeconds: elapsed.Seconds()}
	text := fmt.Sprintf("Done! (elapsed %s)", elapsed.Round(time.Millisecond))
	return writeOutput(out, opts.Format, res, text)
}
