// Package cmd implements the mypackage command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pengelbrecht/mypackage"
	"github.com/pengelbrecht/mypackage/internal/calculator"
	"github.com/pengelbrecht/mypackage/internal/config"
	"github.com/pengelbrecht/mypackage/internal/demo"
	"github.com/pengelbrecht/mypackage/internal/styles"
	"github.com/pengelbrecht/mypackage/internal/tui"
	"github.com/spf13/cobra"
)

// Version is the version reported by the binary. Release builds may override
// it with -ldflags "-X github.com/pengelbrecht/mypackage/cmd/mypackage/cmd.Version=...".
var Version = mypackage.Version

// RootOptions holds global flags and the settings resolved from them.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Spinner string // overrides the configured spinner mode when set

	// Resolved in PersistentPreRunE.
	cfg    config.Config
	logger *slog.Logger
}

// newRootCmd builds a fresh command tree. Each invocation gets its own tree
// so flag values and contexts never leak between runs.
func newRootCmd() *cobra.Command {
	opts := &RootOptions{
		cfg:    config.Default(),
		logger: slog.Default(),
	}

	cmd := &cobra.Command{
		Use:   "mypackage",
		Short: "Add, multiply and wait",
		Long: `mypackage demonstrates integer addition, integer multiplication and a
timed delay. Run without a subcommand to print the walkthrough.

Negative operands must follow "--", e.g. mypackage add -- -1 -2.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalkthrough(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Spinner, "spinner", "", "show a spinner while waiting (auto|always|never)")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError("invalid flag", err)
	})

	cmd.AddCommand(newAddCmd(opts))
	cmd.AddCommand(newMultiplyCmd(opts))
	cmd.AddCommand(newDelayCmd(opts))
	cmd.AddCommand(newVersionCmd(opts))
	cmd.AddCommand(newUpgradeCmd(opts))

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	if !isValidFormat(o.Format) {
		return usageError(fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats), nil)
	}

	loaded, err := config.Load()
	if err != nil {
		return usageError("invalid configuration", err)
	}
	if o.Spinner != "" {
		mode, err := config.ParseSpinnerMode(o.Spinner)
		if err != nil {
			return usageError("invalid --spinner", err)
		}
		loaded.Spinner = mode
	}
	o.cfg = loaded

	level := o.cfg.LogLevel
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = config.NewLogger(cmd.ErrOrStderr(), level)
	o.logger.Debug("configuration loaded",
		"command", cmd.Name(),
		"demo_delay", o.cfg.DemoDelay,
		"spinner", string(o.cfg.Spinner),
		"format", o.Format,
	)
	return nil
}

func runWalkthrough(cmd *cobra.Command, opts *RootOptions) error {
	runner := demo.NewRunner(cmd.OutOrStdout(),
		demo.WithLogger(opts.logger),
		demo.WithWaiter(func(ctx context.Context, seconds float64) error {
			label := fmt.Sprintf("Waiting for %s...", demo.FormatSeconds(seconds))
			return waitWithProgress(ctx, cmd, opts, label, func(ctx context.Context) error {
				return calculator.Delay(ctx, seconds)
			})
		}),
	)
	if err := runner.Run(cmd.Context(), demo.MainProgram(opts.cfg.DemoDelay)); err != nil {
		return failure("demo failed", err)
	}
	return nil
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError("invalid arguments", err)
		}
		return nil
	}
}

// waitWithProgress runs wait, drawing a spinner on stderr when configured to.
func waitWithProgress(ctx context.Context, cmd *cobra.Command, opts *RootOptions, label string, wait func(context.Context) error) error {
	errOut := cmd.ErrOrStderr()
	switch opts.cfg.Spinner {
	case config.SpinnerAlways:
		return tui.Wait(ctx, errOut, label, wait)
	case config.SpinnerAuto:
		if tui.IsTerminal(errOut) {
			return tui.Wait(ctx, errOut, label, wait)
		}
	}
	return wait(ctx)
}

// Run executes the command line with args (without the program name) and
// returns the process exit code.
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		code := ExitCode(err)
		theme := styles.NewTheme(stderr)
		fmt.Fprintf(stderr, "%s %v\n", theme.Error.Render("Error:"), err)
		if code == ExitUsage {
			fmt.Fprintln(stderr, theme.Muted.Render("Run 'mypackage --help' for usage."))
		}
		return code
	}
	return ExitSuccess
}
