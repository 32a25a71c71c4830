package cmd

import (
	"fmt"
	"strconv"

	"github.com/pengelbrecht/mypackage/internal/calculator"
	"github.com/pengelbrecht/mypackage/internal/styles"
	"github.com/spf13/cobra"
)

// operation binds a command name to its wrapping and checked implementations.
type operation struct {
	name    string
	symbol  string
	apply   func(a, b int64) int64
	checked func(a, b int64) (int64, error)
}

var (
	addOperation = operation{
		name:    "add",
		symbol:  "+",
		apply:   calculator.Add,
		checked: calculator.AddChecked,
	}
	multiplyOperation = operation{
		name:    "multiply",
		symbol:  "*",
		apply:   calculator.Multiply,
		checked: calculator.MultiplyChecked,
	}
)

func newAddCmd(opts *RootOptions) *cobra.Command {
	var checked bool
	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Print the sum of two integers",
		Long: `Print the sum of two signed 64-bit integers.

The sum wraps around on overflow unless --checked is given.`,
		Example: "  mypackage add 2 3\n  mypackage add --format json -- -1 -2",
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opts, addOperation, checked, args)
		},
	}
	cmd.Flags().BoolVar(&checked, "checked", false, "fail instead of wrapping on overflow")
	return cmd
}

func newMultiplyCmd(opts *RootOptions) *cobra.Command {
	var checked bool
	cmd := &cobra.Command{
		Use:     "multiply <a> <b>",
		Aliases: []string{"mul"},
		Short:   "Print the product of two integers",
		Long: `Print the product of two signed 64-bit integers.

The product wraps around on overflow unless --checked is given.`,
		Example: "  mypackage multiply 2 3\n  mypackage multiply --checked 4000000000 4000000000",
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opts, multiplyOperation, checked, args)
		},
	}
	cmd.Flags().BoolVar(&checked, "checked", false, "fail instead of wrapping on overflow")
	return cmd
}

func runOperation(cmd *cobra.Command, opts *RootOptions, op operation, checked bool, args []string) error {
	a, err := parseOperand(args[0])
	if err != nil {
		return err
	}
	b, err := parseOperand(args[1])
	if err != nil {
		return err
	}

	var result int64
	if checked {
		result, err = op.checked(a, b)
		if err != nil {
			return failure(op.name+" failed", err)
		}
	} else {
		result = op.apply(a, b)
	}
	opts.logger.Debug("computed", "operation", op.name, "a", a, "b", b, "result", result, "checked", checked)

	out := cmd.OutOrStdout()
	theme := styles.NewTheme(out)
	text := fmt.Sprintf("%d %s %d = %s", a, op.symbol, b, theme.Result.Render(strconv.FormatInt(result, 10)))
	res := ArithmeticResult{
		Operation: op.name,
		A:         a,
		B:         b,
		Result:    result,
		Checked:   checked,
	}
	return writeOutput(out, opts.Format, res, text)
}

func parseOperand(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, usageError(fmt.Sprintf("invalid operand %q", s), err)
	}
	return v, nil
}
