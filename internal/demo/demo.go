// Package demo prints the fixed walkthrough of the my-package operations used
// by the main binary and the basic usage example.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/pengelbrecht/mypackage"
	"github.com/pengelbrecht/mypackage/internal/calculator"
	"github.com/pengelbrecht/mypackage/internal/styles"
)

// Operator selects the arithmetic operation of a Step.
type Operator int

const (
	OpAdd Operator = iota
	OpMultiply
)

// Symbol returns the infix symbol printed for the operator.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpMultiply:
		return "*"
	default:
		return "?"
	}
}

// Apply evaluates the operator.
func (o Operator) Apply(a, b int64) int64 {
	if o == OpMultiply {
		return calculator.Multiply(a, b)
	}
	return calculator.Add(a, b)
}

// Step is one printed calculation.
type Step struct {
	Op   Operator
	A, B int64
}

// String renders the step as "A op B = result".
func (s Step) String() string {
	return fmt.Sprintf("%d %s %d = %d", s.A, s.Op.Symbol(), s.B, s.Op.Apply(s.A, s.B))
}

// Section is a titled group of steps.
type Section struct {
	Title string
	Steps []Step
}

// Program is the full walkthrough: an optional banner, the arithmetic
// sections, and a final delay section.
type Program struct {
	Banner       bool
	Sections     []Section
	DelaySeconds float64
}

// MainProgram is the walkthrough printed by the mypackage binary.
func MainProgram(delaySeconds float64) Program {
	return Program{
		Banner:       true,
		Sections:     baseSections(),
		DelaySeconds: delaySeconds,
	}
}

// BasicUsageProgram is the walkthrough printed by the basic usage example.
func BasicUsageProgram(delaySeconds float64) Program {
	sections := append(baseSections(), Section{
		Title: "Working with negative numbers",
		Steps: []Step{
			{Op: OpAdd, A: -5, B: 10},
			{Op: OpMultiply, A: -3, B: 4},
		},
	})
	return Program{
		Sections:     sections,
		DelaySeconds: delaySeconds,
	}
}

func baseSections() []Section {
	return []Section{
		{
			Title: "Basic arithmetic",
			Steps: []Step{
				{Op: OpAdd, A: 2, B: 3},
				{Op: OpMultiply, A: 2, B: 3},
			},
		},
		{
			Title: "Working with larger numbers",
			Steps: []Step{
				{Op: OpAdd, A: 1000, B: 2000},
				{Op: OpMultiply, A: 100, B: 200},
			},
		},
	}
}

// Waiter blocks for the given number of seconds.
type Waiter func(ctx context.Context, seconds float64) error

// Runner prints programs.
type Runner struct {
	out    io.Writer
	theme  styles.Theme
	wait   Waiter
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWaiter replaces calculator.Delay as the delay implementation.
func WithWaiter(w Waiter) RunnerOption {
	return func(r *Runner) {
		r.wait = w
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithTheme overrides the theme derived from the output writer.
func WithTheme(theme styles.Theme) RunnerOption {
	return func(r *Runner) {
		r.theme = theme
	}
}

// NewRunner creates a runner printing to out.
func NewRunner(out io.Writer, opts ...RunnerOption) *Runner {
	r := &Runner{
		out:    out,
		theme:  styles.NewTheme(out),
		wait:   calculator.Delay,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prints p, waiting for p.DelaySeconds in the final section.
func (r *Runner) Run(ctx context.Context, p Program) error {
	pr := &printer{w: r.out}

	if p.Banner {
		pr.println(r.theme.Banner.Render(fmt.Sprintf("my-package v%s", mypackage.Version)))
		pr.println("")
	}

	for i, section := range p.Sections {
		pr.println(r.theme.Heading.Render(fmt.Sprintf("Example %d: %s", i+1, section.Title)))
		for _, step := range section.Steps {
			pr.println(step.String())
		}
		pr.println("")
	}

	pr.println(r.theme.Heading.Render(fmt.Sprintf("Example %d: Async delay", len(p.Sections)+1)))
	pr.println(fmt.Sprintf("Waiting for %s...", FormatSeconds(p.DelaySeconds)))
	if pr.err != nil {
		return pr.err
	}

	r.logger.Debug("delay started", "seconds", p.DelaySeconds)
	start := time.Now()
	if err := r.wait(ctx, p.DelaySeconds); err != nil {
		return fmt.Errorf("delay: %w", err)
	}
	r.logger.Debug("delay resumed", "elapsed", time.Since(start))

	pr.println("Done!")
	return pr.err
}

// FormatSeconds renders a duration in seconds for display, e.g. "1 second"
// or "0.5 seconds".
func FormatSeconds(seconds float64) string {
	s := strconv.FormatFloat(seconds, 'f', -1, 64)
	if seconds == 1 {
		return s + " second"
	}
	return s + " seconds"
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, line)
}
