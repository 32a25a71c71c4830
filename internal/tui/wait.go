// Package tui draws a spinner while a blocking wait is in progress.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/pengelbrecht/mypackage/internal/styles"
)

// doneMsg is sent when the wrapped wait function returns.
type doneMsg struct {
	err error
}

type waitModel struct {
	spinner spinner.Model
	label   string
	width   int
	wait    func() error

	done bool
	err  error
}

func newWaitModel(label string, theme styles.Theme, wait func() error) waitModel {
	return waitModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Spinner),
		),
		label: label,
		wait:  wait,
	}
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitCmd())
}

func (m waitModel) waitCmd() tea.Cmd {
	wait := m.wait
	return func() tea.Msg {
		return doneMsg{err: wait()}
	}
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m waitModel) View() string {
	if m.done {
		return ""
	}
	line := m.spinner.View() + " " + m.label
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return line
}

// Wait runs wait while a spinner labelled label is drawn on w.
// The spinner line is cleared once wait returns. Cancelling ctx stops both.
func Wait(ctx context.Context, w io.Writer, label string, wait func(context.Context) error) error {
	m := newWaitModel(label, styles.NewTheme(w), func() error {
		return wait(ctx)
	})

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("run wait program: %w", err)
	}

	fm, ok := final.(waitModel)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	return fm.err
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
