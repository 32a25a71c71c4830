// Package styles holds the terminal styles shared by the my-package binaries.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	green  = lipgloss.AdaptiveColor{Light: "#02A35A", Dark: "#04D882"}
	red    = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}
	gray   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
)

// Theme is a set of styles bound to one output.
// Styles render as plain text when the output is not a color terminal.
type Theme struct {
	Banner  lipgloss.Style
	Heading lipgloss.Style
	Result  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Spinner lipgloss.Style
}

// NewTheme returns a theme whose color profile is detected from w.
func NewTheme(w io.Writer) Theme {
	return newTheme(lipgloss.NewRenderer(w))
}

func newTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Banner:  r.NewStyle().Bold(true).Foreground(accent),
		Heading: r.NewStyle().Bold(true),
		Result:  r.NewStyle().Foreground(green),
		Muted:   r.NewStyle().Foreground(gray),
		Error:   r.NewStyle().Bold(true).Foreground(red),
		Spinner: r.NewStyle().Foreground(accent),
	}
}
