// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Info, Header, Error) rather than visual. When disabled,
// every helper returns its input unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	infoStyle   lipgloss.Style
	headerStyle lipgloss.Style
	errorStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
)

// Init sets the enabled state. NO_COLOR and STRATA_NO_COLOR always win:
// if either is set, styling stays off regardless of enable. Call once
// from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("STRATA_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	// Force ANSI256 regardless of TTY detection so basic and extended
	// colors both render.
	lipgloss.SetColorProfile(termenv.ANSI256)

	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// Enabled reports whether styling is active.
func Enabled() bool { return enabled }

// Info styles command names and synopses.
func Info(s string) string {
	if !enabled {
		return s
	}
	return infoStyle.Render(s)
}

// Header styles section headings.
func Header(s string) string {
	if !enabled {
		return s
	}
	return headerStyle.Render(s)
}

// Error styles fatal diagnostics.
func Error(s string) string {
	if !enabled {
		return s
	}
	return errorStyle.Render(s)
}

// Muted styles secondary text.
func Muted(s string) string {
	if !enabled {
		return s
	}
	return mutedStyle.Render(s)
}
