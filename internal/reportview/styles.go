// Package reportview renders a diagnose.Report for terminal output and
// drives a repair pass (internal/fetch) with a Bubble Tea progress model,
// the same styling and progress-bar/step-list shape the teacher's launch
// view uses, repointed at diagnostic issues instead of launch steps.
package reportview

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#34D399")
	colorWarning = lipgloss.Color("#FBBF24")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#626262")
	colorText    = lipgloss.Color("#FAFAFA")
	colorSubtle  = lipgloss.Color("#A1A1AA")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorPrimary).
			Padding(0, 1)

	subtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	successStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
