package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Brand colors
	Blue   = lipgloss.Color("#3E8FD6")
	Orange = lipgloss.Color("#F2762E")
	Green  = lipgloss.Color("#04B575")
	Red    = lipgloss.Color("#FF0000")
	Gray   = lipgloss.Color("#888888")

	// Step header styling
	StepStyle = lipgloss.NewStyle().
			Foreground(Blue)

	// Highlighted names (entities, plugins, app name)
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Orange).
			Bold(true)

	// Warning styling
	WarnStyle = lipgloss.NewStyle().
			Foreground(Orange)

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)
)
