package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	primary = lipgloss.Color("#7C3AED")
	success = lipgloss.Color("#10B981")
	warning = lipgloss.Color("#F59E0B")
	muted   = lipgloss.Color("#6B7280")
	info    = lipgloss.Color("#3B82F6")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(success)

	uncheckedStyle = lipgloss.NewStyle().
			Foreground(muted)

	pathStyle = lipgloss.NewStyle().
			Foreground(info)

	sizeStyle = lipgloss.NewStyle().
			Foreground(warning).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(muted)
)
