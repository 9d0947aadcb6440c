package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent      = lipgloss.Color("#8BC34A")
	muted       = lipgloss.Color("#6b7280")
	destructive = lipgloss.Color("#e53935")
	info        = lipgloss.Color("#2196F3")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
	stepDone      = lipgloss.NewStyle().Foreground(accent)
	stepCurrent   = lipgloss.NewStyle().Bold(true).Underline(true)
	stepUpcoming  = lipgloss.NewStyle().Foreground(muted)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	focusedLabel  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	helperStyle   = lipgloss.NewStyle().Foreground(muted)
	errorStyle    = lipgloss.NewStyle().Foreground(destructive)
	busyStyle     = lipgloss.NewStyle().Foreground(info)
	readOnlyStyle = lipgloss.NewStyle().Foreground(info)
	helpStyle     = lipgloss.NewStyle().Foreground(muted).MarginTop(1)

	successBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)
)
