package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Adaptive colors keep key names readable on light terminals.
var (
	AccentColor  = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#7D56F4"}
	FailColor    = lipgloss.AdaptiveColor{Light: "#C00000", Dark: "#FF4F4F"}
	CautionColor = lipgloss.AdaptiveColor{Light: "#9A7500", Dark: "#FFCC00"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#626262"}
)

var (
	TitleStyle   = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	SubtleStyle  = lipgloss.NewStyle().Foreground(MutedColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(CautionColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(FailColor).Bold(true)

	// KeyStyle renders configuration keys.
	KeyStyle = lipgloss.NewStyle().Foreground(AccentColor)
	// AbsentStyle renders the placeholder for fields a record does not set.
	AbsentStyle = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)

	// BoxStyle frames the detail pane of the browser.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(0, 1)
)
