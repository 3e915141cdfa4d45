// Package tui provides an interactive terminal UI for live conversion.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#FF6B6B") // Red - titles
	ColorAccent  = lipgloss.Color("#ffe66d") // Yellow - converted output
	ColorMuted   = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess = lipgloss.Color("#a8e6cf") // Green - valid syllables
	ColorText    = lipgloss.Color("#f1faee") // Light text
	ColorLabel   = lipgloss.Color("#a8dadc") // Label color
	ColorBg      = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder  = lipgloss.Color("#3d5a80") // Border color
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	DirectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorLabel)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	OutputStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	SyllableValidStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	SyllableInvalidStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Strikethrough(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)
