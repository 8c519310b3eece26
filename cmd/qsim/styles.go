package main

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	probBarW    = 40 // width of a probability bar in characters
	probListMax = 16 // most probable basis states shown for wide registers
)

// Lipgloss styles used across the TUI.
var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(1)

	controlsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	menuBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff9e64")).
			Padding(0, 1)

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ff9e64"))

	menuNormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	basisLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	probBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73daca"))

	stepLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e0af68"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	wellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	// One style per phase band; arg(ψ) picks the band.
	waveBandStyles = [5]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#bb9af7")),
	}
)
