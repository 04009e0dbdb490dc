package ui

import "github.com/charmbracelet/lipgloss"

// lipgloss takes ANSI numbers or hex, not color names.
const (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorCyan   = lipgloss.Color("14")
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan).
			Align(lipgloss.Left)

	highStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	medStyle  = lipgloss.NewStyle().Foreground(colorYellow)

	staleStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true).
			Underline(true)

	helpBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			MarginTop(1)

	keybindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	keybindDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			Padding(0, 1)

	titleBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Bold(true).
			Align(lipgloss.Center)
)

// usageStyle picks the color for a usage percentage.
func usageStyle(pct, high, med float64) lipgloss.Style {
	switch {
	case pct > high:
		return highStyle
	case pct > med:
		return medStyle
	}
	return lipgloss.NewStyle()
}
