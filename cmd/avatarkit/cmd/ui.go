package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorGray = lipgloss.Color("245")
	colorRed  = lipgloss.Color("167")
	colorDim  = lipgloss.Color("240")
)

var (
	styleError = lipgloss.NewStyle().Foreground(colorRed)
	styleName  = lipgloss.NewStyle().Bold(true)
	styleHex   = lipgloss.NewStyle().Foreground(colorGray)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)

// swatch draws initials on their identity colour.
func swatch(initials, background, foreground string) string {
	if initials == "" {
		initials = "  "
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(foreground)).
		Bold(true).
		Padding(0, 1).
		Render(initials)
}
