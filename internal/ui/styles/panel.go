package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns a rounded panel border colored by focus state.
func PanelStyle(focused bool) lipgloss.Style {
	color := T().Border
	if focused {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// FieldStyle returns the single-line bordered style used for input controls.
func FieldStyle(focused bool) lipgloss.Style {
	return PanelStyle(focused).Padding(0, 1)
}
