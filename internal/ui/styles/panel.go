package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded panel frame for the focus state.
func (t *Theme) PanelStyle(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
