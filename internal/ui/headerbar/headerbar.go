// Package headerbar renders the title and page tabs at the top of the screen.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/render"
	"github.com/llehouerou/deskboard/internal/ui/styles"
)

// Height is the fixed height of the header bar (tabs line + separator).
const Height = 2

// Title is the application name shown on the left.
const Title = "deskboard"

// Tab is one page tab.
type Tab struct {
	Key   string
	Name  string
	Route string
}

// ZoneID returns the zone id of the tab for route, so clicks can be mapped
// back to pages.
func ZoneID(route string) string {
	return "tab:" + route
}

// Render returns the header bar for the given width. The active tab is the
// one whose route equals current.
func Render(h *host.Host, tabs []Tab, current string, width int) string {
	t := h.Theme
	title := styles.ApplyBoldGradient(Title, t.Primary, t.Secondary)
	if width < 20 {
		return title + "\n" + render.Separator(width)
	}

	activeKey := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	activeName := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true)
	inactiveKey := t.S().Subtle
	inactiveName := t.S().Muted
	separator := t.S().Subtle.Render(" │ ")

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		keyStyle, nameStyle := inactiveKey, inactiveName
		if tab.Route == current {
			keyStyle, nameStyle = activeKey, activeName
		}
		part := keyStyle.Render(tab.Key) + " " + nameStyle.Render(tab.Name)
		parts = append(parts, h.Mark(ZoneID(tab.Route), part))
	}
	content := strings.Join(parts, separator)

	line := render.Row(" "+title, content+" ", width)
	sep := t.S().Subtle.Render(render.Separator(width))
	return line + "\n" + sep
}
