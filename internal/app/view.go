package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/deskboard/internal/ui"
	"github.com/llehouerou/deskboard/internal/ui/headerbar"
	"github.com/llehouerou/deskboard/internal/ui/layout"
	"github.com/llehouerou/deskboard/internal/ui/overlay"
	"github.com/llehouerou/deskboard/internal/ui/popup"
	"github.com/llehouerou/deskboard/internal/ui/portal"
	"github.com/llehouerou/deskboard/internal/ui/render"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := headerbar.Render(m.host, m.tabs(), m.route, m.Width)

	msgLines := 0
	if m.ErrorMsg != "" {
		msgLines = 1
	}
	contentH := layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		StatusHeight: ui.StatusHeight,
		MessageLines: msgLines,
	})
	content := render.Fit(m.Page().View(m.Width, contentH), m.Width, contentH)

	parts := []string{header, content}
	if m.ErrorMsg != "" {
		parts = append(parts, m.renderError())
	}
	parts = append(parts, m.renderStatus())
	view := strings.Join(parts, "\n")

	// Floating layers paint over the page in mount order.
	view = m.host.Root.Compose(view, m.Width, m.Height)
	if m.host.Root != portal.Document {
		view = portal.Document.Compose(view, m.Width, m.Height)
	}

	if m.showHelp {
		box := popup.RenderBordered(m.host.Theme, m.help.View(), m.Width, m.Height, popup.SizeAuto)
		view = overlay.Compose(view, box, m.Width, m.Height)
	}
	if m.confirm.Active() {
		box := popup.RenderBordered(m.host.Theme, m.confirm.View(), m.Width, m.Height, popup.SizeAuto)
		view = overlay.Compose(view, box, m.Width, m.Height)
	}

	if m.host.Zones != nil {
		view = m.host.Zones.Scan(view)
	}
	return view
}

func (m Model) renderError() string {
	t := m.host.Theme
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Foreground(t.Error).
		Width(max(0, m.Width-ui.BorderWidth))
	return style.Render(render.Truncate(m.ErrorMsg, max(0, m.Width-ui.BorderWidth)))
}

// renderStatus shows the page, the document cursor and the capture owner.
func (m Model) renderStatus() string {
	s := m.host.Theme.S()

	left := " " + m.Page().Title()
	if c := m.host.Document.Cursor(); c != "" {
		left += s.Muted.Render(" · " + string(c))
	}
	if owner, ok := m.host.Capture.Owner(); ok {
		left += s.Muted.Render(" · capture " + owner)
	}
	right := s.Subtle.Render(m.host.Theme.Name+" · ? help") + " "

	return lipgloss.NewStyle().MaxWidth(m.Width).Render(render.Row(left, right, m.Width))
}
