// Package splitpanel lays out two panes separated by a draggable divider.
package splitpanel

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/deskboard/internal/ui"
	"github.com/llehouerou/deskboard/internal/ui/drag"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/render"
)

// Defaults.
const (
	DefaultSplit   = 50.0
	DefaultMinSize = 5
	HandleSize     = 1
)

// ResizeMsg is emitted on every pointer move of a divider drag.
type ResizeMsg struct {
	ID      string
	Percent float64
}

// Option configures a Model.
type Option func(*Model)

// WithDirection sets the split axis.
func WithDirection(d drag.Direction) Option {
	return func(m *Model) { m.dir = d }
}

// WithInitialSplit sets the starting percentage of the first pane.
func WithInitialSplit(p float64) Option {
	return func(m *Model) { m.percent = math.Max(0, math.Min(100, p)) }
}

// WithMinSize sets the minimum pane size in cells.
func WithMinSize(n int) Option {
	return func(m *Model) { m.minSize = max(0, n) }
}

// WithElements replaces the zone-backed geometry of the container and the
// divider.
func WithElements(container, handle host.Element) Option {
	return func(m *Model) { m.containerEl, m.handleEl = container, handle }
}

// Model is a split panel. The split percentage is live state; the caller is
// told about every change through ResizeMsg.
type Model struct {
	ui.Base
	host    *host.Host
	id      string
	dir     drag.Direction
	percent float64
	minSize int

	containerEl host.Element
	handleEl    host.Element
	session     drag.Session[float64]
}

// New creates a horizontal split at 50%.
func New(h *host.Host, opts ...Option) *Model {
	id := h.NewID("split")
	m := &Model{
		host:        h,
		id:          id,
		percent:     DefaultSplit,
		minSize:     DefaultMinSize,
		containerEl: h.Element(id),
		handleEl:    h.Element(id + "-handle"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the component id. It is also the pointer capture owner.
func (m *Model) ID() string { return m.id }

// Direction returns the split axis.
func (m *Model) Direction() drag.Direction { return m.dir }

// Percent returns the share of the first pane.
func (m *Model) Percent() float64 { return m.percent }

// Dragging reports whether the divider is held.
func (m *Model) Dragging() bool { return m.session.Active() }

// HandlePointer implements the divider drag.
func (m *Model) HandlePointer(ev host.PointerEvent) tea.Cmd {
	if m.session.Active() {
		switch ev.Kind {
		case host.PointerMove:
			r, ok := m.containerEl.Bounds()
			if !ok {
				return nil
			}
			m.percent = drag.SplitPercent(ev.Point, r, m.dir, m.minSize)
			id, p := m.id, m.percent
			return func() tea.Msg { return ResizeMsg{ID: id, Percent: p} }
		case host.PointerUp, host.PointerCancel:
			m.session.End(m.host)
		}
		return nil
	}

	if ev.Kind != host.PointerDown || !ev.Primary() {
		return nil
	}
	if r, ok := m.handleEl.Bounds(); ok && r.Contains(ev.Point) {
		cursor := host.CursorColResize
		if m.dir == drag.Vertical {
			cursor = host.CursorRowResize
		}
		m.session.Begin(m.host, m.id, ev.Point, m.percent, cursor)
	}
	return nil
}

// PaneSizes returns the extent of each pane along the split axis.
func (m *Model) PaneSizes() (first, second int) {
	extent := m.Width()
	if m.dir == drag.Vertical {
		extent = m.Height()
	}
	avail := max(0, extent-HandleSize)
	first = int(math.Round(float64(avail) * m.percent / 100))
	first = min(max(first, 0), avail)
	return first, avail - first
}

// View renders both panes and the divider at the current size.
func (m *Model) View(firstPane, secondPane string) string {
	s := m.host.Theme.S()
	handleStyle := s.Handle
	if m.session.Active() {
		handleStyle = s.HandleHot
	}

	first, second := m.PaneSizes()
	w, h := m.Size()

	var out string
	if m.dir == drag.Vertical {
		handle := handleStyle.Render(render.Separator(w))
		out = lipgloss.JoinVertical(lipgloss.Left,
			render.Fit(firstPane, w, first),
			m.host.Mark(m.id+"-handle", handle),
			render.Fit(secondPane, w, second),
		)
	} else {
		handle := handleStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))
		out = lipgloss.JoinHorizontal(lipgloss.Top,
			render.Fit(firstPane, first, h),
			m.host.Mark(m.id+"-handle", handle),
			render.Fit(secondPane, second, h),
		)
	}
	return m.host.Mark(m.id, out)
}
