// Package popover provides the Popover and PopupMenu components. Both render
// a trigger in place and a floating block anchored to it.
package popover

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/deskboard/internal/ui/anchor"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/overlay"
)

// CloseMsg is emitted when a popover is dismissed by a press outside it.
type CloseMsg struct {
	ID string
}

// Option configures a Popover.
type Option func(*Model)

// WithPlacement sets the placement relative to the trigger.
func WithPlacement(p overlay.Placement) Option {
	return func(m *Model) { m.placement = p }
}

// WithOffset sets the gap between trigger and popover.
func WithOffset(n int) Option {
	return func(m *Model) { m.offset = n }
}

// WithMargin sets the minimum distance to the viewport edges.
func WithMargin(n int) Option {
	return func(m *Model) { m.engine.SetMargin(n) }
}

// WithTriggerElement replaces the zone-backed trigger geometry.
func WithTriggerElement(el host.Element) Option {
	return func(m *Model) { m.triggerEl = el }
}

// Model is a popover. The caller drives visibility with SetOpen and hears
// about outside presses through CloseMsg.
type Model struct {
	host      *host.Host
	id        string
	trigger   string
	content   string
	triggerEl host.Element
	engine    *anchor.Engine
	placement overlay.Placement
	offset    int
	open      bool
}

// New creates a closed popover with the given trigger text.
func New(h *host.Host, trigger string, opts ...Option) *Model {
	id := h.NewID("popover")
	m := &Model{
		host:      h,
		id:        id,
		trigger:   trigger,
		triggerEl: h.Element(id),
		engine:    anchor.New(h),
		placement: overlay.Bottom,
		offset:    1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the component id.
func (m *Model) ID() string { return m.id }

// SetTrigger replaces the trigger text.
func (m *Model) SetTrigger(s string) { m.trigger = s }

// SetContent replaces the popover body.
func (m *Model) SetContent(s string) { m.content = s }

// SetOpen requests the popover to be shown or hidden. Opening is deferred
// until the trigger has been rendered.
func (m *Model) SetOpen(open bool) {
	m.open = open
	m.sync()
}

// Open reports whether the caller wants the popover shown.
func (m *Model) Open() bool { return m.open }

// Visible reports whether the popover is positioned on screen.
func (m *Model) Visible() bool { return m.engine.Visible() }

// Engine exposes the overlay engine, mainly for position queries.
func (m *Model) Engine() *anchor.Engine { return m.engine }

// HandlePointer dismisses the popover on an outside press.
func (m *Model) HandlePointer(ev host.PointerEvent) tea.Cmd {
	if !m.engine.HandlePointer(ev) {
		return nil
	}
	m.open = false
	id := m.id
	return func() tea.Msg { return CloseMsg{ID: id} }
}

// View renders the trigger and refreshes the floating content.
func (m *Model) View() string {
	m.sync()
	return m.host.Mark(m.id, m.trigger)
}

func (m *Model) sync() {
	m.engine.SetContent(m.host.Theme.S().Overlay.Render(m.content))
	switch {
	case m.open && !m.engine.IsOpen():
		m.engine.Open(m.triggerEl, m.placement, m.offset)
	case !m.open && m.engine.IsOpen():
		m.engine.Close()
	}
}
