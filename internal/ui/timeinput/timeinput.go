// Package timeinput is a time, date or datetime field whose label scrubs the
// value by minutes or days when dragged.
package timeinput

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/deskboard/internal/ui/drag"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/textinput"
	"github.com/llehouerou/deskboard/internal/ui/value"
)

// InputMsg is emitted on every drag step.
type InputMsg struct {
	ID    string
	Value string
}

// ChangeMsg is emitted when a drag ends on a different value, and when a
// valid typed value is committed.
type ChangeMsg struct {
	ID    string
	Value string
}

type config struct {
	kind     drag.TimeKind
	get      func() string
	initial  *string
	clock    func() time.Time
	disabled bool
	labelEl  host.Element
	fieldEl  host.Element
}

// Option configures a Model.
type Option func(*config)

// WithKind selects time, date or datetime values. The default is time.
func WithKind(k drag.TimeKind) Option {
	return func(c *config) { c.kind = k }
}

// WithValue makes the input controlled by get.
func WithValue(get func() string) Option {
	return func(c *config) { c.get = get }
}

// WithDefault sets the initial value of an uncontrolled input. Without it the
// input starts at the current time.
func WithDefault(s string) Option {
	return func(c *config) { c.initial = &s }
}

// WithClock replaces time.Now for the default value.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.clock = now }
}

// WithDisabled disables dragging and typing.
func WithDisabled(disabled bool) Option {
	return func(c *config) { c.disabled = disabled }
}

// WithElements replaces the zone-backed geometry of the label and the field.
func WithElements(label, field host.Element) Option {
	return func(c *config) { c.labelEl, c.fieldEl = label, field }
}

// Model is a draggable time input.
type Model struct {
	host     *host.Host
	id       string
	label    string
	kind     drag.TimeKind
	value    value.Source[string]
	disabled bool

	labelEl host.Element
	fieldEl host.Element
	session drag.Session[string]
	last    string // latest dragged value, committed on release
	field   textinput.Model
}

// New creates a time input.
func New(h *host.Host, label string, opts ...Option) *Model {
	id := h.NewID("time")
	c := config{
		clock:   time.Now,
		labelEl: h.Element(id + "-label"),
		fieldEl: h.Element(id + "-field"),
	}
	for _, opt := range opts {
		opt(&c)
	}

	m := &Model{
		host:     h,
		id:       id,
		label:    label,
		kind:     c.kind,
		disabled: c.disabled,
		labelEl:  c.labelEl,
		fieldEl:  c.fieldEl,
	}
	switch {
	case c.get != nil:
		m.value = value.Controlled(c.get)
	case c.initial != nil:
		m.value = value.Uncontrolled(*c.initial)
	default:
		m.value = value.Uncontrolled(c.kind.Format(c.clock()))
	}
	width := len(c.kind.Layout()) + 1
	m.field = textinput.New(width, width)
	return m
}

// ID returns the component id. It is also the pointer capture owner.
func (m *Model) ID() string { return m.id }

// Kind returns the value format.
func (m *Model) Kind() drag.TimeKind { return m.kind }

// Value returns the current value.
func (m *Model) Value() string { return m.value.Get() }

// Dragging reports whether a drag session is active.
func (m *Model) Dragging() bool { return m.session.Active() }

// Editing reports whether the field is being typed into.
func (m *Model) Editing() bool { return m.field.Editing() }

// HandlePointer implements the label drag and focuses the field on press.
func (m *Model) HandlePointer(ev host.PointerEvent) tea.Cmd {
	if m.session.Active() {
		return m.handleDrag(ev)
	}
	if ev.Kind != host.PointerDown || !ev.Primary() || m.disabled {
		return nil
	}
	if r, ok := m.fieldEl.Bounds(); ok && r.Contains(ev.Point) {
		if m.field.Editing() {
			return nil
		}
		return m.field.Start(m.Value())
	}
	if m.field.Editing() {
		m.field.Stop()
	}
	if r, ok := m.labelEl.Bounds(); ok && r.Contains(ev.Point) {
		m.last = m.Value()
		m.session.Begin(m.host, m.id, ev.Point, m.last, host.CursorEWResize)
	}
	return nil
}

func (m *Model) handleDrag(ev host.PointerEvent) tea.Cmd {
	switch ev.Kind {
	case host.PointerMove:
		units := drag.TimeUnits(m.session.DeltaX(ev.Point), ev.Held(m.host.Precision))
		v, err := m.kind.Adjust(m.session.StartValue(), units)
		if err != nil {
			m.host.Log().Debug("time drag", "err", err)
			return nil
		}
		m.last = v
		m.value.Set(v)
		id := m.id
		return func() tea.Msg { return InputMsg{ID: id, Value: v} }
	case host.PointerUp, host.PointerCancel:
		start := m.session.StartValue()
		m.session.End(m.host)
		if m.last != start {
			return m.emitChange(m.last)
		}
	}
	return nil
}

// Focus starts typing into the field.
func (m *Model) Focus() tea.Cmd {
	if m.disabled {
		return nil
	}
	return m.field.Start(m.Value())
}

// Update handles keys while the field is being edited. Invalid values are
// dropped on commit.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.field.Editing() {
		return nil
	}
	res, done, cmd := m.field.Update(key)
	if !done || res.Canceled {
		return cmd
	}
	if !m.kind.Valid(res.Text) {
		return nil
	}
	m.value.Set(res.Text)
	return m.emitChange(res.Text)
}

func (m *Model) emitChange(v string) tea.Cmd {
	id := m.id
	return func() tea.Msg { return ChangeMsg{ID: id, Value: v} }
}

// View renders the label and the field.
func (m *Model) View() string {
	s := m.host.Theme.S()

	var label string
	if m.label != "" {
		style := s.Label
		switch {
		case m.disabled:
			style = s.Disabled
		case m.session.Active():
			style = s.Active
		}
		label = m.host.Mark(m.id+"-label", style.Render(" "+m.label+" "))
	}

	var field string
	if m.field.Editing() {
		field = m.field.View()
	} else {
		style := s.Base
		if m.disabled {
			style = s.Disabled
		}
		field = style.Render(fmt.Sprintf("%-*s", len(m.kind.Layout())+1, m.Value()))
	}
	field = m.host.Mark(m.id+"-field", field)

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", field)
}
