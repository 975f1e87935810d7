// Package numberinput is a numeric field whose label can be dragged
// horizontally to scrub the value. The field also accepts typed values.
package numberinput

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/deskboard/internal/ui/drag"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/textinput"
	"github.com/llehouerou/deskboard/internal/ui/value"
)

// InputMsg is emitted continuously while dragging or typing.
type InputMsg struct {
	ID    string
	Value float64
}

// ChangeMsg is emitted when a value is committed: on drag release and on
// enter after typing.
type ChangeMsg struct {
	ID    string
	Value float64
}

// Option configures a Model.
type Option func(*Model)

// WithValue makes the input controlled by get.
func WithValue(get func() float64) Option {
	return func(m *Model) { m.value = value.Controlled(get) }
}

// WithDefault sets the initial value of an uncontrolled input.
func WithDefault(v float64) Option {
	return func(m *Model) { m.value = value.Uncontrolled(v) }
}

// WithMin sets the lower bound.
func WithMin(v float64) Option {
	return func(m *Model) { m.bounds.Min, m.bounds.HasMin = v, true }
}

// WithMax sets the upper bound.
func WithMax(v float64) Option {
	return func(m *Model) { m.bounds.Max, m.bounds.HasMax = v, true }
}

// WithStep sets the value change per ten cells of travel.
func WithStep(v float64) Option {
	return func(m *Model) { m.step = v }
}

// WithPrecision sets the number of decimals displayed.
func WithPrecision(n int) Option {
	return func(m *Model) { m.precision = max(0, n) }
}

// WithWidth sets the field width in cells.
func WithWidth(n int) Option {
	return func(m *Model) { m.width = n }
}

// WithDisabled disables dragging and typing.
func WithDisabled(disabled bool) Option {
	return func(m *Model) { m.disabled = disabled }
}

// WithElements replaces the zone-backed geometry of the label and the field.
func WithElements(label, field host.Element) Option {
	return func(m *Model) { m.labelEl, m.fieldEl = label, field }
}

// Model is a draggable numeric input.
type Model struct {
	host      *host.Host
	id        string
	label     string
	value     value.Source[float64]
	bounds    drag.Bounds
	step      float64
	precision int
	width     int
	disabled  bool

	labelEl host.Element
	fieldEl host.Element
	session drag.Session[float64]
	last    float64 // latest dragged value, committed on release
	field   textinput.Model
}

// New creates an uncontrolled input starting at 0 with step 1 and three
// decimals.
func New(h *host.Host, label string, opts ...Option) *Model {
	id := h.NewID("number")
	m := &Model{
		host:      h,
		id:        id,
		label:     label,
		value:     value.Uncontrolled(0.0),
		step:      1,
		precision: 3,
		width:     8,
		labelEl:   h.Element(id + "-label"),
		fieldEl:   h.Element(id + "-field"),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.field = textinput.New(m.width, 32)
	return m
}

// ID returns the component id. It is also the pointer capture owner.
func (m *Model) ID() string { return m.id }

// Value returns the current value.
func (m *Model) Value() float64 { return m.value.Get() }

// SetDisabled enables or disables the input. Disabling cancels a drag.
func (m *Model) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.session.End(m.host)
		m.field.Stop()
	}
}

// Dragging reports whether a drag session is active.
func (m *Model) Dragging() bool { return m.session.Active() }

// Editing reports whether the field is being typed into.
func (m *Model) Editing() bool { return m.field.Editing() }

// HandlePointer implements the label drag and focuses the field on press.
func (m *Model) HandlePointer(ev host.PointerEvent) tea.Cmd {
	if m.session.Active() {
		return m.handleDrag(ev)
	}
	if ev.Kind != host.PointerDown || !ev.Primary() {
		return nil
	}

	if r, ok := m.fieldEl.Bounds(); ok && r.Contains(ev.Point) {
		if m.disabled || m.field.Editing() {
			return nil
		}
		return m.field.Start(m.format(m.Value()))
	}

	// Pressing anywhere else ends typing as if enter was pressed.
	var cmd tea.Cmd
	if m.field.Editing() {
		cmd = m.commit(m.field.Value())
		m.field.Stop()
	}

	if r, ok := m.labelEl.Bounds(); ok && r.Contains(ev.Point) && !m.disabled {
		m.last = m.Value()
		m.session.Begin(m.host, m.id, ev.Point, m.last, host.CursorEWResize)
	}
	return cmd
}

func (m *Model) handleDrag(ev host.PointerEvent) tea.Cmd {
	switch ev.Kind {
	case host.PointerMove:
		sens := drag.Sensitivity(ev.Held(m.host.Precision))
		v := drag.Value(m.session.StartValue(), m.session.DeltaX(ev.Point), m.step, sens, m.bounds)
		m.last = v
		m.value.Set(v)
		return m.emitInput(v)
	case host.PointerUp, host.PointerCancel:
		m.session.End(m.host)
		return m.emitChange(m.last)
	}
	return nil
}

// Focus starts typing into the field.
func (m *Model) Focus() tea.Cmd {
	if m.disabled {
		return nil
	}
	return m.field.Start(m.format(m.Value()))
}

// Update handles keys while the field is being edited.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.field.Editing() {
		return nil
	}
	res, done, cmd := m.field.Update(key)
	if done {
		if res.Canceled {
			return nil
		}
		return m.commit(res.Text)
	}
	if v, err := parse(m.field.Value()); err == nil {
		v = m.bounds.Clamp(v)
		return tea.Batch(cmd, m.emitInput(v))
	}
	return cmd
}

// commit stores typed text. Text that does not parse counts as zero.
func (m *Model) commit(text string) tea.Cmd {
	v, err := parse(text)
	if err != nil {
		v = 0
	}
	v = m.bounds.Clamp(v)
	m.value.Set(v)
	return m.emitChange(v)
}

func parse(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func (m *Model) format(v float64) string {
	return strconv.FormatFloat(v, 'f', m.precision, 64)
}

func (m *Model) emitInput(v float64) tea.Cmd {
	id := m.id
	return func() tea.Msg { return InputMsg{ID: id, Value: v} }
}

func (m *Model) emitChange(v float64) tea.Cmd {
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
		text := m.format(m.Value())
		style := s.Base
		if m.disabled {
			style = s.Disabled
		}
		field = style.Render(fmt.Sprintf("%-*s", m.width, text))
	}
	field = m.host.Mark(m.id+"-field", field)

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", field)
}
