package popover

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/deskboard/internal/ui/anchor"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/overlay"
	"github.com/llehouerou/deskboard/internal/ui/render"
	"github.com/llehouerou/deskboard/internal/ui/value"
)

type itemKind int

const (
	kindAction itemKind = iota
	kindSeparator
	kindHeader
)

// Item is a menu entry: an action, a separator or a header.
type Item struct {
	Label    string
	Icon     string // icon name, see package icons
	Shortcut string // display only
	Action   string // reported in SelectMsg
	Danger   bool
	Disabled bool

	kind itemKind
}

// Separator returns a divider line.
func Separator() Item { return Item{kind: kindSeparator} }

// Header returns a non-selectable section title.
func Header(text string) Item { return Item{Label: text, kind: kindHeader} }

func (i Item) selectable() bool {
	return i.kind == kindAction && !i.Disabled
}

// SelectMsg reports an activated menu item.
type SelectMsg struct {
	MenuID string
	Action string
	Index  int
}

// OpenChangeMsg asks the owner of a controlled menu to change its open state.
type OpenChangeMsg struct {
	MenuID string
	Open   bool
}

// MenuOption configures a Menu.
type MenuOption func(*Menu)

// WithMenuPlacement sets the placement. The default is bottom-start.
func WithMenuPlacement(p overlay.Placement) MenuOption {
	return func(m *Menu) { m.placement = p }
}

// WithMenuOffset sets the gap between trigger and menu.
func WithMenuOffset(n int) MenuOption {
	return func(m *Menu) { m.offset = n }
}

// WithMenuMargin sets the minimum distance to the viewport edges.
func WithMenuMargin(n int) MenuOption {
	return func(m *Menu) { m.engine.SetMargin(n) }
}

// WithMenuTriggerElement replaces the zone-backed trigger geometry.
func WithMenuTriggerElement(el host.Element) MenuOption {
	return func(m *Menu) { m.triggerEl = el }
}

// WithOpenState makes the menu controlled: open is read from get and changes
// are requested through OpenChangeMsg.
func WithOpenState(get func() bool) MenuOption {
	return func(m *Menu) { m.open = value.Controlled(get) }
}

// Menu is a popup menu opened by clicking its trigger.
type Menu struct {
	host      *host.Host
	id        string
	trigger   string
	items     []Item
	triggerEl host.Element
	engine    *anchor.Engine
	placement overlay.Placement
	offset    int
	open      value.Source[bool]
	highlight int
	wasOpen   bool
}

// NewMenu creates a closed, uncontrolled menu.
func NewMenu(h *host.Host, trigger string, items []Item, opts ...MenuOption) *Menu {
	id := h.NewID("menu")
	m := &Menu{
		host:      h,
		id:        id,
		trigger:   trigger,
		items:     items,
		triggerEl: h.Element(id),
		engine:    anchor.New(h),
		placement: overlay.BottomStart,
		open:      value.Uncontrolled(false),
		highlight: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the component id.
func (m *Menu) ID() string { return m.id }

// IsOpen reports the open state, whoever owns it.
func (m *Menu) IsOpen() bool { return m.open.Get() }

// Visible reports whether the menu is positioned on screen.
func (m *Menu) Visible() bool { return m.engine.Visible() }

// Engine exposes the overlay engine.
func (m *Menu) Engine() *anchor.Engine { return m.engine }

// Highlight returns the highlighted item index, -1 for none.
func (m *Menu) Highlight() int { return m.highlight }

// HandlePointer toggles on trigger presses, activates items and closes on
// presses elsewhere.
func (m *Menu) HandlePointer(ev host.PointerEvent) tea.Cmd {
	if ev.Kind != host.PointerDown {
		return nil
	}
	if r, ok := m.triggerEl.Bounds(); ok && r.Contains(ev.Point) && ev.Primary() {
		return m.request(!m.IsOpen())
	}
	if r, ok := m.engine.Bounds(); ok && r.Contains(ev.Point) {
		if !ev.Primary() {
			return nil
		}
		return m.activate(ev.Point.Y - r.Y - 1) // top border
	}
	if m.open.IsControlled() {
		if m.engine.Outside(ev) {
			return m.request(false)
		}
		return nil
	}
	if m.engine.HandlePointer(ev) {
		return m.request(false)
	}
	return nil
}

// Toggle opens a closed menu or closes an open one, as a trigger press does.
func (m *Menu) Toggle() tea.Cmd {
	return m.request(!m.IsOpen())
}

// HandleKey navigates an open menu.
func (m *Menu) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.IsOpen() {
		return nil
	}
	switch msg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		return m.activate(m.highlight)
	case "esc":
		return m.request(false)
	}
	return nil
}

// View renders the trigger and refreshes the floating menu.
func (m *Menu) View() string {
	m.sync()
	return m.host.Mark(m.id, m.trigger)
}

func (m *Menu) request(open bool) tea.Cmd {
	if m.open.IsControlled() {
		id := m.id
		return func() tea.Msg { return OpenChangeMsg{MenuID: id, Open: open} }
	}
	m.open.Set(open)
	m.sync()
	return nil
}

func (m *Menu) activate(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.items) || !m.items[idx].selectable() {
		return nil
	}
	item := m.items[idx]
	id := m.id
	sel := func() tea.Msg { return SelectMsg{MenuID: id, Action: item.Action, Index: idx} }
	m.host.Log().Debug("menu select", "menu", id, "action", item.Action)
	return tea.Batch(m.request(false), sel)
}

func (m *Menu) move(dir int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	i := m.highlight
	for range n {
		i = (i + dir + n) % n
		if m.items[i].selectable() {
			m.highlight = i
			return
		}
	}
}

func (m *Menu) sync() {
	open := m.IsOpen()
	if open && !m.wasOpen {
		m.highlight = -1
	}
	m.wasOpen = open
	m.engine.SetContent(m.render())
	switch {
	case open && !m.engine.IsOpen():
		m.engine.Open(m.triggerEl, m.placement, m.offset)
	case !open && m.engine.IsOpen():
		m.engine.Close()
	}
}

func (m *Menu) render() string {
	s := m.host.Theme.S()
	set := m.host.Icons

	type row struct{ left, right string }
	rows := make([]row, len(m.items))
	width := 0
	for i, it := range m.items {
		if it.kind == kindAction {
			rows[i] = row{left: set.Prefix(it.Icon) + it.Label, right: it.Shortcut}
		} else {
			rows[i] = row{left: it.Label}
		}
		w := lipgloss.Width(rows[i].left)
		if rows[i].right != "" {
			w += 2 + lipgloss.Width(rows[i].right)
		}
		width = max(width, w)
	}

	lines := make([]string, len(m.items))
	for i, it := range m.items {
		switch it.kind {
		case kindSeparator:
			lines[i] = s.Subtle.Render(render.Separator(width))
			continue
		case kindHeader:
			lines[i] = s.Muted.Render(render.Pad(it.Label, width))
			continue
		}

		text := render.Pad(rows[i].left, width)
		if rows[i].right != "" {
			text = render.Row(rows[i].left, rows[i].right, width)
		}

		style := s.Base
		switch {
		case it.Disabled:
			style = s.Disabled
		case i == m.highlight:
			style = s.Cursor
		case it.Danger:
			style = s.Danger
		}
		lines[i] = style.Render(text)
	}
	return s.Overlay.Render(strings.Join(lines, "\n"))
}
