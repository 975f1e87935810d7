package reorder

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/deskboard/internal/ui"
	"github.com/llehouerou/deskboard/internal/ui/drag"
	"github.com/llehouerou/deskboard/internal/ui/geom"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/portal"
	"github.com/llehouerou/deskboard/internal/ui/render"
	"github.com/llehouerou/deskboard/internal/ui/value"
)

// Row heights. Tree rows need three lines so the pointer can address the
// before, onto and after thirds.
const (
	TreeRowHeight = 3
	FlatRowHeight = 2
	Indent        = 2
)

// ReorderMsg carries the new tree after a completed drop.
type ReorderMsg struct {
	ID    string
	Items []Item
}

// Option configures a Model.
type Option func(*Model)

// WithTree enables nesting and expand toggles.
func WithTree(tree bool) Option {
	return func(m *Model) { m.tree = tree }
}

// WithDisabled disables dragging.
func WithDisabled(disabled bool) Option {
	return func(m *Model) { m.disabled = disabled }
}

// WithItemsFrom makes the list controlled: items are read from get, and
// drops are only reported through ReorderMsg.
func WithItemsFrom(get func() []Item) Option {
	return func(m *Model) { m.items = value.Controlled(get) }
}

// WithElement replaces the zone-backed geometry of the list.
func WithElement(el host.Element) Option {
	return func(m *Model) { m.el = el }
}

// row is one rendered row. The dragged item renders as a placeholder with
// no id, so it is never a drop target.
type row struct {
	item        Item
	depth       int
	placeholder bool
}

// Model is a reorderable list or tree.
type Model struct {
	ui.Base
	host     *host.Host
	id       string
	tree     bool
	disabled bool
	items    value.Source[[]Item]
	expanded map[string]bool
	el       host.Element

	session drag.Session[string]
	ghost   *portal.Portal
	grabX   int
	over    string
	pos     DropPosition
}

// New creates an uncontrolled list holding items.
func New(h *host.Host, items []Item, opts ...Option) *Model {
	id := h.NewID("reorder")
	m := &Model{
		host:     h,
		id:       id,
		items:    value.Uncontrolled(items),
		expanded: make(map[string]bool),
		el:       h.Element(id),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the component id. It is also the pointer capture owner.
func (m *Model) ID() string { return m.id }

// Items returns the current tree.
func (m *Model) Items() []Item { return m.items.Get() }

// SetDisabled enables or disables dragging. Disabling cancels a drag.
func (m *Model) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.cancel()
	}
}

// RowHeight returns the height of one row in cells.
func (m *Model) RowHeight() int {
	if m.tree {
		return TreeRowHeight
	}
	return FlatRowHeight
}

// Dragging returns the id of the dragged item.
func (m *Model) Dragging() (string, bool) {
	if !m.session.Active() {
		return "", false
	}
	return m.session.StartValue(), true
}

// Target returns the hovered row id and the classified drop position.
func (m *Model) Target() (string, DropPosition) {
	return m.over, m.pos
}

// Ghost returns the drag ghost portal, nil when idle.
func (m *Model) Ghost() *portal.Portal { return m.ghost }

// IsExpanded reports whether the item's children are shown.
func (m *Model) IsExpanded(it Item) bool {
	if v, ok := m.expanded[it.ID]; ok {
		return v
	}
	return it.Expanded == nil || *it.Expanded
}

// Toggle flips the expand state of id.
func (m *Model) Toggle(id string) {
	if it, ok := Find(m.Items(), id); ok {
		m.expanded[id] = !m.IsExpanded(*it)
	}
}

// rows flattens the visible tree. The dragged item and its subtree collapse
// into one placeholder row.
func (m *Model) rows() []row {
	dragged, dragging := m.Dragging()
	var out []row
	var walk func(items []Item, depth int)
	walk = func(items []Item, depth int) {
		for _, it := range items {
			if dragging && it.ID == dragged {
				out = append(out, row{item: it, depth: depth, placeholder: true})
				continue
			}
			out = append(out, row{item: it, depth: depth})
			if m.tree && it.HasChildren() && m.IsExpanded(it) {
				walk(it.Children, depth+1)
			}
		}
	}
	walk(m.Items(), 0)
	return out
}

// rowAt returns the row under p and its rectangle.
func (m *Model) rowAt(p geom.Point) (row, geom.Rect, bool) {
	r, ok := m.el.Bounds()
	if !ok || !r.Contains(p) {
		return row{}, geom.Rect{}, false
	}
	rh := m.RowHeight()
	idx := (p.Y - r.Y) / rh
	rows := m.rows()
	if idx >= len(rows) {
		return row{}, geom.Rect{}, false
	}
	return rows[idx], geom.Rect{X: r.X, Y: r.Y + idx*rh, W: r.W, H: rh}, true
}

// onToggle reports whether p is on the expand control of rw.
func (m *Model) onToggle(rw row, rect geom.Rect, p geom.Point) bool {
	if !m.tree || !rw.item.HasChildren() {
		return false
	}
	x := rect.X + rw.depth*Indent
	return p.X >= x && p.X < x+2
}

// HandlePointer drives the drag state machine.
func (m *Model) HandlePointer(ev host.PointerEvent) tea.Cmd {
	if m.session.Active() {
		switch ev.Kind {
		case host.PointerMove:
			m.track(ev.Point)
		case host.PointerUp:
			return m.drop()
		case host.PointerCancel:
			m.cancel()
		}
		return nil
	}

	if ev.Kind != host.PointerDown || !ev.Primary() {
		return nil
	}
	rw, rect, ok := m.rowAt(ev.Point)
	if !ok {
		return nil
	}
	if m.onToggle(rw, rect, ev.Point) {
		m.Toggle(rw.item.ID)
		return nil
	}
	if m.disabled {
		return nil
	}
	m.begin(rw, rect, ev.Point)
	return nil
}

func (m *Model) begin(rw row, rect geom.Rect, at geom.Point) {
	line := m.rowLines(rw, rect.W, false, None, false)[m.contentLine()]
	if !m.session.Begin(m.host, m.id, at, rw.item.ID, host.CursorGrabbing) {
		return
	}
	m.grabX = at.X - rect.X
	m.ghost = portal.Mount(m.host.Root, m.host.Theme.S().Ghost.Render(line))
	m.ghost.MoveTo(geom.Point{X: at.X - m.grabX, Y: at.Y})
	m.ghost.SetVisible(true)
	m.over, m.pos = "", None
}

// track follows the pointer: moves the ghost and classifies the row below.
func (m *Model) track(p geom.Point) {
	if m.ghost != nil {
		m.ghost.MoveTo(geom.Point{X: p.X - m.grabX, Y: p.Y})
	}

	m.over, m.pos = "", None
	rw, rect, ok := m.rowAt(p)
	if !ok || rw.placeholder {
		return
	}
	dragged := m.session.StartValue()
	canNest := !IsDescendant(m.Items(), dragged, rw.item.ID)
	m.over = rw.item.ID
	m.pos = Classify(rect, p.Y, m.tree, canNest)
}

func (m *Model) drop() tea.Cmd {
	dragged := m.session.StartValue()
	over, pos := m.over, m.pos
	m.cancel()

	if over == "" || pos == None {
		return nil
	}
	out, ok := Move(m.Items(), dragged, over, pos)
	if !ok {
		return nil
	}
	if pos == Onto {
		m.expanded[over] = true
	}
	m.items.Set(out)
	m.host.Log().Debug("reorder drop", "item", dragged, "target", over, "position", pos)

	id := m.id
	return func() tea.Msg { return ReorderMsg{ID: id, Items: out} }
}

// cancel removes the ghost and ends the session without applying anything.
func (m *Model) cancel() {
	if m.ghost != nil {
		m.ghost.Unmount()
		m.ghost = nil
	}
	m.session.End(m.host)
	m.over, m.pos = "", None
}

func (m *Model) contentLine() int {
	if m.tree {
		return 1
	}
	return 0
}

// View renders the rows at the current width.
func (m *Model) View() string {
	rows := m.rows()
	width := m.Width()
	var lines []string
	for i, rw := range rows {
		pos := None
		if !rw.placeholder && rw.item.ID == m.over {
			pos = m.pos
		}
		nextBefore := i+1 < len(rows) && rows[i+1].item.ID == m.over && !rows[i+1].placeholder && m.pos == Before
		lines = append(lines, m.rowLines(rw, width, rw.placeholder, pos, nextBefore)...)
	}
	return m.host.Mark(m.id, strings.Join(lines, "\n"))
}

// rowLines renders one row. In tree mode the spacer lines above and below the
// content show before and after markers; flat rows have one spacer below that
// shows an after marker or the next row's before marker.
func (m *Model) rowLines(rw row, width int, placeholder bool, pos DropPosition, nextBefore bool) []string {
	s := m.host.Theme.S()
	blank := render.Pad("", width)
	marker := s.DropLine.Render(strings.Repeat("━", max(0, width)))

	var content string
	if placeholder {
		content = s.Subtle.Render(strings.Repeat("┄", max(0, width)))
	} else {
		content = m.label(rw, width)
		switch {
		case pos == Onto:
			content = s.DropOnto.Render(content)
		case pos == Before && !m.tree:
			content = s.DropLine.Render(content)
		case m.disabled:
			content = s.Disabled.Render(content)
		default:
			content = s.Base.Render(content)
		}
	}

	if m.tree {
		top, bottom := blank, blank
		if pos == Before {
			top = marker
		}
		if pos == After {
			bottom = marker
		}
		return []string{top, content, bottom}
	}

	spacer := blank
	if pos == After || nextBefore {
		spacer = marker
	}
	return []string{content, spacer}
}

func (m *Model) label(rw row, width int) string {
	set := m.host.Icons
	var b strings.Builder
	if m.tree {
		b.WriteString(strings.Repeat(" ", rw.depth*Indent))
		switch {
		case !rw.item.HasChildren():
			b.WriteString("  ")
		case m.IsExpanded(rw.item):
			b.WriteString(render.Pad(set.Glyph("expand_more"), 2))
		default:
			b.WriteString(render.Pad(set.Glyph("chevron_right"), 2))
		}
	} else {
		b.WriteString(set.Prefix("drag_indicator"))
	}
	b.WriteString(set.Prefix(rw.item.Icon))
	b.WriteString(rw.item.Label)
	return render.TruncateAndPad(b.String(), width)
}
