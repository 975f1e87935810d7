// Package helpbindings provides a scrollable popup for displaying keybindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/deskboard/internal/keymap"
	"github.com/llehouerou/deskboard/internal/ui"
	"github.com/llehouerou/deskboard/internal/ui/popup"
	"github.com/llehouerou/deskboard/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"components",
	"outliner",
	"menu",
	"input",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":     "Global",
	"components": "Components Page",
	"outliner":   "Outliner Page",
	"menu":       "Open Menu",
	"input":      "Typing In A Field",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	theme        *styles.Theme
	bindings     []keymap.Binding
	contexts     []string
	scrollOffset int
}

// New creates a new help bindings model.
func New(t *styles.Theme) Model {
	return Model{theme: t}
}

// SetTheme switches the palette.
func (m *Model) SetTheme(t *styles.Theme) {
	m.theme = t
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Contexts returns the displayed contexts.
func (m *Model) Contexts() []string {
	return m.contexts
}

// ScrollOffset returns the index of the first visible line.
func (m *Model) ScrollOffset() int {
	return m.scrollOffset
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup. The popup keeps the width of its widest
// line while scrolling.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.lines()
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		visible = append(visible, line+strings.Repeat(" ", width-lipgloss.Width(line)))
	}

	s := m.theme.S()
	return s.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Subtle.Render(m.footer())
}

// lines renders one header plus rule per context, then one line per binding
// with keys in an aligned column.
func (m Model) lines() []string {
	s := m.theme.S()
	keyStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}
	rule := s.Subtle.Render(strings.Repeat("─", keyWidth+15))

	var out []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				out = append(out, "")
			}
			label, ok := categoryLabels[b.Context]
			if !ok {
				label = b.Context
			}
			out = append(out, s.Label.Render(label), rule)
			context = b.Context
		}
		keys := strings.Join(b.Keys, ", ")
		keys += strings.Repeat(" ", keyWidth-lipgloss.Width(keys))
		out = append(out, keyStyle.Render(keys)+"  "+s.Base.Render(b.Description))
	}
	return out
}

func (m Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for the title, footer and popup border.
func (m Model) visibleHeight() int {
	return max(m.Height()-10, 5)
}

func (m Model) maxScroll() int {
	return max(0, len(m.lines())-m.visibleHeight())
}
