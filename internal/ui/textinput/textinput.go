// Package textinput provides in-place editing of a single-line value on top
// of the bubbles text input.
package textinput

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Result is the outcome of an edit.
type Result struct {
	Text     string
	Canceled bool // True if user pressed Escape
}

// Model is an inline editor. It is idle until Start.
type Model struct {
	input   textinput.Model
	editing bool
}

// New creates an idle editor width cells wide accepting at most limit runes.
func New(width, limit int) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.Width = width
	ti.Cursor.SetMode(cursor.CursorStatic)
	return Model{input: ti}
}

// Start begins editing text with the cursor at the end.
func (m *Model) Start(text string) tea.Cmd {
	m.editing = true
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Stop ends editing without a result.
func (m *Model) Stop() {
	m.editing = false
	m.input.Blur()
}

// Editing reports whether an edit is in progress.
func (m *Model) Editing() bool {
	return m.editing
}

// Value returns the text being edited.
func (m *Model) Value() string {
	return m.input.Value()
}

// Update handles a key while editing. done is true when enter or esc ended
// the edit, with res describing the outcome.
func (m *Model) Update(msg tea.KeyMsg) (res Result, done bool, cmd tea.Cmd) {
	if !m.editing {
		return Result{}, false, nil
	}
	switch msg.String() {
	case "esc":
		m.Stop()
		return Result{Text: m.input.Value(), Canceled: true}, true, nil
	case "enter":
		m.Stop()
		return Result{Text: m.input.Value()}, true, nil
	}
	m.input, cmd = m.input.Update(msg)
	return Result{}, false, cmd
}

// View renders the editor.
func (m *Model) View() string {
	return m.input.View()
}
