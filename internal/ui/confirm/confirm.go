// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/deskboard/internal/ui"
	"github.com/llehouerou/deskboard/internal/ui/popup"
	"github.com/llehouerou/deskboard/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	theme   *styles.Theme
	title   string
	message string
	context any
	active  bool
}

// New creates a confirmation popup drawn with t.
func New(t *styles.Theme) Model {
	return Model{theme: t}
}

// SetTheme switches the palette.
func (m *Model) SetTheme(t *styles.Theme) {
	m.theme = t
}

// Show displays the popup. context comes back unchanged in the Result.
func (m *Model) Show(req RequestMsg) {
	m.title = req.Title
	m.message = req.Message
	m.context = req.Context
	m.active = true
}

// Reset hides the popup and forgets its context.
func (m *Model) Reset() {
	*m = Model{Base: m.Base, theme: m.theme}
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "y", "Y":
		return m, m.answer(true)
	case "esc", "n", "N":
		return m, m.answer(false)
	}
	return m, nil
}

func (m *Model) answer(yes bool) tea.Cmd {
	ctx := m.context
	m.Reset()
	return func() tea.Msg {
		return ActionMsg(Result{Confirmed: yes, Context: ctx})
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := m.theme.S()
	return s.Title.Render(m.title) + "\n\n" +
		s.Base.Render(m.message) + "\n\n" +
		s.Subtle.Render("enter/y confirm · esc/n cancel")
}
