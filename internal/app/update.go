package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/deskboard/internal/app/handler"
	"github.com/llehouerou/deskboard/internal/errmsg"
	"github.com/llehouerou/deskboard/internal/keymap"
	"github.com/llehouerou/deskboard/internal/ui/action"
	"github.com/llehouerou/deskboard/internal/ui/confirm"
	"github.com/llehouerou/deskboard/internal/ui/headerbar"
	"github.com/llehouerou/deskboard/internal/ui/helpbindings"
	"github.com/llehouerou/deskboard/internal/ui/host"
)

// Update handles messages and returns the updated model and commands.
// Every path ends by starting the frame loop when callbacks are pending,
// since components may request frames from Update or View.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	return model, tea.Batch(cmd, model.host.Frames.Cmd())
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.host.SetViewport(msg.Width, msg.Height)
		m.help.SetSize(msg.Width, msg.Height)
		m.confirm.SetSize(msg.Width, msg.Height)
		return m, nil

	case host.FrameMsg:
		return m, m.host.Frames.Run(msg)

	case tea.MouseMsg:
		ev, ok := host.FromMouse(msg)
		if !ok {
			return m, nil
		}
		return m, m.dispatchPointer(ev)

	case tea.BlurMsg:
		return m, m.cancelCapture()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case confirm.RequestMsg:
		m.confirm.Show(msg)
		return m, nil

	case action.Msg:
		switch a := msg.Action.(type) {
		case helpbindings.Close:
			m.showHelp = false
		case confirm.Result:
			return m, m.Page().Update(a)
		}
		return m, nil
	}

	return m, m.Page().Update(msg)
}

// dispatchPointer routes a pointer event. The capture owner gets every event
// exclusively. Without capture, a press inside a visible floating block goes
// to that block only; anything else goes to every target in order.
func (m *Model) dispatchPointer(ev host.PointerEvent) tea.Cmd {
	if m.modal() {
		return nil
	}
	targets := m.Page().Targets()

	if owner, ok := m.host.Capture.Owner(); ok {
		for _, t := range targets {
			if t.ID() == owner {
				return t.HandlePointer(ev)
			}
		}
		m.host.Log().Warn("capture owner not on page", "owner", owner)
		m.host.Capture.Release(owner)
		m.host.Document.EndDrag()
	}

	if ev.Kind == host.PointerDown && ev.Primary() {
		if route, ok := m.tabAt(ev); ok {
			return m.setRoute(route)
		}
	}

	if ev.Kind == host.PointerDown {
		for _, t := range targets {
			a, ok := t.(anchored)
			if !ok {
				continue
			}
			if r, ok := a.Engine().Bounds(); ok && r.Contains(ev.Point) {
				return t.HandlePointer(ev)
			}
		}
	}

	cmds := make([]tea.Cmd, 0, len(targets))
	for _, t := range targets {
		cmds = append(cmds, t.HandlePointer(ev))
	}
	return tea.Batch(cmds...)
}

// tabAt returns the route of the header tab under the pointer.
func (m *Model) tabAt(ev host.PointerEvent) (string, bool) {
	for _, r := range Routes {
		if b, ok := m.host.Element(headerbar.ZoneID(r)).Bounds(); ok && b.Contains(ev.Point) {
			return r, true
		}
	}
	return "", false
}

// cancelCapture sends a cancel event to the capture owner, ending any drag.
func (m *Model) cancelCapture() tea.Cmd {
	owner, ok := m.host.Capture.Owner()
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	for _, t := range m.Page().Targets() {
		if t.ID() == owner {
			cmd = t.HandlePointer(host.Cancel())
			break
		}
	}
	// The owner may already be gone; never leave the document locked.
	m.host.Capture.Release(owner)
	m.host.Document.EndDrag()
	return cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	_, cmd := handler.Chain(msg,
		handler.Key(m.quit, "ctrl+c"),
		m.handleConfirmKey,
		m.handleHelpKey,
		m.handlePageKey,
		m.handleGlobalKey,
	)
	return m, cmd
}

// handleConfirmKey gives every key to an open confirmation.
func (m *Model) handleConfirmKey(msg tea.KeyMsg) handler.Result {
	if !m.confirm.Active() {
		return handler.NotHandled
	}
	_, cmd := m.confirm.Update(msg)
	return handler.Handled(cmd)
}

// handleHelpKey gives every key to the help popup while it is shown.
func (m *Model) handleHelpKey(msg tea.KeyMsg) handler.Result {
	if !m.showHelp {
		return handler.NotHandled
	}
	_, cmd := m.help.Update(msg)
	return handler.Handled(cmd)
}

func (m *Model) handlePageKey(msg tea.KeyMsg) handler.Result {
	if ok, cmd := m.Page().HandleKey(msg); ok {
		return handler.Handled(cmd)
	}
	return handler.NotHandled
}

// handleGlobalKey runs the action bound to msg in the global keymap.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) handler.Result {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return handler.Handled(m.quit())
	case keymap.ActionHelp:
		m.showHelp = true
		m.help.SetContexts(m.Page().HelpContexts())
		return handler.HandledNoCmd
	case keymap.ActionToggleTheme:
		m.toggleTheme()
		return handler.HandledNoCmd
	case keymap.ActionNextPage:
		return handler.Handled(m.setRoute(NextRoute(m.route)))
	case keymap.ActionPageComponents:
		return handler.Handled(m.setRoute(RouteComponents))
	case keymap.ActionPageLayout:
		return handler.Handled(m.setRoute(RouteLayout))
	case keymap.ActionPageOutliner:
		return handler.Handled(m.setRoute(RouteOutliner))
	case keymap.ActionPageSchedules:
		return handler.Handled(m.setRoute(RouteSchedules))
	}
	return handler.NotHandled
}

// toggleTheme switches palettes and saves the choice.
func (m *Model) toggleTheme() {
	m.host.Theme = m.host.Theme.Toggled()
	m.help.SetTheme(m.host.Theme)
	m.confirm.SetTheme(m.host.Theme)
	if m.state == nil {
		return
	}
	if err := m.state.SaveTheme(m.host.Theme.Name); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpThemeSave, err)
		m.host.Log().Error("theme not saved", "err", err)
		return
	}
	m.ErrorMsg = ""
}

// quit ends any drag and closes the state store before exiting.
func (m *Model) quit() tea.Cmd {
	m.cancelCapture()
	if m.state != nil {
		if err := m.state.Close(); err != nil {
			m.host.Log().Error("closing state", "err", err)
		}
	}
	return tea.Quit
}
