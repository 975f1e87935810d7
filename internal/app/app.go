// Package app wires the dashboard pages, the global keymap and the pointer
// dispatch into a bubbletea program.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/deskboard/internal/config"
	"github.com/llehouerou/deskboard/internal/errmsg"
	"github.com/llehouerou/deskboard/internal/keymap"
	"github.com/llehouerou/deskboard/internal/state"
	"github.com/llehouerou/deskboard/internal/ui/confirm"
	"github.com/llehouerou/deskboard/internal/ui/headerbar"
	"github.com/llehouerou/deskboard/internal/ui/helpbindings"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/styles"
)

// Options holds the dependencies of the application model.
type Options struct {
	Config *config.Config
	State  state.Interface
	Host   *host.Host
	Now    func() time.Time // defaults to time.Now
}

// Model is the root bubbletea model.
type Model struct {
	ctx   *Context
	host  *host.Host
	state state.Interface
	keys  *keymap.Resolver

	pages map[string]Page
	route string

	help     helpbindings.Model
	showHelp bool
	confirm  confirm.Model

	ErrorMsg string
	Width    int
	Height   int
}

// New builds the model and its pages. The theme comes from the config when
// set there, otherwise from the saved state.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	h := opts.Host
	if h == nil {
		h = host.New()
	}

	m := Model{
		host:  h,
		state: opts.State,
		keys:  keymap.Global(),
		route: Resolve(cfg.StartPage),
	}

	themeName := cfg.Theme
	if themeName == "" && m.state != nil {
		saved, err := m.state.GetTheme()
		if err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpThemeLoad, err)
			h.Log().Warn("theme not loaded", "err", err)
		}
		themeName = saved
	}
	if themeName != "" {
		h.Theme = styles.ForName(themeName)
	}

	m.ctx = &Context{Host: h, Overlay: cfg.GetOverlay(), Now: now}
	m.pages = map[string]Page{
		RouteComponents: newComponentsPage(m.ctx),
		RouteLayout:     newLayoutPage(m.ctx),
		RouteOutliner:   newOutlinerPage(m.ctx),
		RouteSchedules:  newSchedulesPage(m.ctx),
	}
	m.help = helpbindings.New(h.Theme)
	m.confirm = confirm.New(h.Theme)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.host.Frames.Cmd()
}

// Route returns the active route.
func (m Model) Route() string { return m.route }

// Page returns the active page.
func (m Model) Page() Page { return m.pages[m.route] }

// Host returns the interaction host.
func (m Model) Host() *host.Host { return m.host }

// HelpVisible reports whether the help popup is shown.
func (m Model) HelpVisible() bool { return m.showHelp }

// modal reports whether a popup holds the keyboard and pointer.
func (m Model) modal() bool { return m.showHelp || m.confirm.Active() }

// tabs returns the header tabs in route order.
func (m Model) tabs() []headerbar.Tab {
	tabs := make([]headerbar.Tab, len(Routes))
	for i, r := range Routes {
		tabs[i] = headerbar.Tab{
			Key:   string(rune('1' + i)),
			Name:  m.pages[r].Title(),
			Route: r,
		}
	}
	return tabs
}

// setRoute switches pages. A drag in progress on the old page is cancelled
// first so capture never outlives its owner.
func (m *Model) setRoute(route string) tea.Cmd {
	if route == m.route {
		return nil
	}
	cmd := m.cancelCapture()
	m.route = route
	m.host.Log().Debug("page", "route", route)
	return cmd
}
