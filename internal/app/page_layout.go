package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/deskboard/internal/ui/drag"
	"github.com/llehouerou/deskboard/internal/ui/splitpanel"
)

// layoutPage nests a vertical split in the right pane of a horizontal one.
type layoutPage struct {
	ctx   *Context
	outer *splitpanel.Model
	inner *splitpanel.Model
	last  string
}

func newLayoutPage(ctx *Context) *layoutPage {
	return &layoutPage{
		ctx: ctx,
		outer: splitpanel.New(ctx.Host,
			splitpanel.WithDirection(drag.Horizontal),
			splitpanel.WithInitialSplit(35),
			splitpanel.WithMinSize(12),
		),
		inner: splitpanel.New(ctx.Host,
			splitpanel.WithDirection(drag.Vertical),
			splitpanel.WithMinSize(3),
		),
		last: "drag a divider",
	}
}

func (p *layoutPage) Route() string { return RouteLayout }

func (p *layoutPage) Title() string { return "Layout" }

func (p *layoutPage) HelpContexts() []string { return []string{"global"} }

func (p *layoutPage) Targets() []PointerTarget {
	return []PointerTarget{p.outer, p.inner}
}

func (p *layoutPage) HandleKey(tea.KeyMsg) (bool, tea.Cmd) { return false, nil }

func (p *layoutPage) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(splitpanel.ResizeMsg); ok {
		name := "outer"
		if msg.ID == p.inner.ID() {
			name = "inner"
		}
		p.last = fmt.Sprintf("%s split at %s%%", name, humanize.FtoaWithDigits(msg.Percent, 1))
	}
	return nil
}

func (p *layoutPage) View(width, height int) string {
	p.outer.SetSize(width, height)
	_, right := p.outer.PaneSizes()
	p.inner.SetSize(right, height)
	top, bottom := p.inner.PaneSizes()

	left, _ := p.outer.PaneSizes()
	s := p.ctx.Theme().S()
	pane := func(title string, percent float64, w, h int) string {
		return strings.Join([]string{
			s.Title.Render(" " + title),
			s.Muted.Render(fmt.Sprintf(" %s%% · %dx%d", humanize.FtoaWithDigits(percent, 1), w, h)),
		}, "\n")
	}

	sidebar := pane("Sidebar", p.outer.Percent(), left, height) + "\n\n" + s.Subtle.Render(" "+p.last)
	editor := pane("Editor", p.inner.Percent(), right, top)
	console := pane("Console", 100-p.inner.Percent(), right, bottom)
	return p.outer.View(sidebar, p.inner.View(editor, console))
}
