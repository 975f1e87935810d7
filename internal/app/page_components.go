package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/deskboard/internal/ui"
	"github.com/llehouerou/deskboard/internal/ui/confirm"
	"github.com/llehouerou/deskboard/internal/ui/drag"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/layout"
	"github.com/llehouerou/deskboard/internal/ui/numberinput"
	"github.com/llehouerou/deskboard/internal/ui/overlay"
	"github.com/llehouerou/deskboard/internal/ui/popover"
	"github.com/llehouerou/deskboard/internal/ui/timeinput"
)

// Menu actions.
const (
	actionReset  = "reset"
	actionCopy   = "copy"
	actionEdit   = "edit"
	actionDelete = "delete"
)

const infoText = `Anchored overlay
Follows its trigger every frame
Press outside to close`

// componentsPage shows a popover, a popup menu and the value inputs.
type componentsPage struct {
	ctx *Context

	info       *popover.Model
	infoToggle *triggerToggle
	menu       *popover.Menu
	axes       [3]*numberinput.Model
	at         *timeinput.Model
	on         *timeinput.Model

	position [3]float64
	deleted  bool
	last     string
}

func newComponentsPage(ctx *Context) *componentsPage {
	h := ctx.Host
	p := &componentsPage{ctx: ctx, last: "ready"}

	p.info = popover.New(h, "[ Info ]",
		popover.WithPlacement(overlay.Bottom),
		popover.WithOffset(ctx.Overlay.PopoverOffset),
		popover.WithMargin(ctx.Overlay.Margin),
	)
	p.info.SetContent(infoText)
	p.infoToggle = &triggerToggle{id: p.info.ID() + "-toggle", el: h.Element(p.info.ID()), pop: p.info}

	p.menu = popover.NewMenu(h, "[ Actions "+h.Icons.Glyph("more_vert")+" ]", []popover.Item{
		popover.Header("Transform"),
		{Label: "Reset position", Icon: "settings", Action: actionReset},
		{Label: "Copy values", Icon: "content_copy", Shortcut: "c", Action: actionCopy},
		{Label: "Edit X", Icon: "edit", Shortcut: "e", Action: actionEdit},
		{Label: "Paste values", Icon: "content_copy", Action: "paste", Disabled: true},
		popover.Separator(),
		{Label: "Delete object", Icon: "delete", Action: actionDelete, Danger: true},
	},
		popover.WithMenuOffset(ctx.Overlay.MenuOffset),
		popover.WithMenuMargin(ctx.Overlay.Margin),
	)

	bounds := [3][]numberinput.Option{
		{numberinput.WithMin(-100), numberinput.WithMax(100)},
		nil,
		{numberinput.WithMin(0)},
	}
	for i, name := range []string{"X", "Y", "Z"} {
		opts := append([]numberinput.Option{
			numberinput.WithValue(func() float64 { return p.position[i] }),
			numberinput.WithStep(0.5),
			numberinput.WithPrecision(2),
		}, bounds[i]...)
		p.axes[i] = numberinput.New(h, name, opts...)
	}

	p.at = timeinput.New(h, "At", timeinput.WithKind(drag.KindTime), timeinput.WithClock(ctx.Now))
	p.on = timeinput.New(h, "On", timeinput.WithKind(drag.KindDate), timeinput.WithClock(ctx.Now))
	return p
}

func (p *componentsPage) Route() string { return RouteComponents }

func (p *componentsPage) Title() string { return "Components" }

func (p *componentsPage) HelpContexts() []string {
	return []string{"global", "components", "menu", "input"}
}

func (p *componentsPage) Targets() []PointerTarget {
	return []PointerTarget{
		p.info, p.menu, p.infoToggle,
		p.axes[0], p.axes[1], p.axes[2],
		p.at, p.on,
	}
}

// editing returns the input being typed into.
func (p *componentsPage) editing() interface{ Update(tea.Msg) tea.Cmd } {
	for _, in := range p.axes {
		if in.Editing() {
			return in
		}
	}
	for _, in := range []*timeinput.Model{p.at, p.on} {
		if in.Editing() {
			return in
		}
	}
	return nil
}

func (p *componentsPage) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if p.menu.IsOpen() {
		return true, p.menu.HandleKey(msg)
	}
	if in := p.editing(); in != nil {
		return true, in.Update(msg)
	}
	switch msg.String() {
	case "m":
		return true, p.menu.Toggle()
	case "p":
		p.info.SetOpen(!p.info.Open())
		return true, nil
	case "e":
		return true, p.axes[0].Focus()
	}
	return false, nil
}

func (p *componentsPage) axis(id string) int {
	for i, in := range p.axes {
		if in.ID() == id {
			return i
		}
	}
	return -1
}

func (p *componentsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case numberinput.InputMsg:
		if i := p.axis(msg.ID); i >= 0 {
			p.position[i] = msg.Value
			p.last = fmt.Sprintf("input %s = %.2f", axisName(i), msg.Value)
		}
	case numberinput.ChangeMsg:
		if i := p.axis(msg.ID); i >= 0 {
			p.position[i] = msg.Value
			p.last = fmt.Sprintf("change %s = %.2f", axisName(i), msg.Value)
		}
	case timeinput.InputMsg:
		p.last = "input " + msg.Value
	case timeinput.ChangeMsg:
		p.last = "change " + msg.Value
	case popover.CloseMsg:
		p.last = "popover closed"
	case popover.SelectMsg:
		return p.runAction(msg.Action)
	case confirm.Result:
		if msg.Context == actionDelete {
			p.setDeleted(msg.Confirmed)
			if !msg.Confirmed {
				p.last = "delete cancelled"
			}
		}
	}
	return nil
}

func (p *componentsPage) runAction(action string) tea.Cmd {
	p.last = "menu " + action
	switch action {
	case actionReset:
		p.position = [3]float64{}
		p.setDeleted(false)
	case actionCopy:
		p.last = fmt.Sprintf("copied %.2f, %.2f, %.2f", p.position[0], p.position[1], p.position[2])
	case actionEdit:
		return p.axes[0].Focus()
	case actionDelete:
		return confirm.Request("Delete object", "Delete the object? Its inputs are disabled until reset.", actionDelete)
	}
	return nil
}

func (p *componentsPage) setDeleted(deleted bool) {
	p.deleted = deleted
	for _, in := range p.axes {
		in.SetDisabled(deleted)
	}
}

func axisName(i int) string {
	return [...]string{"X", "Y", "Z"}[i]
}

func (p *componentsPage) View(width, height int) string {
	t := p.ctx.Theme()
	s := t.S()
	narrow := layout.IsNarrowMode(width)
	leftW, rightW := layout.ColumnWidths(width, narrow)

	overlays := strings.Join([]string{
		s.Title.Render("Overlays"),
		"",
		p.info.View() + "  " + p.menu.View(),
		"",
		s.Muted.Render("last: " + p.last),
	}, "\n")

	object := "Position"
	if p.deleted {
		object += s.Danger.Render("  (deleted)")
	}
	inputs := strings.Join([]string{
		s.Title.Render(object),
		"",
		p.axes[0].View(),
		p.axes[1].View(),
		p.axes[2].View(),
		"",
		s.Title.Render("Schedule"),
		"",
		p.at.View(),
		p.on.View(),
	}, "\n")

	panel := func(content string, w int) string {
		return t.PanelStyle(false).Width(max(0, w-ui.BorderWidth)).Render(content)
	}
	var out string
	if narrow {
		out = lipgloss.JoinVertical(lipgloss.Left, panel(overlays, leftW), panel(inputs, rightW))
	} else {
		out = lipgloss.JoinHorizontal(lipgloss.Top, panel(overlays, leftW), panel(inputs, rightW))
	}
	return lipgloss.NewStyle().MaxHeight(height).Render(out)
}

// triggerToggle flips a popover when its trigger is pressed.
type triggerToggle struct {
	id  string
	el  host.Element
	pop *popover.Model
}

func (t *triggerToggle) ID() string { return t.id }

func (t *triggerToggle) HandlePointer(ev host.PointerEvent) tea.Cmd {
	if ev.Kind != host.PointerDown || !ev.Primary() {
		return nil
	}
	if r, ok := t.el.Bounds(); ok && r.Contains(ev.Point) {
		t.pop.SetOpen(!t.pop.Open())
	}
	return nil
}
