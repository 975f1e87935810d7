package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/deskboard/internal/ui"
	"github.com/llehouerou/deskboard/internal/ui/drag"
	"github.com/llehouerou/deskboard/internal/ui/layout"
	"github.com/llehouerou/deskboard/internal/ui/numberinput"
	"github.com/llehouerou/deskboard/internal/ui/reorder"
	"github.com/llehouerou/deskboard/internal/ui/timeinput"
)

// slot is one heating schedule entry.
type slot struct {
	id   string
	at   *timeinput.Model
	temp *numberinput.Model
}

// schedulesPage reorders heating slots in a flat list and edits each slot's
// time and temperature.
type schedulesPage struct {
	ctx   *Context
	slots []slot
	list  *reorder.Model
}

var defaultSlots = []struct {
	at   string
	temp float64
}{
	{"06:30", 20.5},
	{"08:00", 18},
	{"17:30", 21},
	{"22:00", 16.5},
}

func newSchedulesPage(ctx *Context) *schedulesPage {
	p := &schedulesPage{ctx: ctx}
	for i, d := range defaultSlots {
		p.slots = append(p.slots, slot{
			id: fmt.Sprintf("slot-%d", i+1),
			at: timeinput.New(ctx.Host, "At",
				timeinput.WithKind(drag.KindTime),
				timeinput.WithDefault(d.at),
			),
			temp: numberinput.New(ctx.Host, "Temp",
				numberinput.WithDefault(d.temp),
				numberinput.WithMin(5),
				numberinput.WithMax(30),
				numberinput.WithStep(0.5),
				numberinput.WithPrecision(1),
				numberinput.WithWidth(6),
			),
		})
	}
	p.list = reorder.New(ctx.Host, nil, reorder.WithItemsFrom(p.items))
	return p
}

// items derives the list rows from the slots.
func (p *schedulesPage) items() []reorder.Item {
	out := make([]reorder.Item, len(p.slots))
	for i, s := range p.slots {
		out[i] = reorder.Item{
			ID:    s.id,
			Label: fmt.Sprintf("%s  %s  %s°", humanize.Ordinal(i+1), s.at.Value(), humanize.FtoaWithDigits(s.temp.Value(), 1)),
			Icon:  "schedule",
		}
	}
	return out
}

// Order returns the slot ids in list order.
func (p *schedulesPage) Order() []string {
	ids := make([]string, len(p.slots))
	for i, s := range p.slots {
		ids[i] = s.id
	}
	return ids
}

func (p *schedulesPage) Route() string { return RouteSchedules }

func (p *schedulesPage) Title() string { return "Schedules" }

func (p *schedulesPage) HelpContexts() []string { return []string{"global", "input"} }

func (p *schedulesPage) Targets() []PointerTarget {
	out := []PointerTarget{p.list}
	for _, s := range p.slots {
		out = append(out, s.at, s.temp)
	}
	return out
}

func (p *schedulesPage) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	for _, s := range p.slots {
		if s.at.Editing() {
			return true, s.at.Update(msg)
		}
		if s.temp.Editing() {
			return true, s.temp.Update(msg)
		}
	}
	return false, nil
}

func (p *schedulesPage) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(reorder.ReorderMsg); ok && msg.ID == p.list.ID() {
		byID := make(map[string]slot, len(p.slots))
		for _, s := range p.slots {
			byID[s.id] = s
		}
		next := make([]slot, 0, len(p.slots))
		for _, it := range msg.Items {
			if s, ok := byID[it.ID]; ok {
				next = append(next, s)
			}
		}
		if len(next) == len(p.slots) {
			p.slots = next
		}
	}
	return nil
}

func (p *schedulesPage) average() float64 {
	if len(p.slots) == 0 {
		return 0
	}
	var sum float64
	for _, s := range p.slots {
		sum += s.temp.Value()
	}
	return sum / float64(len(p.slots))
}

func (p *schedulesPage) View(width, height int) string {
	t := p.ctx.Theme()
	s := t.S()
	narrow := layout.IsNarrowMode(width)
	leftW, rightW := layout.ColumnWidths(width, narrow)

	p.list.SetSize(max(0, leftW-ui.BorderWidth), max(0, height-ui.PanelOverhead))
	list := s.Title.Render("Order") + "\n" + p.list.View()

	var b strings.Builder
	b.WriteString(s.Title.Render("Slots"))
	b.WriteString("\n")
	for i, sl := range p.slots {
		b.WriteString(s.Muted.Render(fmt.Sprintf("%-4s", humanize.Ordinal(i+1))))
		b.WriteString(sl.at.View())
		b.WriteString("  ")
		b.WriteString(sl.temp.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("%d slots · average %s°",
		len(p.slots), humanize.FtoaWithDigits(p.average(), 1))))

	panel := func(content string, w int) string {
		return t.PanelStyle(false).Width(max(0, w-ui.BorderWidth)).Render(content)
	}
	var out string
	if narrow {
		out = lipgloss.JoinVertical(lipgloss.Left, panel(list, leftW), panel(b.String(), rightW))
	} else {
		out = lipgloss.JoinHorizontal(lipgloss.Top, panel(list, leftW), panel(b.String(), rightW))
	}
	return lipgloss.NewStyle().MaxHeight(height).Render(out)
}
