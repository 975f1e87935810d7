package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/llehouerou/deskboard/internal/ui"
	"github.com/llehouerou/deskboard/internal/ui/layout"
	"github.com/llehouerou/deskboard/internal/ui/reorder"
)

// Scene returns the initial outliner tree.
func Scene() []reorder.Item {
	return []reorder.Item{
		{ID: "meshes", Label: "Meshes", Icon: "folder", Children: []reorder.Item{
			{ID: "cube", Label: "Cube", Icon: "deployed_code"},
			{ID: "sphere", Label: "Sphere", Icon: "deployed_code"},
		}},
		{ID: "lights", Label: "Lights", Icon: "lightbulb"},
		{ID: "cameras", Label: "Cameras", Icon: "videocam"},
	}
}

// outlinerPage owns a scene tree and renders it through a controlled
// reorderable tree.
type outlinerPage struct {
	ctx   *Context
	items []reorder.Item
	tree  *reorder.Model
	added int
	moves int
	newID func() string
}

func newOutlinerPage(ctx *Context) *outlinerPage {
	p := &outlinerPage{ctx: ctx, items: Scene(), newID: uuid.NewString}
	p.tree = reorder.New(ctx.Host, nil,
		reorder.WithTree(true),
		reorder.WithItemsFrom(func() []reorder.Item { return p.items }),
	)
	return p
}

func (p *outlinerPage) Route() string { return RouteOutliner }

func (p *outlinerPage) Title() string { return "Outliner" }

func (p *outlinerPage) HelpContexts() []string { return []string{"global", "outliner"} }

func (p *outlinerPage) Targets() []PointerTarget {
	return []PointerTarget{p.tree}
}

func (p *outlinerPage) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if _, dragging := p.tree.Dragging(); dragging {
		return false, nil
	}
	switch msg.String() {
	case "a":
		p.add()
	case "r":
		p.items = Scene()
		p.moves = 0
		p.ctx.Log().Debug("outliner reset")
	case "c":
		p.collapse(p.items)
	default:
		return false, nil
	}
	return true, nil
}

// add appends an empty object at the top level.
func (p *outlinerPage) add() {
	p.added++
	it := reorder.Item{
		ID:    p.newID(),
		Label: fmt.Sprintf("Empty %d", p.added),
		Icon:  "deployed_code",
	}
	p.items = append(reorder.Clone(p.items), it)
	p.ctx.Log().Debug("outliner add", "id", it.ID)
}

func (p *outlinerPage) collapse(items []reorder.Item) {
	for _, it := range items {
		if it.HasChildren() {
			if p.tree.IsExpanded(it) {
				p.tree.Toggle(it.ID)
			}
			p.collapse(it.Children)
		}
	}
}

func (p *outlinerPage) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(reorder.ReorderMsg); ok && msg.ID == p.tree.ID() {
		p.items = msg.Items
		p.moves++
	}
	return nil
}

func (p *outlinerPage) View(width, height int) string {
	t := p.ctx.Theme()
	s := t.S()
	narrow := layout.IsNarrowMode(width)
	leftW, rightW := layout.ColumnWidths(width, narrow)

	listW := max(0, leftW-ui.BorderWidth)
	p.tree.SetSize(listW, max(0, height-ui.PanelOverhead))
	list := s.Title.Render("Scene") + "\n" + p.tree.View()

	ids := reorder.IDs(p.items)
	var b strings.Builder
	b.WriteString(s.Title.Render("Order"))
	b.WriteString("\n")
	p.writeOrder(&b, p.items, 0)
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("%s objects · %s",
		humanize.Comma(int64(len(ids))), plural(p.moves, "move"))))
	if dragged, ok := p.tree.Dragging(); ok {
		over, pos := p.tree.Target()
		b.WriteString("\n")
		b.WriteString(s.Warning.Render(fmt.Sprintf("dragging %s → %s (%s)", dragged, over, pos)))
	}

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

func (p *outlinerPage) writeOrder(b *strings.Builder, items []reorder.Item, depth int) {
	for _, it := range items {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(it.Label)
		b.WriteString("\n")
		p.writeOrder(b, it.Children, depth+1)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(int64(n)) + " " + word + "s"
}
