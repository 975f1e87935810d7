// Package portal renders content at a container other than the logical parent
// of the component that owns it. Overlays and drag ghosts mount a portal on the
// screen root so they paint above the regular layout.
package portal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/deskboard/internal/ui/geom"
	"github.com/llehouerou/deskboard/internal/ui/overlay"
)

// Container is a render target that portals attach to. It paints its
// mounted portals, in mount order, over a base view.
type Container struct {
	portals []*Portal
}

// Document is the container portals attach to when no target is given.
// Hosts paint it after their own root.
var Document = NewContainer()

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Len returns the number of mounted portals.
func (c *Container) Len() int {
	return len(c.portals)
}

// Compose paints every visible portal over base.
func (c *Container) Compose(base string, width, _ int) string {
	for _, p := range c.portals {
		if !p.visible || p.content == "" {
			continue
		}
		base = overlay.ComposeAt(base, p.content, p.pos, width)
	}
	return base
}

func (c *Container) attach(p *Portal) {
	c.portals = append(c.portals, p)
}

func (c *Container) detach(p *Portal) {
	for i, q := range c.portals {
		if q == p {
			c.portals = append(c.portals[:i], c.portals[i+1:]...)
			return
		}
	}
}

// Portal is a detached element mounted into a container.
type Portal struct {
	container *Container
	content   string
	size      geom.Size
	pos       geom.Point
	visible   bool
	renders   int
}

// Mount attaches a new element to target and renders content into it.
// A nil target means Document. The element starts visible at the container
// origin.
func Mount(target *Container, content string) *Portal {
	if target == nil {
		target = Document
	}
	p := &Portal{container: target, visible: true}
	target.attach(p)
	p.Render(content)
	return p
}

// Render replaces the portal content. Rendering an unmounted portal does nothing.
func (p *Portal) Render(content string) {
	if !p.Mounted() {
		return
	}
	p.content = content
	p.size = measure(content)
	p.renders++
}

// Unmount clears the content and removes the element from its container.
func (p *Portal) Unmount() {
	if p.container == nil {
		return
	}
	p.container.detach(p)
	p.container = nil
	p.content = ""
	p.size = geom.Size{}
}

// MoveToContainer detaches the element and attaches it to c, keeping its
// content and position. It paints last in its new container. A nil c means
// Document; an unmounted portal stays unmounted.
func (p *Portal) MoveToContainer(c *Container) {
	if !p.Mounted() {
		return
	}
	if c == nil {
		c = Document
	}
	if c == p.container {
		return
	}
	p.container.detach(p)
	p.container = c
	c.attach(p)
}

// Container returns the container the element is attached to.
func (p *Portal) Container() *Container {
	if !p.Mounted() {
		return nil
	}
	return p.container
}

// Mounted reports whether the portal is attached to a container.
func (p *Portal) Mounted() bool {
	return p != nil && p.container != nil
}

// MoveTo sets the top-left cell of the element.
func (p *Portal) MoveTo(pt geom.Point) {
	p.pos = pt
}

// SetVisible shows or hides the element without unmounting it.
func (p *Portal) SetVisible(v bool) {
	p.visible = v
}

// Visible reports whether the element paints.
func (p *Portal) Visible() bool {
	return p.Mounted() && p.visible
}

// Size returns the measured size of the current content.
func (p *Portal) Size() geom.Size {
	return p.size
}

// Bounds returns the element rectangle. It implements host.Element.
func (p *Portal) Bounds() (geom.Rect, bool) {
	if !p.Mounted() {
		return geom.Rect{}, false
	}
	return geom.At(p.pos, p.size), true
}

// Content returns the last rendered content.
func (p *Portal) Content() string {
	return p.content
}

// Renders returns how many times content was rendered into the element.
func (p *Portal) Renders() int {
	return p.renders
}

func measure(content string) geom.Size {
	if content == "" {
		return geom.Size{}
	}
	return geom.Size{W: lipgloss.Width(content), H: lipgloss.Height(content)}
}
