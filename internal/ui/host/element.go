package host

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/deskboard/internal/ui/geom"
)

// Element is a rendered screen element whose bounding box can be read.
// Bounds reports false while the element is not on screen.
type Element interface {
	Bounds() (geom.Rect, bool)
}

// Box is an element with explicitly assigned geometry.
// Layout code that already knows where it drew something uses it directly.
type Box struct {
	Rect     geom.Rect
	Rendered bool
}

// NewBox returns a rendered box at r.
func NewBox(r geom.Rect) *Box {
	return &Box{Rect: r, Rendered: true}
}

// Bounds implements Element.
func (b *Box) Bounds() (geom.Rect, bool) {
	if b == nil || !b.Rendered {
		return geom.Rect{}, false
	}
	return b.Rect, true
}

// Missing is an element that has not been rendered.
type Missing struct{}

// Bounds implements Element.
func (Missing) Bounds() (geom.Rect, bool) { return geom.Rect{}, false }

// Zones wraps a bubblezone manager. Components mark their output during View
// and the application scans the final frame, after which every marked id
// resolves to its on-screen rectangle.
type Zones struct {
	m *zone.Manager
}

// NewZones creates a zone manager.
func NewZones() *Zones {
	return &Zones{m: zone.New()}
}

// Mark wraps s in zone markers for id.
func (z *Zones) Mark(id, s string) string {
	return z.m.Mark(id, s)
}

// Scan strips the markers from a full frame and records zone positions.
func (z *Zones) Scan(view string) string {
	return z.m.Scan(view)
}

// Close stops the manager.
func (z *Zones) Close() {
	z.m.Close()
}

// Element returns an element that resolves id on every Bounds call, so it
// follows the zone when the layout moves it.
func (z *Zones) Element(id string) Element {
	return zoneElement{z: z, id: id}
}

type zoneElement struct {
	z  *Zones
	id string
}

func (e zoneElement) Bounds() (geom.Rect, bool) {
	info := e.z.m.Get(e.id)
	if info == nil || info.IsZero() {
		return geom.Rect{}, false
	}
	return zoneRect(info.StartX, info.StartY, info.EndX, info.EndY), true
}

// zoneRect converts inclusive zone corners into a rectangle.
func zoneRect(startX, startY, endX, endY int) geom.Rect {
	x0, x1 := min(startX, endX), max(startX, endX)
	y0, y1 := min(startY, endY), max(startY, endY)
	return geom.Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}
