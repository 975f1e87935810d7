// Package anchor keeps a floating block positioned next to a trigger element
// for as long as it is open.
//
// The block is rendered through a portal on the host root. Its position is
// recomputed on every animation frame, because the trigger can move (resize,
// layout changes) without the floating block being re-rendered. The first
// frame makes the block visible, so it never flashes at a stale location.
package anchor

import (
	"time"

	"github.com/llehouerou/deskboard/internal/ui/geom"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/overlay"
	"github.com/llehouerou/deskboard/internal/ui/portal"
)

// Engine is one anchored overlay. Engines are independent: each one owns its
// portal and its frame loop.
type Engine struct {
	host      *host.Host
	trigger   host.Element
	placement overlay.Placement
	offset    int
	margin    int

	content    string
	portal     *portal.Portal
	frame      host.FrameID
	positioned bool
	armed      bool
}

// New creates a closed engine using the default viewport margin.
func New(h *host.Host) *Engine {
	return &Engine{host: h, margin: overlay.DefaultMargin}
}

// SetMargin sets the minimum distance to the viewport edges.
func (e *Engine) SetMargin(m int) {
	e.margin = max(0, m)
}

// SetContent sets the floating block. While open it is re-rendered in place.
func (e *Engine) SetContent(s string) {
	e.content = s
	if e.portal.Mounted() {
		e.portal.Render(s)
	}
}

// Open mounts the floating block and starts positioning it next to trigger.
// Nothing happens, and false is returned, when the trigger is not rendered.
// Opening an open engine restarts positioning with the new arguments.
func (e *Engine) Open(trigger host.Element, p overlay.Placement, offset int) bool {
	if trigger == nil {
		return false
	}
	if _, ok := trigger.Bounds(); !ok {
		return false
	}

	e.trigger = trigger
	e.placement = p
	e.offset = offset

	e.cancelFrame()
	if !e.portal.Mounted() {
		e.portal = portal.Mount(e.host.Root, e.content)
	}
	e.portal.SetVisible(false)
	e.positioned = false
	e.armed = false
	e.frame = e.host.Frames.Request(e.tick)

	e.host.Log().Debug("overlay open", "placement", p, "offset", offset)
	return true
}

// Close stops the frame loop and unmounts the floating block.
func (e *Engine) Close() {
	if !e.IsOpen() {
		return
	}
	e.cancelFrame()
	e.portal.Unmount()
	e.portal = nil
	e.positioned = false
	e.armed = false
	e.host.Log().Debug("overlay close")
}

// IsOpen reports whether the floating block is mounted.
func (e *Engine) IsOpen() bool {
	return e.portal.Mounted()
}

// Visible reports whether the block has been positioned and paints.
func (e *Engine) Visible() bool {
	return e.IsOpen() && e.positioned
}

// Position returns the last computed top-left cell.
func (e *Engine) Position() (geom.Point, bool) {
	if !e.Visible() {
		return geom.Point{}, false
	}
	r, _ := e.portal.Bounds()
	return r.Origin(), true
}

// Bounds returns the floating block rectangle. It implements host.Element.
func (e *Engine) Bounds() (geom.Rect, bool) {
	if !e.Visible() {
		return geom.Rect{}, false
	}
	return e.portal.Bounds()
}

// HandlePointer closes the overlay on a press outside both the trigger and the
// floating block, and reports whether it did. Presses are ignored until the
// first frame after Open, so the press that opened the overlay never closes it.
func (e *Engine) HandlePointer(ev host.PointerEvent) bool {
	if !e.Outside(ev) {
		return false
	}
	e.Close()
	return true
}

// Outside reports whether ev is a press that would close the overlay, without
// closing it. Owners that decide the open state themselves use it.
func (e *Engine) Outside(ev host.PointerEvent) bool {
	if ev.Kind != host.PointerDown || !e.IsOpen() || !e.armed {
		return false
	}
	if r, ok := e.portal.Bounds(); ok && r.Contains(ev.Point) {
		return false
	}
	if r, ok := e.trigger.Bounds(); ok && r.Contains(ev.Point) {
		return false
	}
	return true
}

// Reposition recomputes the position immediately. It reports false when the
// trigger has no bounds, in which case the last position is kept.
func (e *Engine) Reposition() bool {
	if !e.IsOpen() {
		return false
	}
	anchor, ok := e.trigger.Bounds()
	if !ok {
		return false
	}
	pos := overlay.Compute(anchor, e.portal.Size(), e.host.Viewport(), e.placement, e.offset, e.margin)
	e.portal.MoveTo(pos)
	e.portal.SetVisible(true)
	e.positioned = true
	return true
}

func (e *Engine) tick(time.Time) {
	e.frame = 0
	if !e.IsOpen() {
		return
	}
	e.Reposition()
	e.armed = true
	e.frame = e.host.Frames.Request(e.tick)
}

func (e *Engine) cancelFrame() {
	if e.frame != 0 {
		e.host.Frames.Cancel(e.frame)
		e.frame = 0
	}
}
