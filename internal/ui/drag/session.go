// Package drag holds the pointer-drag math shared by the value inputs, the
// split panel and the reorderable list, plus the session bookkeeping that
// captures the pointer and overrides the document cursor while a drag runs.
package drag

import (
	"github.com/llehouerou/deskboard/internal/ui/geom"
	"github.com/llehouerou/deskboard/internal/ui/host"
)

// Session is one press-to-release interaction. The zero value is idle.
type Session[T any] struct {
	owner      string
	start      geom.Point
	startValue T
	active     bool
}

// Begin starts a session for owner at point at with start value v. It
// captures the pointer and applies cursor c with selection suppressed. Begin
// fails when a session is already active or another owner holds the capture.
func (s *Session[T]) Begin(h *host.Host, owner string, at geom.Point, v T, c host.Cursor) bool {
	if s.active || !h.Capture.Set(owner) {
		return false
	}
	h.Document.BeginDrag(c)
	*s = Session[T]{owner: owner, start: at, startValue: v, active: true}
	h.Log().Debug("drag begin", "owner", owner, "x", at.X, "y", at.Y)
	return true
}

// End releases the capture and restores the document. It reports whether a
// session was active.
func (s *Session[T]) End(h *host.Host) bool {
	if !s.active {
		return false
	}
	h.Capture.Release(s.owner)
	h.Document.EndDrag()
	h.Log().Debug("drag end", "owner", s.owner)
	*s = Session[T]{}
	return true
}

// Active reports whether the session is between press and release.
func (s *Session[T]) Active() bool { return s.active }

// Start returns the press point.
func (s *Session[T]) Start() geom.Point { return s.start }

// StartValue returns the value recorded at press time.
func (s *Session[T]) StartValue() T { return s.startValue }

// DeltaX returns the horizontal distance from the press point to p.
func (s *Session[T]) DeltaX(p geom.Point) int { return p.X - s.start.X }
