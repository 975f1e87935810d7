package reorder

import "github.com/llehouerou/deskboard/internal/ui/geom"

// DropPosition is where a dragged item lands relative to the hovered row.
type DropPosition int

const (
	None DropPosition = iota
	Before
	After
	Onto // as the last child, tree mode only
)

func (p DropPosition) String() string {
	switch p {
	case Before:
		return "before"
	case After:
		return "after"
	case Onto:
		return "onto"
	default:
		return "none"
	}
}

// Classify maps pointer row y inside row to a drop position. The pointer is
// taken at the centre of its cell. In tree mode the top third means before,
// the bottom third after and the middle onto, unless canNest is false, in
// which case the middle splits at the midpoint. Flat lists always split at the
// midpoint.
func Classify(row geom.Rect, y int, tree, canNest bool) DropPosition {
	if row.H <= 0 || y < row.Y || y >= row.Bottom() {
		return None
	}
	f := (float64(y-row.Y) + 0.5) / float64(row.H)

	if tree {
		switch {
		case f < 1.0/3:
			return Before
		case f > 2.0/3:
			return After
		case canNest:
			return Onto
		}
	}
	if f < 0.5 {
		return Before
	}
	return After
}
