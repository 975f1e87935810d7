package overlay

import "github.com/llehouerou/deskboard/internal/ui/geom"

// DefaultMargin is the minimum distance between a floating block and the
// viewport edges.
const DefaultMargin = 8

// ComputeUnclamped places floating next to anchor on the placement's side,
// offset cells away, aligned on the other axis. The result may overflow the
// viewport.
func ComputeUnclamped(anchor geom.Rect, floating geom.Size, p Placement, offset int) geom.Point {
	var pos geom.Point

	switch p.Side {
	case SideTop:
		pos.Y = anchor.Y - floating.H - offset
	case SideBottom:
		pos.Y = anchor.Bottom() + offset
	case SideLeft:
		pos.X = anchor.X - floating.W - offset
	case SideRight:
		pos.X = anchor.Right() + offset
	}

	if p.Vertical() {
		switch p.Align {
		case AlignCenter:
			pos.X = anchor.X + (anchor.W-floating.W)/2
		case AlignStart:
			pos.X = anchor.X
		case AlignEnd:
			pos.X = anchor.Right() - floating.W
		}
	} else {
		switch p.Align {
		case AlignCenter:
			pos.Y = anchor.Y + (anchor.H-floating.H)/2
		case AlignStart:
			pos.Y = anchor.Y
		case AlignEnd:
			pos.Y = anchor.Bottom() - floating.H
		}
	}

	return pos
}

// Compute returns the top-left cell of the floating block, shifted so it stays
// at least margin cells inside the viewport. Clamping wins over alignment.
// When the block is larger than the viewport allows, it sticks to the top/left
// margin.
func Compute(anchor geom.Rect, floating geom.Size, viewport geom.Size, p Placement, offset, margin int) geom.Point {
	pos := ComputeUnclamped(anchor, floating, p, offset)
	pos.X = geom.Clamp(pos.X, margin, viewport.W-floating.W-margin)
	pos.Y = geom.Clamp(pos.Y, margin, viewport.H-floating.H-margin)
	return pos
}
