package overlay

import (
	"fmt"
	"strings"
)

// Side is the side of the anchor the floating block is placed on.
type Side int

const (
	SideBottom Side = iota
	SideTop
	SideLeft
	SideRight
)

// Align is the alignment along the secondary axis.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

// Placement is a side plus an alignment, e.g. "bottom-start".
type Placement struct {
	Side  Side
	Align Align
}

// The twelve placements.
var (
	Top         = Placement{SideTop, AlignCenter}
	TopStart    = Placement{SideTop, AlignStart}
	TopEnd      = Placement{SideTop, AlignEnd}
	Bottom      = Placement{SideBottom, AlignCenter}
	BottomStart = Placement{SideBottom, AlignStart}
	BottomEnd   = Placement{SideBottom, AlignEnd}
	Left        = Placement{SideLeft, AlignCenter}
	LeftStart   = Placement{SideLeft, AlignStart}
	LeftEnd     = Placement{SideLeft, AlignEnd}
	Right       = Placement{SideRight, AlignCenter}
	RightStart  = Placement{SideRight, AlignStart}
	RightEnd    = Placement{SideRight, AlignEnd}
)

// Placements lists every placement, in a stable order.
var Placements = []Placement{
	Top, TopStart, TopEnd,
	Bottom, BottomStart, BottomEnd,
	Left, LeftStart, LeftEnd,
	Right, RightStart, RightEnd,
}

var sideNames = [...]string{SideBottom: "bottom", SideTop: "top", SideLeft: "left", SideRight: "right"}

func (p Placement) String() string {
	if p.Side < SideBottom || p.Side > SideRight {
		return fmt.Sprintf("Placement(%d,%d)", p.Side, p.Align)
	}
	s := sideNames[p.Side]
	switch p.Align {
	case AlignStart:
		s += "-start"
	case AlignEnd:
		s += "-end"
	}
	return s
}

// Vertical reports whether the block sits above or below the anchor.
func (p Placement) Vertical() bool {
	return p.Side == SideTop || p.Side == SideBottom
}

// ParsePlacement parses names like "top", "left-end" or "bottom-start".
func ParsePlacement(s string) (Placement, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Placements {
		if p.String() == name {
			return p, nil
		}
	}
	return Placement{}, fmt.Errorf("unknown placement %q", s)
}
