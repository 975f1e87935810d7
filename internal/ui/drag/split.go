package drag

import (
	"fmt"
	"strings"

	"github.com/llehouerou/deskboard/internal/ui/geom"
)

// Direction is the axis a split panel divides.
type Direction int

const (
	Horizontal Direction = iota // panes side by side
	Vertical                    // panes stacked
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection parses "horizontal" or "vertical".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown direction %q", s)
	}
}

// MinPercent converts a minimum pane size into a percentage of size.
func MinPercent(minSize, size int) float64 {
	if size <= 0 {
		return 0
	}
	return float64(minSize) / float64(size) * 100
}

// SplitPercent returns the pointer position as a percentage of the
// container extent along dir, clamped so both panes keep minSize cells.
// When minSize exceeds half the container the lower bound wins.
func SplitPercent(p geom.Point, container geom.Rect, dir Direction, minSize int) float64 {
	offset, size := p.X-container.X, container.W
	if dir == Vertical {
		offset, size = p.Y-container.Y, container.H
	}
	if size <= 0 {
		return 50
	}
	lo := MinPercent(minSize, size)
	return geom.ClampFloat(float64(offset)/float64(size)*100, lo, 100-lo)
}
