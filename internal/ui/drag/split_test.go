package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/deskboard/internal/ui/geom"
)

func TestSplitPercent(t *testing.T) {
	container := geom.Rect{X: 0, Y: 0, W: 500, H: 200}

	tests := []struct {
		name string
		p    geom.Point
		dir  Direction
		min  int
		want float64
	}{
		{"clamps to min percent", geom.Point{X: 10}, Horizontal, 50, 10},
		{"clamps to max percent", geom.Point{X: 495}, Horizontal, 50, 90},
		{"free range", geom.Point{X: 250}, Horizontal, 50, 50},
		{"vertical axis", geom.Point{X: 400, Y: 50}, Vertical, 10, 25},
		{"min larger than half", geom.Point{X: 400}, Horizontal, 300, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SplitPercent(tt.p, container, tt.dir, tt.min), 1e-9)
		})
	}
}

func TestSplitPercent_Offset(t *testing.T) {
	container := geom.Rect{X: 20, Y: 5, W: 100, H: 10}
	assert.InDelta(t, 30, SplitPercent(geom.Point{X: 50, Y: 0}, container, Horizontal, 0), 1e-9)
	assert.InDelta(t, 50, SplitPercent(geom.Point{}, geom.Rect{}, Horizontal, 5), 1e-9)
}

func TestSplitPercent_StaysInBounds(t *testing.T) {
	for _, size := range []int{40, 80, 500} {
		container := geom.Rect{X: 3, Y: 2, W: size, H: size / 2}
		for _, dir := range []Direction{Horizontal, Vertical} {
			extent := container.W
			if dir == Vertical {
				extent = container.H
			}
			lo := MinPercent(5, extent)
			for x := -20; x < size+20; x += 3 {
				p := SplitPercent(geom.Point{X: x, Y: x}, container, dir, 5)
				assert.GreaterOrEqual(t, p, lo)
				assert.LessOrEqual(t, p, 100-lo)
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("Vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, d)
	assert.Equal(t, "vertical", d.String())

	_, err = ParseDirection("diagonal")
	assert.Error(t, err)
}
