package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/deskboard/internal/ui/geom"
)

func TestClassify_Tree(t *testing.T) {
	row := geom.Rect{X: 0, Y: 9, W: 40, H: TreeRowHeight}

	assert.Equal(t, Before, Classify(row, 9, true, true))
	assert.Equal(t, Onto, Classify(row, 10, true, true))
	assert.Equal(t, After, Classify(row, 11, true, true))

	// a descendant cannot be nested into, the middle falls back to halves
	assert.Equal(t, After, Classify(row, 10, true, false))
	assert.Equal(t, Before, Classify(row, 9, true, false))
}

func TestClassify_TallRows(t *testing.T) {
	row := geom.Rect{Y: 0, H: 6}
	want := []DropPosition{Before, Before, Onto, Onto, After, After}
	for y, pos := range want {
		assert.Equal(t, pos, Classify(row, y, true, true), "y=%d", y)
	}

	noNest := []DropPosition{Before, Before, Before, After, After, After}
	for y, pos := range noNest {
		assert.Equal(t, pos, Classify(row, y, true, false), "y=%d", y)
	}
}

func TestClassify_Flat(t *testing.T) {
	row := geom.Rect{Y: 4, H: FlatRowHeight}
	assert.Equal(t, Before, Classify(row, 4, false, true))
	assert.Equal(t, After, Classify(row, 5, false, true))
}

func TestClassify_OutsideRow(t *testing.T) {
	row := geom.Rect{Y: 4, H: 3}
	assert.Equal(t, None, Classify(row, 3, true, true))
	assert.Equal(t, None, Classify(row, 7, true, true))
	assert.Equal(t, None, Classify(geom.Rect{}, 0, true, true))
}

func TestDropPosition_String(t *testing.T) {
	assert.Equal(t, "onto", Onto.String())
	assert.Equal(t, "none", None.String())
}
