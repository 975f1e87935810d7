package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapture_Exclusive(t *testing.T) {
	var c Capture

	assert.True(t, c.Set("split-1"))
	assert.False(t, c.Set("list-2"), "another owner holds the capture")
	assert.True(t, c.Set("split-1"), "re-capture by the owner is fine")

	owner, ok := c.Owner()
	assert.True(t, ok)
	assert.Equal(t, "split-1", owner)

	c.Release("list-2")
	assert.True(t, c.Holds("split-1"), "release by a non-owner is a no-op")

	c.Release("split-1")
	_, ok = c.Owner()
	assert.False(t, ok)
	assert.False(t, c.Holds(""))
}

func TestDocument_DragPresentation(t *testing.T) {
	var d Document

	d.BeginDrag(CursorEWResize)
	assert.Equal(t, CursorEWResize, d.Cursor())
	assert.True(t, d.SelectionSuppressed())
	assert.True(t, d.Dragging())

	d.EndDrag()
	assert.Equal(t, CursorDefault, d.Cursor())
	assert.False(t, d.SelectionSuppressed())
	assert.False(t, d.Dragging())

	d.EndDrag()
	assert.False(t, d.Dragging(), "extra EndDrag is harmless")
}
