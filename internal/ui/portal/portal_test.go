package portal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/deskboard/internal/ui/geom"
)

func base(w, h int) string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(".", w)
	}
	return strings.Join(lines, "\n")
}

func TestMount_RendersIntoContainer(t *testing.T) {
	root := NewContainer()
	p := Mount(root, "hey\nyou")

	require.True(t, p.Mounted())
	assert.Equal(t, 1, root.Len())
	assert.Equal(t, geom.Size{W: 3, H: 2}, p.Size())

	p.MoveTo(geom.Point{X: 2, Y: 1})
	got := root.Compose(base(8, 3), 8, 3)
	assert.Equal(t, "........\n..hey...\n..you...", got)

	r, ok := p.Bounds()
	assert.True(t, ok)
	assert.Equal(t, geom.Rect{X: 2, Y: 1, W: 3, H: 2}, r)
}

func TestPortal_RenderUpdatesSameElement(t *testing.T) {
	root := NewContainer()
	p := Mount(root, "a")
	p.Render("bb")

	assert.Equal(t, 1, root.Len())
	assert.Equal(t, "bb", p.Content())
	assert.Equal(t, 2, p.Renders())
	assert.Equal(t, "bb....", root.Compose(base(6, 1), 6, 1))
}

func TestPortal_Unmount(t *testing.T) {
	root := NewContainer()
	p := Mount(root, "x")
	p.Unmount()

	assert.False(t, p.Mounted())
	assert.Equal(t, 0, root.Len())
	assert.Equal(t, "", p.Content())
	assert.Equal(t, "....", root.Compose(base(4, 1), 4, 1))

	p.Render("y")
	assert.Equal(t, "", p.Content(), "unmounted portal ignores renders")
	p.Unmount() // second unmount is harmless

	_, ok := p.Bounds()
	assert.False(t, ok)
}

func TestPortal_HiddenDoesNotPaint(t *testing.T) {
	root := NewContainer()
	p := Mount(root, "x")
	p.SetVisible(false)

	assert.False(t, p.Visible())
	assert.Equal(t, "...", root.Compose(base(3, 1), 3, 1))
}

func TestContainer_MountOrderIsPaintOrder(t *testing.T) {
	root := NewContainer()
	Mount(root, "aaa")
	top := Mount(root, "b")
	top.MoveTo(geom.Point{X: 1, Y: 0})

	assert.Equal(t, "aba.", root.Compose(base(4, 1), 4, 1))
}

func TestContainers_AreIndependent(t *testing.T) {
	a, b := NewContainer(), NewContainer()
	Mount(a, "x")
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestMount_NilTargetUsesDocument(t *testing.T) {
	p := Mount(nil, "doc")
	t.Cleanup(p.Unmount)

	require.True(t, p.Mounted())
	assert.Same(t, Document, p.Container())
	assert.Equal(t, "doc", Document.Compose("...", 3, 1))
}

func TestPortal_MoveToContainer(t *testing.T) {
	first, second := NewContainer(), NewContainer()
	p := Mount(first, "ab")
	p.MoveTo(geom.Point{X: 1, Y: 0})
	other := Mount(second, "z")

	p.MoveToContainer(second)

	assert.Same(t, second, p.Container())
	assert.Equal(t, 0, first.Len())
	assert.Equal(t, 2, second.Len())
	assert.Equal(t, "....", first.Compose(base(4, 1), 4, 1))
	assert.Equal(t, "zab.", second.Compose(base(4, 1), 4, 1), "moved element paints last")
	assert.Equal(t, 1, p.Renders(), "content is kept, not re-rendered")

	p.MoveToContainer(second)
	assert.Equal(t, 2, second.Len())

	p.Unmount()
	p.MoveToContainer(first)
	assert.False(t, p.Mounted())
	assert.Equal(t, 0, first.Len())
	assert.Equal(t, 1, second.Len())
	other.Unmount()
}
