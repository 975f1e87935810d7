package testutil

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/deskboard/internal/ui/geom"
	"github.com/llehouerou/deskboard/internal/ui/host"
)

type pingMsg struct{ n int }

func TestCollect_FlattensBatches(t *testing.T) {
	ping := func(n int) tea.Cmd { return func() tea.Msg { return pingMsg{n} } }

	msgs := Collect(tea.Batch(ping(1), nil, tea.Batch(ping(2), ping(3))))

	assert.Len(t, msgs, 3)
	first, ok := Find[pingMsg](msgs)
	assert.True(t, ok)
	assert.Equal(t, 1, first.n)
	assert.Nil(t, Collect(nil))
}

func TestKey(t *testing.T) {
	assert.Equal(t, tea.KeyEnter, Key("enter").Type)
	assert.Equal(t, "x", Key("x").String())
}

func TestHarness_Frame(t *testing.T) {
	h := NewHarness()
	calls := 0
	h.Host.Frames.Request(func(_ time.Time) { calls++ })

	h.Frames(3)

	assert.Equal(t, 1, calls)
	assert.Equal(t, geom.Size{W: 120, H: 40}, h.Host.Viewport())
	assert.Equal(t, host.PointerDown, Press(1, 2).Kind)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, Release(1, 2).Point)
}
