package timeinput

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/deskboard/internal/ui/drag"
	"github.com/llehouerou/deskboard/internal/ui/geom"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/testutil"
)

func newInput(t *testing.T, opts ...Option) (*testutil.Harness, *Model) {
	t.Helper()
	h := testutil.NewHarness()
	label := host.NewBox(geom.Rect{X: 0, Y: 0, W: 6, H: 1})
	field := host.NewBox(geom.Rect{X: 7, Y: 0, W: 17, H: 1})
	opts = append([]Option{WithElements(label, field)}, opts...)
	return h, New(h.Host, "Start", opts...)
}

func TestTimeInput_WrapsPastMidnight(t *testing.T) {
	_, m := newInput(t, WithDefault("23:50"))

	m.HandlePointer(testutil.Press(2, 0))
	require.True(t, m.Dragging())

	in, ok := testutil.Find[InputMsg](testutil.Collect(m.HandlePointer(testutil.Move(22, 0))))
	require.True(t, ok)
	assert.Equal(t, "00:10", in.Value)

	change, ok := testutil.Find[ChangeMsg](testutil.Collect(m.HandlePointer(testutil.Release(22, 0))))
	require.True(t, ok)
	assert.Equal(t, "00:10", change.Value)
	assert.Equal(t, "00:10", m.Value())
}

func TestTimeInput_NoChangeWhenUnmoved(t *testing.T) {
	h, m := newInput(t, WithDefault("08:00"))

	m.HandlePointer(testutil.Press(2, 0))
	m.HandlePointer(testutil.Move(12, 0))
	m.HandlePointer(testutil.Move(2, 0))

	assert.Nil(t, m.HandlePointer(testutil.Release(2, 0)))
	assert.False(t, m.Dragging())
	assert.Equal(t, host.CursorDefault, h.Host.Document.Cursor())
}

func TestTimeInput_DateDoesNotWrap(t *testing.T) {
	_, m := newInput(t, WithKind(drag.KindDate), WithDefault("2024-12-30"))

	m.HandlePointer(testutil.Press(2, 0))
	m.HandlePointer(testutil.Move(5, 0))

	assert.Equal(t, "2025-01-02", m.Value())
}

func TestTimeInput_PrecisionModifier(t *testing.T) {
	_, m := newInput(t, WithDefault("10:00"))

	m.HandlePointer(testutil.Press(2, 0))
	ev := testutil.Move(42, 0)
	ev.Alt = true
	m.HandlePointer(ev)

	assert.Equal(t, "10:10", m.Value())
}

func TestTimeInput_DefaultFromClock(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 6, 1, 9, 41, 0, 0, time.UTC) }
	h := testutil.NewHarness()

	assert.Equal(t, "09:41", New(h.Host, "", WithClock(now)).Value())
	assert.Equal(t, "2024-06-01", New(h.Host, "", WithClock(now), WithKind(drag.KindDate)).Value())
	assert.Equal(t, "2024-06-01T09:41", New(h.Host, "", WithClock(now), WithKind(drag.KindDateTime)).Value())
}

func TestTimeInput_Controlled(t *testing.T) {
	v := "12:00"
	_, m := newInput(t, WithValue(func() string { return v }))

	m.HandlePointer(testutil.Press(2, 0))
	in, ok := testutil.Find[InputMsg](testutil.Collect(m.HandlePointer(testutil.Move(-28, 0))))
	require.True(t, ok)
	assert.Equal(t, "11:30", in.Value)
	assert.Equal(t, "12:00", m.Value())

	v = in.Value
	_, ok = testutil.Find[ChangeMsg](testutil.Collect(m.HandlePointer(testutil.Release(-28, 0))))
	assert.True(t, ok)
}

func TestTimeInput_ControlledReleaseBeforeOwnerApplies(t *testing.T) {
	v := "23:50"
	_, m := newInput(t, WithValue(func() string { return v }))

	m.HandlePointer(testutil.Press(2, 0))
	m.HandlePointer(testutil.Move(22, 0))

	change, ok := testutil.Find[ChangeMsg](testutil.Collect(m.HandlePointer(testutil.Release(22, 0))))
	require.True(t, ok)
	assert.Equal(t, "00:10", change.Value)
	assert.Equal(t, "23:50", m.Value(), "owner has not applied the input yet")
}

func TestTimeInput_Disabled(t *testing.T) {
	h, m := newInput(t, WithDefault("08:00"), WithDisabled(true))

	m.HandlePointer(testutil.Press(2, 0))
	assert.False(t, m.Dragging())
	assert.False(t, h.Host.Document.Dragging())
	assert.Nil(t, m.Focus())
	assert.False(t, m.Editing())
}

func TestTimeInput_TypedValue(t *testing.T) {
	_, m := newInput(t, WithDefault("08:00"))

	m.HandlePointer(testutil.Press(8, 0))
	require.True(t, m.Editing())
	for range 5 {
		m.Update(testutil.Key("backspace"))
	}
	for _, r := range "17:45" {
		m.Update(testutil.Key(string(r)))
	}

	change, ok := testutil.Find[ChangeMsg](testutil.Collect(m.Update(testutil.Key("enter"))))
	require.True(t, ok)
	assert.Equal(t, "17:45", change.Value)
	assert.Equal(t, "17:45", m.Value())
}

func TestTimeInput_InvalidTypedValueRejected(t *testing.T) {
	_, m := newInput(t, WithDefault("08:00"))

	m.Focus()
	m.Update(testutil.Key("9"))

	assert.Nil(t, m.Update(testutil.Key("enter")))
	assert.Equal(t, "08:00", m.Value())
}
