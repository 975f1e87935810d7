package testutil

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/deskboard/internal/ui/geom"
	"github.com/llehouerou/deskboard/internal/ui/host"
)

// Harness drives components sharing a host: it runs animation frames and
// synthesizes pointer input.
type Harness struct {
	Host *host.Host
}

// NewHarness creates a harness around a 120x40 host without zones.
func NewHarness(opts ...host.Option) *Harness {
	opts = append([]host.Option{host.WithViewport(120, 40)}, opts...)
	return &Harness{Host: host.New(opts...)}
}

// Frame runs every pending frame callback once.
func (h *Harness) Frame() {
	h.Host.Frames.Run(host.FrameMsg{At: time.Now()})
}

// Frames runs n frames.
func (h *Harness) Frames(n int) {
	for range n {
		h.Frame()
	}
}

// Press returns a primary button press at (x, y).
func Press(x, y int) host.PointerEvent {
	return host.PointerEvent{Kind: host.PointerDown, Point: geom.Point{X: x, Y: y}}
}

// Move returns a pointer move to (x, y).
func Move(x, y int) host.PointerEvent {
	return host.PointerEvent{Kind: host.PointerMove, Point: geom.Point{X: x, Y: y}}
}

// Release returns a primary button release at (x, y).
func Release(x, y int) host.PointerEvent {
	return host.PointerEvent{Kind: host.PointerUp, Point: geom.Point{X: x, Y: y}}
}

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
}

// Key builds a key message. Named keys ("enter", "esc", "up", ...) map to
// their special types; anything else is sent as runes.
func Key(s string) tea.KeyMsg {
	if t, ok := specialKeys[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Collect runs cmd and returns every message it produces, flattening batches.
// Timer commands are not expected here; callers pass component commands only.
func Collect(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Collect(c)...)
	}
	return out
}

// Find returns the first message of type T.
func Find[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
