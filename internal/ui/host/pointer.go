package host

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/deskboard/internal/ui/geom"
)

// PointerKind classifies pointer events.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerKind(%d)", int(k))
	}
}

// PointerEvent is a press/move/release/cancel at a cell.
type PointerEvent struct {
	Kind   PointerKind
	Point  geom.Point
	Button tea.MouseButton
	Shift  bool
	Alt    bool
	Ctrl   bool
}

// FromMouse converts a bubbletea mouse message. Wheel events are not pointer
// events and report false.
func FromMouse(msg tea.MouseMsg) (PointerEvent, bool) {
	ev := tea.MouseEvent(msg)
	if ev.IsWheel() {
		return PointerEvent{}, false
	}
	pe := PointerEvent{
		Point:  geom.Point{X: msg.X, Y: msg.Y},
		Button: msg.Button,
		Shift:  msg.Shift,
		Alt:    msg.Alt,
		Ctrl:   msg.Ctrl,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		pe.Kind = PointerDown
	case tea.MouseActionMotion:
		pe.Kind = PointerMove
	case tea.MouseActionRelease:
		pe.Kind = PointerUp
	default:
		return PointerEvent{}, false
	}
	return pe, true
}

// Cancel returns a cancel event, used when the terminal loses focus mid-drag.
func Cancel() PointerEvent {
	return PointerEvent{Kind: PointerCancel}
}

// Primary reports whether the event comes from the left button.
// Moves during a drag report no button on some terminals, so they count too.
func (e PointerEvent) Primary() bool {
	return e.Button == tea.MouseButtonLeft || e.Button == tea.MouseButtonNone
}

// Held reports whether modifier m is pressed.
func (e PointerEvent) Held(m Modifier) bool {
	switch m {
	case ModShift:
		return e.Shift
	case ModAlt:
		return e.Alt
	case ModCtrl:
		return e.Ctrl
	default:
		return false
	}
}

// Modifier names a keyboard modifier.
type Modifier string

const (
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModCtrl  Modifier = "ctrl"
)

// ParseModifier parses a modifier name, case-insensitively.
func ParseModifier(s string) (Modifier, error) {
	switch m := Modifier(strings.ToLower(strings.TrimSpace(s))); m {
	case ModShift, ModAlt, ModCtrl:
		return m, nil
	default:
		return "", fmt.Errorf("unknown modifier %q", s)
	}
}
