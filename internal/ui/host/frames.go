package host

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameID identifies a pending frame callback.
type FrameID uint64

// FrameMsg is delivered once per animation frame while callbacks are pending.
type FrameMsg struct {
	At time.Time
}

// Frames schedules one-shot callbacks on the next animation frame.
// A continuous loop re-requests itself from inside its callback; the tick
// chain stops by itself once nothing is pending.
type Frames struct {
	interval time.Duration
	next     FrameID
	pending  map[FrameID]func(time.Time)
	order    []FrameID
	ticking  bool
}

// NewFrames creates a scheduler ticking at interval.
func NewFrames(interval time.Duration) *Frames {
	return &Frames{
		interval: interval,
		pending:  make(map[FrameID]func(time.Time)),
	}
}

// Interval returns the delay between frames.
func (f *Frames) Interval() time.Duration {
	return f.interval
}

// Request registers cb for the next frame.
func (f *Frames) Request(cb func(time.Time)) FrameID {
	f.next++
	id := f.next
	f.pending[id] = cb
	f.order = append(f.order, id)
	return id
}

// Cancel drops a pending callback. Unknown ids are ignored.
func (f *Frames) Cancel(id FrameID) {
	delete(f.pending, id)
}

// Pending returns the number of callbacks waiting for a frame.
func (f *Frames) Pending() int {
	return len(f.pending)
}

// Run executes every callback requested before this frame. Callbacks
// requested while running wait for the following frame. The returned command
// schedules that frame when needed.
func (f *Frames) Run(msg FrameMsg) tea.Cmd {
	f.ticking = false
	due := f.order
	f.order = nil
	for _, id := range due {
		cb, ok := f.pending[id]
		if !ok {
			continue // cancelled by an earlier callback
		}
		delete(f.pending, id)
		cb(msg.At)
	}
	f.compact()
	return f.Cmd()
}

// Cmd starts the tick chain if callbacks are pending and no tick is in flight.
func (f *Frames) Cmd() tea.Cmd {
	if f.ticking || len(f.pending) == 0 {
		return nil
	}
	f.ticking = true
	return tea.Tick(f.interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

// compact removes ids that were cancelled before they ran.
func (f *Frames) compact() {
	kept := f.order[:0]
	for _, id := range f.order {
		if _, ok := f.pending[id]; ok {
			kept = append(kept, id)
		}
	}
	f.order = kept
}
