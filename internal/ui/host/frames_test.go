package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrames_RunsOnce(t *testing.T) {
	f := NewFrames(time.Millisecond)
	calls := 0
	f.Request(func(time.Time) { calls++ })

	require.NotNil(t, f.Cmd(), "pending callback should start the tick chain")

	next := f.Run(FrameMsg{At: time.Now()})
	assert.Equal(t, 1, calls)
	assert.Nil(t, next, "nothing pending, chain should stop")

	f.Run(FrameMsg{At: time.Now()})
	assert.Equal(t, 1, calls, "callback must not run twice")
}

func TestFrames_SelfRescheduling(t *testing.T) {
	f := NewFrames(time.Millisecond)
	calls := 0
	var loop func(time.Time)
	loop = func(time.Time) {
		calls++
		f.Request(loop)
	}
	f.Request(loop)

	for range 3 {
		next := f.Run(FrameMsg{At: time.Now()})
		assert.NotNil(t, next, "loop keeps the chain alive")
	}
	assert.Equal(t, 3, calls, "requests made while running wait for the next frame")
}

func TestFrames_Cancel(t *testing.T) {
	f := NewFrames(time.Millisecond)
	ran := false
	id := f.Request(func(time.Time) { ran = true })
	f.Cancel(id)

	assert.Equal(t, 0, f.Pending())
	assert.Nil(t, f.Cmd())
	f.Run(FrameMsg{})
	assert.False(t, ran)
}

func TestFrames_CancelFromEarlierCallback(t *testing.T) {
	f := NewFrames(time.Millisecond)
	var second FrameID
	secondRan := false
	f.Request(func(time.Time) { f.Cancel(second) })
	second = f.Request(func(time.Time) { secondRan = true })

	f.Run(FrameMsg{})
	assert.False(t, secondRan)
}

func TestFrames_SingleTickInFlight(t *testing.T) {
	f := NewFrames(time.Millisecond)
	f.Request(func(time.Time) {})
	require.NotNil(t, f.Cmd())
	assert.Nil(t, f.Cmd(), "second Cmd must not start another tick")
}
