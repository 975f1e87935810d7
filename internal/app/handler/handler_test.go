package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResults(t *testing.T) {
	assert.False(t, NotHandled.Handled)
	assert.Nil(t, NotHandled.Cmd)
	assert.True(t, HandledNoCmd.Handled)
	assert.Nil(t, HandledNoCmd.Cmd)

	r := Handled(tea.Quit)
	assert.True(t, r.Handled)
	assert.NotNil(t, r.Cmd)
}

func TestChain_Empty(t *testing.T) {
	handled, cmd := Chain(runes("x"))
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestChain_FirstClaimWins(t *testing.T) {
	var calls []string
	record := func(name string, r Result) Handler {
		return func(tea.KeyMsg) Result {
			calls = append(calls, name)
			return r
		}
	}

	handled, cmd := Chain(runes("x"),
		record("a", NotHandled),
		record("b", Handled(tea.Quit)),
		record("c", HandledNoCmd),
	)

	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestChain_NoneClaims(t *testing.T) {
	handled, cmd := Chain(runes("x"),
		func(tea.KeyMsg) Result { return NotHandled },
		func(tea.KeyMsg) Result { return NotHandled },
	)
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestChain_PassesKey(t *testing.T) {
	var got string
	Chain(runes("q"), func(msg tea.KeyMsg) Result {
		got = msg.String()
		return HandledNoCmd
	})
	assert.Equal(t, "q", got)
}

func TestKey(t *testing.T) {
	n := 0
	h := Key(func() tea.Cmd { n++; return nil }, "a", "ctrl+c")

	assert.True(t, h(runes("a")).Handled)
	assert.True(t, h(tea.KeyMsg{Type: tea.KeyCtrlC}).Handled)
	assert.False(t, h(runes("b")).Handled)
	assert.Equal(t, 2, n)
}
