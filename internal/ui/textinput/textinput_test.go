package textinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/deskboard/internal/ui/testutil"
)

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(testutil.Key(string(r)))
	}
}

func TestTextInput_TypeAndCommit(t *testing.T) {
	m := New(10, 16)
	m.Start("")
	require.True(t, m.Editing())

	typeText(&m, "hello")
	assert.Equal(t, "hello", m.Value())

	res, done, _ := m.Update(testutil.Key("enter"))
	require.True(t, done)
	assert.Equal(t, Result{Text: "hello"}, res)
	assert.False(t, m.Editing())
}

func TestTextInput_InitialTextAndBackspace(t *testing.T) {
	m := New(10, 16)
	m.Start("12.5")

	m.Update(testutil.Key("backspace"))
	typeText(&m, "75")

	res, done, _ := m.Update(testutil.Key("enter"))
	require.True(t, done)
	assert.Equal(t, "12.75", res.Text)
}

func TestTextInput_Escape(t *testing.T) {
	m := New(10, 16)
	m.Start("abc")

	res, done, _ := m.Update(testutil.Key("esc"))
	require.True(t, done)
	assert.True(t, res.Canceled)
	assert.False(t, m.Editing())
}

func TestTextInput_IdleIgnoresKeys(t *testing.T) {
	m := New(10, 16)

	_, done, cmd := m.Update(testutil.Key("x"))
	assert.False(t, done)
	assert.Nil(t, cmd)
	assert.Empty(t, m.Value())
}

func TestTextInput_CharLimit(t *testing.T) {
	m := New(10, 3)
	m.Start("")
	typeText(&m, "abcdef")
	assert.Equal(t, "abc", m.Value())
}
