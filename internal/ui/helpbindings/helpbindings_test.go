package helpbindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/deskboard/internal/ui/action"
	"github.com/llehouerou/deskboard/internal/ui/styles"
	"github.com/llehouerou/deskboard/internal/ui/testutil"
)

var allContexts = []string{"global", "components", "outliner", "menu", "input"}

func newHelp(contexts []string, w, h int) *Model {
	m := New(styles.Dark())
	m.SetContexts(contexts)
	m.SetSize(w, h)
	return &m
}

func requireClosed(t *testing.T, m *Model, key string) {
	t.Helper()
	_, cmd := m.Update(testutil.Key(key))
	require.NotNil(t, cmd)
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	assert.Equal(t, Source, msg.Source)
	assert.IsType(t, Close{}, msg.Action)
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"esc", "q", "?"} {
		t.Run(key, func(t *testing.T) {
			requireClosed(t, newHelp([]string{"global"}, 80, 24), key)
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m := newHelp(allContexts, 80, 16)

	m.Update(testutil.Key("j"))
	m.Update(testutil.Key("down"))
	assert.Equal(t, 2, m.ScrollOffset())

	m.Update(testutil.Key("k"))
	assert.Equal(t, 1, m.ScrollOffset())

	m.Update(testutil.Key("up"))
	m.Update(testutil.Key("up"))
	assert.Equal(t, 0, m.ScrollOffset())
}

func TestHelpBindings_ScrollStopsAtBottom(t *testing.T) {
	m := newHelp(allContexts, 80, 16)

	for range 200 {
		m.Update(testutil.Key("j"))
	}
	assert.Equal(t, m.maxScroll(), m.ScrollOffset())
	assert.Positive(t, m.ScrollOffset())
}

func TestHelpBindings_ShortListDoesNotScroll(t *testing.T) {
	m := newHelp([]string{"input"}, 80, 40)

	m.Update(testutil.Key("j"))
	assert.Equal(t, 0, m.ScrollOffset())
	assert.Contains(t, m.View(), "?/esc close")
	assert.NotContains(t, m.View(), "j/k scroll")
}

func TestHelpBindings_View(t *testing.T) {
	m := newHelp([]string{"global", "outliner"}, 80, 40)
	out := testutil.StripANSI(m.View())

	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "Global")
	assert.Contains(t, out, "Outliner Page")
	assert.Contains(t, out, "Toggle light/dark theme")
	assert.Contains(t, out, "q, ctrl+c")
	assert.NotContains(t, out, "Open Menu")
}

func TestHelpBindings_ContextsFollowCategoryOrder(t *testing.T) {
	m := newHelp([]string{"outliner", "global"}, 80, 40)

	require.NotEmpty(t, m.bindings)
	assert.Equal(t, "global", m.bindings[0].Context)
	assert.Equal(t, "outliner", m.bindings[len(m.bindings)-1].Context)
}

func TestHelpBindings_EmptyWithoutSize(t *testing.T) {
	m := New(styles.Dark())
	m.SetContexts([]string{"global"})
	assert.Empty(t, m.View())
}
