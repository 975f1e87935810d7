package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		context string
		minLen  int
	}{
		{"global", 8},
		{"components", 3},
		{"outliner", 3},
		{"menu", 4},
		{"input", 2},
		{"unknown", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			result := ByContext(tt.context)
			assert.GreaterOrEqual(t, len(result), tt.minLen)
			if tt.minLen == 0 {
				assert.Empty(t, result)
			}
			for _, b := range result {
				assert.Equal(t, tt.context, b.Context)
			}
		})
	}
}

func TestAll_BindingsAreComplete(t *testing.T) {
	for _, b := range All {
		assert.NotEmpty(t, b.Action, "binding %v has no action", b.Keys)
		assert.NotEmpty(t, b.Keys, "binding %q has no keys", b.Action)
		assert.NotEmpty(t, b.Description, "binding %q has no description", b.Action)
		assert.NotEmpty(t, b.Context, "binding %q has no context", b.Action)
	}
}

func TestGlobal_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range ByContext("global") {
		for _, k := range b.Keys {
			prev, dup := seen[k]
			assert.False(t, dup, "key %q bound to %q and %q", k, prev, b.Action)
			seen[k] = b.Action
		}
	}
}

func TestGlobal_Resolves(t *testing.T) {
	r := Global()
	assert.Equal(t, ActionQuit, r.Resolve("q"))
	assert.Equal(t, ActionQuit, r.Resolve("ctrl+c"))
	assert.Equal(t, ActionToggleTheme, r.Resolve("t"))
	assert.Equal(t, ActionPageOutliner, r.Resolve("3"))
	assert.Equal(t, Action(""), r.Resolve("a"))
}
