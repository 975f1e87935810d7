//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStyle, For(tt.style).Style())
		})
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, Icon{Name: "delete"}, Parse("delete"))
	assert.Equal(t, Icon{Name: "videocam", Filled: true}, Parse("videocam:filled"))
	assert.Equal(t, Icon{Name: "edit"}, Parse("edit:outlined"))
}

func TestGlyph(t *testing.T) {
	uni := For("unicode")
	assert.Equal(t, "▾", uni.Glyph("expand_more"))
	assert.Equal(t, "✕", uni.Glyph("delete:filled"), "filled suffix does not change the lookup")
	assert.Equal(t, "", uni.Glyph("unknown"))

	none := For("none")
	assert.Equal(t, "", none.Prefix("delete"), "no glyph, no gap")
	assert.Equal(t, "> ", none.Prefix("chevron_right"))

	var zero Set
	assert.Equal(t, StyleNone, zero.Style())
	assert.Equal(t, "", zero.Glyph("delete"))
}
