package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/deskboard/internal/ui/geom"
)

func blank(w, h int) string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(".", w)
	}
	return strings.Join(lines, "\n")
}

func TestComposeAt(t *testing.T) {
	got := ComposeAt(blank(10, 4), "ab\ncd", geom.Point{X: 3, Y: 1}, 10)
	want := strings.Join([]string{
		"..........",
		"...ab.....",
		"...cd.....",
		"..........",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestComposeAt_OpaqueBlock(t *testing.T) {
	// Shorter lines are padded to the block width and hide the base.
	got := ComposeAt(blank(6, 2), "abc\nd", geom.Point{X: 1, Y: 0}, 6)
	assert.Equal(t, ".abc..\n.d  ..", got)
}

func TestComposeAt_Clips(t *testing.T) {
	tests := []struct {
		name string
		at   geom.Point
		want string
	}{
		{"left edge", geom.Point{X: -1, Y: 0}, "bc...\n....."},
		{"right edge", geom.Point{X: 3, Y: 0}, "...ab\n....."},
		{"below", geom.Point{X: 0, Y: 1}, ".....\nabc.."},
		{"fully outside", geom.Point{X: 0, Y: 5}, ".....\n....."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeAt(blank(5, 2), "abc", tt.at, 5))
		})
	}
}

func TestComposeAt_Styled(t *testing.T) {
	block := lipgloss.NewStyle().Bold(true).Render("XY")
	got := ComposeAt(blank(6, 1), block, geom.Point{X: 2, Y: 0}, 6)
	assert.Equal(t, "..XY..", stripANSI(got))
}

func TestCompose_TransparentSpaces(t *testing.T) {
	overlay := "\n   hi   "
	got := Compose(blank(8, 2), overlay, 8, 2)
	assert.Equal(t, "........\n...hi...", got)
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
