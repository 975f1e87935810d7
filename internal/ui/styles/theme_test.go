package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestForName(t *testing.T) {
	assert.Equal(t, NameLight, ForName("light").Name)
	assert.Equal(t, NameDark, ForName("dark").Name)
	assert.Equal(t, NameDark, ForName("").Name)
	assert.Equal(t, NameDark, ForName("solarized").Name)
}

func TestToggled(t *testing.T) {
	d := Dark()
	assert.Equal(t, NameLight, d.Toggled().Name)
	assert.Equal(t, NameDark, d.Toggled().Toggled().Name)
}

func TestThemesAreCopies(t *testing.T) {
	a, b := Dark(), Dark()
	a.Primary = lipgloss.Color("#000000")
	assert.NotEqual(t, a.Primary, b.Primary)
}

func TestBlend(t *testing.T) {
	from, to := lipgloss.Color("#000000"), lipgloss.Color("#ffffff")
	mid := Blend(from, to, 0.5)
	assert.Len(t, string(mid), 7)
	assert.NotEqual(t, from, mid)
	assert.NotEqual(t, to, mid)
}

func TestApplyGradient_KeepsText(t *testing.T) {
	out := ApplyGradient("deskboard", dark.Primary, dark.Secondary)
	assert.Contains(t, stripANSI(out), "d")
	assert.Equal(t, "", ApplyGradient("", dark.Primary, dark.Secondary))
}

func stripANSI(s string) string {
	var b []rune
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && r == 'm':
			inEsc = false
		case !inEsc:
			b = append(b, r)
		}
	}
	return string(b)
}
