// Package icons maps icon names to terminal glyphs.
//
// Components name icons the way the web dashboard did ("delete",
// "expand_more", "videocam:filled"); the active Set decides what is drawn.
package icons

import "strings"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icon is a parsed icon reference.
type Icon struct {
	Name   string
	Filled bool
}

// Parse reads "name" or "name:filled".
func Parse(s string) Icon {
	name, suffix, found := strings.Cut(strings.TrimSpace(s), ":")
	return Icon{Name: name, Filled: found && suffix == "filled"}
}

// Set is a glyph table for one style.
type Set struct {
	style  Style
	glyphs map[string]string
}

var (
	nerdGlyphs = map[string]string{
		"add":            "\uf067",     // nf-fa-plus
		"content_copy":   "\uf0c5",     // nf-fa-copy
		"delete":         "\uf1f8",     // nf-fa-trash
		"edit":           "\uf044",     // nf-fa-edit
		"expand_more":    "\uf078",     // nf-fa-chevron_down
		"chevron_right":  "\uf054",     // nf-fa-chevron_right
		"drag_indicator": "\U000f01dd", // nf-md-drag_vertical
		"folder":         "\uf07b",     // nf-fa-folder
		"deployed_code":  "\uf1b2",     // nf-fa-cube
		"lightbulb":      "\uf0eb",     // nf-fa-lightbulb_o
		"videocam":       "\uf03d",     // nf-fa-video_camera
		"settings":       "\uf013",     // nf-fa-cog
		"schedule":       "\uf017",     // nf-fa-clock_o
		"thermostat":     "\uf2c9",     // nf-fa-thermometer
		"more_vert":      "\uf142",     // nf-fa-ellipsis_v
	}

	unicodeGlyphs = map[string]string{
		"add":            "+",
		"content_copy":   "⧉",
		"delete":         "✕",
		"edit":           "✎",
		"expand_more":    "▾",
		"chevron_right":  "▸",
		"drag_indicator": "⠿",
		"folder":         "📁",
		"deployed_code":  "◆",
		"lightbulb":      "☀",
		"videocam":       "◉",
		"settings":       "⚙",
		"schedule":       "◷",
		"thermostat":     "°",
		"more_vert":      "⋮",
	}

	noneGlyphs = map[string]string{
		"expand_more":    "v",
		"chevron_right":  ">",
		"drag_indicator": "=",
		"more_vert":      "...",
	}
)

// For returns the glyph set for a style name. Unknown styles fall back to none.
func For(style string) Set {
	switch Style(style) {
	case StyleNerd:
		return Set{style: StyleNerd, glyphs: nerdGlyphs}
	case StyleUnicode:
		return Set{style: StyleUnicode, glyphs: unicodeGlyphs}
	default:
		return Set{style: StyleNone, glyphs: noneGlyphs}
	}
}

// Style returns the style of the set.
func (s Set) Style() Style {
	if s.style == "" {
		return StyleNone
	}
	return s.style
}

// Glyph returns the glyph for name, or "" when the set has none.
func (s Set) Glyph(name string) string {
	return s.glyphs[Parse(name).Name]
}

// Prefix returns the glyph followed by a space, or "" when there is no glyph.
// Labels use it so icon-less styles do not leave a gap.
func (s Set) Prefix(name string) string {
	if g := s.Glyph(name); g != "" {
		return g + " "
	}
	return ""
}
