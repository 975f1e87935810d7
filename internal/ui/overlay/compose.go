// Package overlay positions floating blocks next to anchors and composites
// them over a rendered base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/deskboard/internal/ui/geom"
)

// Compose overlays a full-screen rendering on top of a base view.
// Leading and trailing spaces of each overlay line are transparent.
// This function is ANSI-aware and handles styled text correctly.
func Compose(base, overlay string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}
		endCol := ansi.StringWidth(strings.TrimRight(plainOverlay, " "))

		content := ansi.Cut(overlayLine, startCol, endCol)
		baseLines[i] = splice(baseLines[i], content, startCol, endCol, width)
	}

	return strings.Join(baseLines, "\n")
}

// ComposeAt paints block over base with its top-left cell at p. The block is
// opaque: every cell of its bounding box replaces the base. Parts falling
// outside the base are clipped.
func ComposeAt(base, block string, p geom.Point, width int) string {
	if block == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	blockLines := strings.Split(block, "\n")
	blockWidth := lipgloss.Width(block)

	for i, line := range blockLines {
		row := p.Y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		if w := ansi.StringWidth(line); w < blockWidth {
			line += strings.Repeat(" ", blockWidth-w)
		}

		start, end := p.X, p.X+blockWidth
		if start < 0 {
			line = ansi.Cut(line, -start, blockWidth)
			start = 0
		}
		if end > width {
			line = ansi.Cut(line, 0, max(0, width-start))
			end = width
		}
		if start >= end {
			continue
		}

		baseLines[row] = splice(baseLines[row], line, start, end, width)
	}

	return strings.Join(baseLines, "\n")
}

// splice replaces display columns [startCol, endCol) of baseLine with content.
func splice(baseLine, content string, startCol, endCol, width int) string {
	baseWidth := ansi.StringWidth(ansi.Strip(baseLine))
	if baseWidth < width {
		baseLine += strings.Repeat(" ", width-baseWidth)
	}

	// Cutting through a wide character may drop or keep it entirely, so
	// the prefix and suffix are padded or trimmed to keep alignment.
	prefix := ansi.Cut(baseLine, 0, startCol)
	if w := ansi.StringWidth(ansi.Strip(prefix)); w < startCol {
		prefix += strings.Repeat(" ", startCol-w)
	}

	result := prefix + content
	if endCol < width {
		suffix := ansi.Cut(baseLine, endCol, width)
		suffixWidth := ansi.StringWidth(ansi.Strip(suffix))
		expected := width - endCol
		if suffixWidth > expected {
			suffix = " " + ansi.Cut(suffix, suffixWidth-expected+1, suffixWidth)
		} else if suffixWidth < expected {
			result += strings.Repeat(" ", expected-suffixWidth)
		}
		result += suffix
	}
	return result
}
