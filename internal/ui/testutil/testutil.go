// Package testutil provides helpers for testing UI components: output
// inspection plus a Harness that drives components sharing a host.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared as
// plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// NormalizeWhitespace collapses whitespace runs to one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MeasureWidth returns the cell width of s.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// ContainsLine reports whether some line of output contains substr.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// SplitLines splits output into lines, dropping trailing blank ones.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
