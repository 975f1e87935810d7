// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which pages stack their
// columns instead of placing them side by side.
const NarrowThreshold = 100

// MessageBorderHeight is the height of the border around the error message box.
const MessageBorderHeight = 2

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	StatusHeight int
	MessageLines int // 0 when no error is shown
}

// ContentHeight calculates the available height for the page area. This is
// the terminal height minus header, status bar, and the error message box.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.StatusHeight
	height -= MessageHeight(opts.MessageLines)
	return max(0, height)
}

// MessageHeight returns the height needed for an error box of the given line count.
func MessageHeight(lines int) int {
	if lines == 0 {
		return 0
	}
	return lines + MessageBorderHeight
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// ColumnWidths splits the width into a left and a right column.
// In narrow mode both columns take the full width since they are stacked.
func ColumnWidths(width int, narrowMode bool) (left, right int) {
	if narrowMode {
		return width, width
	}
	left = width / 2
	return left, width - left
}

// StatusRow returns the 0-based row of the status bar.
func StatusRow(windowHeight, statusHeight int) int {
	return max(0, windowHeight-statusHeight)
}
