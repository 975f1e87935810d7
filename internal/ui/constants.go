// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// HeaderHeight is the header bar plus the separator below it.
	HeaderHeight = 2

	// StatusHeight is the status bar at the bottom of the screen.
	StatusHeight = 1

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// PanelOverhead is the vertical overhead of a titled panel (border + title line).
	PanelOverhead = BorderHeight + 1
)
