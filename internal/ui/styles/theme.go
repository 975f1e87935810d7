// Package styles defines the light and dark color palettes and the
// pre-built lipgloss styles components render with.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme names, as persisted.
const (
	NameDark  = "dark"
	NameLight = "light"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Name string

	// Brand/accent colors
	Primary   lipgloss.Color // focused items, active states, drop targets
	Secondary lipgloss.Color // secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase    lipgloss.Color
	BgCursor  lipgloss.Color // highlighted menu item / hovered row
	BgOverlay lipgloss.Color // popovers and menus

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Title     lipgloss.Style
	Cursor    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style // destructive menu items
	Disabled  lipgloss.Style
	Label     lipgloss.Style // draggable input labels
	Active    lipgloss.Style // a control being dragged
	Overlay   lipgloss.Style // popover / menu frame
	DropLine  lipgloss.Style // before/after insertion marker
	DropOnto  lipgloss.Style // nest target row
	Ghost     lipgloss.Style // dragged row following the pointer
	Handle    lipgloss.Style // split divider
	HandleHot lipgloss.Style // split divider while dragging
}

var dark = Theme{
	Name:      NameDark,
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:    lipgloss.Color("#1a1a1a"),
	BgCursor:  lipgloss.Color("#303030"),
	BgOverlay: lipgloss.Color("#242424"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

var light = Theme{
	Name:      NameLight,
	Primary:   lipgloss.Color("#6d28d9"),
	Secondary: lipgloss.Color("#b45309"),

	FgBase:   lipgloss.Color("#1f1f1f"),
	FgMuted:  lipgloss.Color("#5c5c5c"),
	FgSubtle: lipgloss.Color("#9a9a9a"),

	BgBase:    lipgloss.Color("#fafafa"),
	BgCursor:  lipgloss.Color("#e4e4e7"),
	BgOverlay: lipgloss.Color("#ffffff"),

	Border:      lipgloss.Color("#b4b4b4"),
	BorderFocus: lipgloss.Color("#6d28d9"),

	Success: lipgloss.Color("#15803d"),
	Error:   lipgloss.Color("#b91c1c"),
	Warning: lipgloss.Color("#b45309"),
}

// Dark returns a copy of the dark theme.
func Dark() *Theme {
	t := dark
	return &t
}

// Light returns a copy of the light theme.
func Light() *Theme {
	t := light
	return &t
}

// ForName returns the theme called name. Anything but "light" is dark.
func ForName(name string) *Theme {
	if name == NameLight {
		return Light()
	}
	return Dark()
}

// Toggled returns the other theme.
func (t *Theme) Toggled() *Theme {
	if t.Name == NameLight {
		return Dark()
	}
	return Light()
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
		Danger:   lipgloss.NewStyle().Foreground(t.Error),
		Disabled: lipgloss.NewStyle().Foreground(t.FgSubtle).Faint(true),
		Label: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Background(t.BgOverlay).
			Padding(0, 1),
		DropLine: lipgloss.NewStyle().Foreground(t.Primary),
		DropOnto: lipgloss.NewStyle().
			Background(Blend(t.BgBase, t.Primary, 0.35)).
			Foreground(t.FgBase),
		Ghost: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgCursor).
			Faint(true),
		Handle:    lipgloss.NewStyle().Foreground(t.Border),
		HandleHot: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
	}
}
