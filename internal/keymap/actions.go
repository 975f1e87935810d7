// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionToggleTheme Action = "toggle_theme"
	ActionNextPage    Action = "next_page"

	// Page switching
	ActionPageComponents Action = "page_components"
	ActionPageLayout     Action = "page_layout"
	ActionPageOutliner   Action = "page_outliner"
	ActionPageSchedules  Action = "page_schedules"

	// Components page
	ActionOpenMenu    Action = "open_menu"    // m
	ActionTogglePopup Action = "toggle_popup" // p
	ActionEditField   Action = "edit_field"   // e

	// Outliner page
	ActionAddItem     Action = "add_item"     // a
	ActionResetItems  Action = "reset_items"  // r
	ActionCollapseAll Action = "collapse_all" // c

	// Menu navigation
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionSelect   Action = "select"
	ActionClose    Action = "close"
)
