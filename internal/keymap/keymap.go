package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "components", "outliner", "menu", "input"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleTheme, []string{"t"}, "Toggle light/dark theme", "global"},
	{ActionNextPage, []string{"tab"}, "Next page", "global"},
	{ActionPageComponents, []string{"1"}, "Components page", "global"},
	{ActionPageLayout, []string{"2"}, "Layout page", "global"},
	{ActionPageOutliner, []string{"3"}, "Outliner page", "global"},
	{ActionPageSchedules, []string{"4"}, "Schedules page", "global"},

	// Components page
	{ActionOpenMenu, []string{"m"}, "Open actions menu", "components"},
	{ActionTogglePopup, []string{"p"}, "Toggle info popover", "components"},
	{ActionEditField, []string{"e"}, "Type into the X field", "components"},

	// Outliner
	{ActionAddItem, []string{"a"}, "Add item", "outliner"},
	{ActionResetItems, []string{"r"}, "Reset scene", "outliner"},
	{ActionCollapseAll, []string{"c"}, "Collapse all", "outliner"},

	// Open menu
	{ActionMoveUp, []string{"k", "up"}, "Previous item", "menu"},
	{ActionMoveDown, []string{"j", "down"}, "Next item", "menu"},
	{ActionSelect, []string{"enter"}, "Activate item", "menu"},
	{ActionClose, []string{"esc"}, "Close menu", "menu"},

	// Typing into a field
	{ActionSelect, []string{"enter"}, "Commit value", "input"},
	{ActionClose, []string{"esc"}, "Cancel typing", "input"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Global resolves the bindings that apply on every page.
func Global() *Resolver {
	return NewResolver(ByContext("global"))
}
