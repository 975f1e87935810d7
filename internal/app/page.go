package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/deskboard/internal/ui/anchor"
	"github.com/llehouerou/deskboard/internal/ui/host"
)

// PointerTarget is a component that takes pointer events.
type PointerTarget interface {
	ID() string
	HandlePointer(ev host.PointerEvent) tea.Cmd
}

// anchored is implemented by targets that float above the page.
type anchored interface {
	Engine() *anchor.Engine
}

// Page is one screen of the dashboard.
type Page interface {
	Route() string
	Title() string

	// Targets returns the pointer targets in dispatch order. Floating
	// targets come first so they see presses before the page below.
	Targets() []PointerTarget

	// HandleKey gets keys before the global bindings. Pages claim every key
	// while a field is being typed into or a menu is open.
	HandleKey(msg tea.KeyMsg) (bool, tea.Cmd)

	// Update receives component messages.
	Update(msg tea.Msg) tea.Cmd

	View(width, height int) string

	// HelpContexts names the keymap contexts shown in help.
	HelpContexts() []string
}
