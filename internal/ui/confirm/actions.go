package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/deskboard/internal/ui/action"
)

// Source names this component in action messages.
const Source = "confirm"

// Result carries the answer and the context given to Show.
type Result struct {
	Confirmed bool
	Context   any
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

// ActionMsg creates an action.Msg for a confirm action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}

// RequestMsg asks the application to show a confirmation.
type RequestMsg struct {
	Title   string
	Message string
	Context any
}

// Request returns a command that emits a RequestMsg.
func Request(title, message string, context any) tea.Cmd {
	return func() tea.Msg { return RequestMsg{Title: title, Message: message, Context: context} }
}
