package helpbindings

import (
	"github.com/llehouerou/deskboard/internal/ui/action"
)

// Source names this component in action messages.
const Source = "helpbindings"

// Close signals the help popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helpbindings.close" }

// ActionMsg creates an action.Msg for a helpbindings action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
