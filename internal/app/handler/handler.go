// Package handler chains key handlers: the first one that claims a key wins.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is what a handler did with a key.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key to the next handler.
var NotHandled = Result{}

// HandledNoCmd claims the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled claims the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler looks at a key and reports whether it claimed it.
type Handler func(msg tea.KeyMsg) Result

// Chain offers msg to each handler in order and stops at the first that
// claims it. Later handlers never run.
func Chain(msg tea.KeyMsg, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(msg); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}

// Key returns a handler that runs fn when msg is one of keys.
func Key(fn func() tea.Cmd, keys ...string) Handler {
	return func(msg tea.KeyMsg) Result {
		s := msg.String()
		for _, k := range keys {
			if s == k {
				return Handled(fn())
			}
		}
		return NotHandled
	}
}
