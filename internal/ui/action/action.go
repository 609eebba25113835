// Package action carries component events up to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is an event raised by a UI component.
type Action interface {
	// ActionType names the action for logs, e.g. "resultstable.open".
	ActionType() string
}

// Msg is the tea.Msg a component returns to report an action.
type Msg struct {
	Source string // component name: "resultstable", "orderselect", "notice"
	Action Action
}

// String formats the message for logs.
func (m Msg) String() string {
	if m.Action == nil {
		return m.Source
	}
	return m.Source + ": " + m.Action.ActionType()
}

// Cmd returns a command that reports a as coming from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
