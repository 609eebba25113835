// internal/app/focus.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hoopreel/internal/keymap"
)

// FocusTarget identifies which control receives key input.
type FocusTarget int

const (
	FocusSearch FocusTarget = iota
	FocusOrder
	FocusResults

	focusCount
)

// String returns the keymap context of the focused control.
func (f FocusTarget) String() string {
	switch f {
	case FocusOrder:
		return keymap.ContextOrder
	case FocusResults:
		return keymap.ContextResults
	default:
		return keymap.ContextSearch
	}
}

func (f FocusTarget) next() FocusTarget {
	return (f + 1) % focusCount
}

func (f FocusTarget) prev() FocusTarget {
	return (f + focusCount - 1) % focusCount
}

// setFocus moves focus to target. The returned command restarts the cursor
// blink when the search box gains focus.
func (m *Model) setFocus(target FocusTarget) tea.Cmd {
	m.Focus = target
	m.Order.SetFocused(target == FocusOrder)
	m.Results.SetFocused(target == FocusResults)
	if target == FocusSearch {
		return m.Input.Focus()
	}
	m.Input.Blur()
	return nil
}
