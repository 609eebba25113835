// Package list provides a generic scrollable list component.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hoopreel/internal/ui"
	"github.com/llehouerou/hoopreel/internal/ui/cursor"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone        Action = iota
	ActionClick              // left click moved the cursor to a row
	ActionMiddleClick        // middle click on a row
	ActionMoved              // cursor moved by the wheel
)

// Result is returned from Update to tell the parent what happened.
type Result struct {
	Action Action
	Index  int // item index the action applies to, -1 if none
}

var none = Result{Index: -1}

// Model is a generic scrollable list. It owns the cursor and mouse
// hit-testing; the parent resolves keys, calls Navigate and renders rows
// using VisibleRange.
type Model[T any] struct {
	ui.Base
	items    []T
	cursor   cursor.Cursor
	overhead int
}

// New creates a list with the given scroll margin. overhead is the number
// of rows the parent draws around the items (borders, headers); the rows
// above the first item are overhead-1, the last row being the bottom border.
func New[T any](margin, overhead int) Model[T] {
	return Model[T]{
		cursor:   cursor.New(margin),
		overhead: overhead,
	}
}

// SetItems replaces all items and moves the cursor back to the top.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.Reset()
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, or false if the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 || m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the current cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.ListHeight(m.overhead))
}

// Navigate moves the cursor one step.
func (m *Model[T]) Navigate(nav cursor.Nav) {
	m.cursor.Navigate(nav, len(m.items), m.ListHeight(m.overhead))
}

// HandleMouse applies a mouse event. Events are handled regardless of
// focus so a click can select a row.
func (m *Model[T]) HandleMouse(msg tea.MouseMsg) Result {
	result, row := m.cursor.HandleMouse(msg, len(m.items), m.ListHeight(m.overhead), m.overhead-1)
	switch result { //nolint:exhaustive // MouseNone falls through
	case cursor.MouseScrolled:
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	case cursor.MouseClicked:
		return Result{Action: ActionClick, Index: row}
	case cursor.MouseMiddleClick:
		return Result{Action: ActionMiddleClick, Index: row}
	}
	return none
}
