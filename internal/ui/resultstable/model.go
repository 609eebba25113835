// Package resultstable renders search results as a scrollable table with
// Platform, Title, Date and URL columns.
package resultstable

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hoopreel/internal/highlights"
	"github.com/llehouerou/hoopreel/internal/keymap"
	"github.com/llehouerou/hoopreel/internal/ui"
	"github.com/llehouerou/hoopreel/internal/ui/action"
	"github.com/llehouerou/hoopreel/internal/ui/cursor"
	"github.com/llehouerou/hoopreel/internal/ui/list"
)

var keys = keymap.ForContext(keymap.ContextResults)

var navigation = map[keymap.Action]cursor.Nav{
	keymap.ActionMoveDown: cursor.NavDown,
	keymap.ActionMoveUp:   cursor.NavUp,
	keymap.ActionPageDown: cursor.NavPageDown,
	keymap.ActionPageUp:   cursor.NavPageUp,
	keymap.ActionTop:      cursor.NavTop,
	keymap.ActionBottom:   cursor.NavBottom,
}

// tableOverhead is border, title, separator and the column header.
const tableOverhead = ui.PanelOverhead + 1

// Model is the results table.
type Model struct {
	ui.Base
	list list.Model[highlights.Result]
	now  func() time.Time

	lastClickIdx int
	lastClickAt  time.Time
}

// New creates an empty results table.
func New() Model {
	return Model{
		list:         list.New[highlights.Result](ui.ScrollMargin, tableOverhead),
		now:          time.Now,
		lastClickIdx: -1,
	}
}

// SetSize sets the table dimensions including its border.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, height)
}

// SetFocused sets whether the table receives key input.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.list.SetFocused(focused)
}

// SetResults replaces the rows, one per result, in the given order.
func (m *Model) SetResults(results []highlights.Result) {
	m.list.SetItems(results)
	m.lastClickIdx = -1
}

// Clear removes all rows.
func (m *Model) Clear() {
	m.SetResults(nil)
}

// Results returns the rows currently shown.
func (m Model) Results() []highlights.Result {
	return m.list.Items()
}

// Len returns the number of rows.
func (m Model) Len() int {
	return m.list.Len()
}

// Selected returns the result under the cursor.
func (m Model) Selected() (highlights.Result, bool) {
	return m.list.Selected()
}

// SelectedIndex returns the cursor row.
func (m Model) SelectedIndex() int {
	return m.list.SelectedIndex()
}

// Update handles navigation and activation. Mouse messages must carry a Y
// relative to the top border of the table. A row is activated by its open
// keys while focused, by a middle click, or by two left clicks on it within
// ui.DoubleClickInterval.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.IsFocused() {
		return m, nil
	}
	act := keys.Resolve(msg.String())
	if act == keymap.ActionOpen {
		return m, m.openCmd(m.list.SelectedIndex())
	}
	if nav, ok := navigation[act]; ok {
		m.list.Navigate(nav)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	res := m.list.HandleMouse(msg)

	switch res.Action { //nolint:exhaustive // moves need no reaction
	case list.ActionMiddleClick:
		m.lastClickIdx = -1
		return m, m.openCmd(res.Index)
	case list.ActionClick:
		now := m.now()
		if res.Index == m.lastClickIdx && now.Sub(m.lastClickAt) <= ui.DoubleClickInterval {
			m.lastClickIdx = -1
			return m, m.openCmd(res.Index)
		}
		m.lastClickIdx = res.Index
		m.lastClickAt = now
	}
	return m, nil
}

func (m Model) openCmd(idx int) tea.Cmd {
	items := m.list.Items()
	if idx < 0 || idx >= len(items) {
		return nil
	}
	return action.Cmd(Source, Open{URL: items[idx].URL, Index: idx})
}
