// internal/app/handlers.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hoopreel/internal/keymap"
)

var (
	globalKeys  = keymap.ForContext(keymap.ContextGlobal)
	searchKeys  = keymap.ForContext(keymap.ContextSearch)
	orderKeys   = keymap.ForContext(keymap.ContextOrder)
	resultsKeys = keymap.ForContext(keymap.ContextResults)
)

// handleKey routes a key press. An open notice takes every key; otherwise
// global keys are checked before the focused control gets the key.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Notice.Active() {
		_, cmd := m.Notice.Update(msg)
		return m, cmd
	}

	key := msg.String()
	switch globalKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionFocusNext:
		return m, m.setFocus(m.Focus.next())
	case keymap.ActionFocusPrev:
		return m, m.setFocus(m.Focus.prev())
	case keymap.ActionSubmit:
		return m.submit()
	case keymap.ActionClearHistory:
		return m, ClearHistoryCmd(m.history)
	}

	var cmd tea.Cmd
	switch m.Focus {
	case FocusSearch:
		if searchKeys.Is(key, keymap.ActionSubmit) {
			return m.submit()
		}
		m.Input, cmd = m.Input.Update(msg)
	case FocusOrder:
		if orderKeys.Is(key, keymap.ActionLeave) {
			return m, tea.Quit
		}
		m.Order, cmd = m.Order.Update(msg)
	case FocusResults:
		if resultsKeys.Is(key, keymap.ActionLeave) {
			return m, tea.Quit
		}
		m.Results, cmd = m.Results.Update(msg)
	}
	return m, cmd
}

// handleMouse maps a mouse event onto the search row or the results table.
// Presses on a control focus it; the Search button submits and the order
// selector advances.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Notice.Active() {
		return m, nil
	}

	tableTop := titleHeight + searchRowHeight
	if msg.Y >= tableTop {
		local := msg
		local.Y -= tableTop
		var cmds []tea.Cmd
		if isLeftPress(msg) && m.Focus != FocusResults {
			cmds = append(cmds, m.setFocus(FocusResults))
		}
		var cmd tea.Cmd
		m.Results, cmd = m.Results.Update(local)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	if msg.Y < titleHeight || !isLeftPress(msg) {
		return m, nil
	}

	inputW, buttonW, _ := m.searchRowWidths()
	switch {
	case msg.X < inputW:
		return m, m.setFocus(FocusSearch)
	case msg.X < inputW+buttonW:
		return m.submit()
	default:
		cmd := m.setFocus(FocusOrder)
		var clickCmd tea.Cmd
		m.Order, clickCmd = m.Order.Click()
		return m, tea.Batch(cmd, clickCmd)
	}
}

func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress
}
