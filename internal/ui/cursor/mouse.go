package cursor

import tea "github.com/charmbracelet/bubbletea"

// MouseResult describes what a mouse event did to the cursor.
type MouseResult int

const (
	MouseNone MouseResult = iota
	MouseScrolled
	MouseClicked
	MouseMiddleClick
)

// HandleMouse applies a mouse event to the cursor. msg.Y must be relative to
// the top of the component; headerRows is the number of rows drawn above the
// first list item. Clicks on a row move the cursor there and return its index.
// The wheel moves the cursor one row per notch.
func (c *Cursor) HandleMouse(msg tea.MouseMsg, listLen, height, headerRows int) (MouseResult, int) {
	if listLen == 0 {
		return MouseNone, -1
	}

	switch msg.Button { //nolint:exhaustive // remaining buttons are ignored
	case tea.MouseButtonWheelUp:
		c.Move(-1, listLen, height)
		return MouseScrolled, -1
	case tea.MouseButtonWheelDown:
		c.Move(1, listLen, height)
		return MouseScrolled, -1
	case tea.MouseButtonLeft, tea.MouseButtonMiddle:
		if msg.Action != tea.MouseActionPress {
			return MouseNone, -1
		}
		row := msg.Y - headerRows
		if row < 0 || row >= height {
			return MouseNone, -1
		}
		idx := c.offset + row
		if idx >= listLen {
			return MouseNone, -1
		}
		c.Jump(idx, listLen, height)
		if msg.Button == tea.MouseButtonMiddle {
			return MouseMiddleClick, idx
		}
		return MouseClicked, idx
	}

	return MouseNone, -1
}
