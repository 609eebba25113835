// Package orderselect provides the sort-order selector shown next to the
// search box.
package orderselect

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hoopreel/internal/highlights"
	"github.com/llehouerou/hoopreel/internal/keymap"
	"github.com/llehouerou/hoopreel/internal/ui"
	"github.com/llehouerou/hoopreel/internal/ui/action"
	"github.com/llehouerou/hoopreel/internal/ui/styles"
)

const label = "Sort by: "

// Changed is emitted when the user picks a different order.
type Changed struct {
	Order highlights.Order
}

// ActionType implements action.Action.
func (a Changed) ActionType() string { return "orderselect.changed" }

// Source names the selector in action messages.
const Source = "orderselect"

var keys = keymap.ForContext(keymap.ContextOrder)

// Model is a single-line selector cycling through highlights.Orders.
type Model struct {
	ui.Base
	order highlights.Order
}

// New creates a selector showing order.
func New(order highlights.Order) Model {
	return Model{order: order}
}

// Order returns the selected order.
func (m Model) Order() highlights.Order {
	return m.order
}

// Update cycles the order on left/right (h/l, space) while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	switch keys.Resolve(keyMsg.String()) {
	case keymap.ActionOrderNext:
		m.order = m.order.Next()
	case keymap.ActionOrderPrev:
		m.order = m.order.Prev()
	default:
		return m, nil
	}
	return m, action.Cmd(Source, Changed{Order: m.order})
}

// Click advances the order, as a mouse press on the selector does.
func (m Model) Click() (Model, tea.Cmd) {
	m.order = m.order.Next()
	return m, action.Cmd(Source, Changed{Order: m.order})
}

// View renders "Sort by: ‹ order ›" inside a field border.
func (m Model) View() string {
	s := styles.T().S()
	value := s.Base.Render(m.order.String())
	if m.IsFocused() {
		value = s.Focused.Render("‹ " + m.order.String() + " ›")
	}
	return styles.FieldStyle(m.IsFocused()).Render(s.Muted.Render(label) + value)
}
