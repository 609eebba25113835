// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"
	ActionSubmit    Action = "submit"

	ActionClearHistory Action = "clear_history"

	// Search box
	ActionHistoryNext Action = "history_next"
	ActionHistoryPrev Action = "history_prev"
	ActionAccept      Action = "accept_suggestion"

	// Order selector
	ActionOrderNext Action = "order_next"
	ActionOrderPrev Action = "order_prev"

	// Results table
	ActionMoveDown Action = "move_down"
	ActionMoveUp   Action = "move_up"
	ActionPageDown Action = "page_down"
	ActionPageUp   Action = "page_up"
	ActionTop      Action = "top"
	ActionBottom   Action = "bottom"
	ActionOpen     Action = "open"
	ActionLeave    Action = "leave"

	// Notices
	ActionDismiss Action = "dismiss"
)
