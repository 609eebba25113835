package notice

// Dismissed is emitted when the user closes the notice.
type Dismissed struct {
	Kind Kind
}

// Source names the notice in action messages.
const Source = "notice"

// ActionType implements action.Action.
func (a Dismissed) ActionType() string { return "notice.dismissed" }
