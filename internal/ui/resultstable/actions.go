package resultstable

// Open requests the URL of a result to be opened in the browser.
type Open struct {
	URL   string
	Index int
}

// Source names the results table in action messages.
const Source = "resultstable"

// ActionType implements action.Action.
func (a Open) ActionType() string { return "resultstable.open" }
