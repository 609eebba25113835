package keymap

import "strings"

// Binding contexts.
const (
	ContextGlobal  = "global"
	ContextSearch  = "search"
	ContextOrder   = "order"
	ContextResults = "results"
	ContextNotice  = "notice"
)

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains every key binding, in help order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "quit", ContextGlobal},
	{ActionFocusNext, []string{"tab"}, "focus", ContextGlobal},
	{ActionFocusPrev, []string{"shift+tab"}, "focus back", ContextGlobal},
	{ActionSubmit, []string{"ctrl+s"}, "search", ContextGlobal},
	{ActionClearHistory, []string{"ctrl+l"}, "clear history", ContextGlobal},

	// Search box
	{ActionSubmit, []string{"enter"}, "search", ContextSearch},
	{ActionHistoryNext, []string{"ctrl+n"}, "next suggestion", ContextSearch},
	{ActionHistoryPrev, []string{"ctrl+p"}, "previous suggestion", ContextSearch},
	{ActionAccept, []string{"right"}, "accept suggestion", ContextSearch},

	// Order selector
	{ActionOrderNext, []string{"right", "l", " "}, "next order", ContextOrder},
	{ActionOrderPrev, []string{"left", "h"}, "previous order", ContextOrder},
	{ActionLeave, []string{"q", "esc"}, "quit", ContextOrder},

	// Results table
	{ActionMoveDown, []string{"j", "down"}, "down", ContextResults},
	{ActionMoveUp, []string{"k", "up"}, "up", ContextResults},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "page down", ContextResults},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "page up", ContextResults},
	{ActionTop, []string{"g", "home"}, "top", ContextResults},
	{ActionBottom, []string{"G", "end"}, "bottom", ContextResults},
	{ActionOpen, []string{"enter", "o"}, "open in browser", ContextResults},
	{ActionLeave, []string{"q", "esc"}, "quit", ContextResults},

	// Notices
	{ActionDismiss, []string{"enter", "esc", "q", " "}, "close", ContextNotice},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Help renders the bindings of the given contexts as "key desc · key desc",
// using the first key of each binding and skipping repeated descriptions.
func Help(contexts ...string) string {
	seen := make(map[string]bool)
	var parts []string
	for _, ctx := range contexts {
		for _, kb := range ByContext(ctx) {
			if seen[kb.Description] || len(kb.Keys) == 0 {
				continue
			}
			seen[kb.Description] = true
			parts = append(parts, displayKey(kb.Keys[0])+" "+kb.Description)
		}
	}
	return strings.Join(parts, " · ")
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "right":
		return "→"
	case "left":
		return "←"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}
