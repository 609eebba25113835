// internal/app/messages.go
package app

import "github.com/llehouerou/hoopreel/internal/highlights"

// SearchResultMsg carries the outcome of a search run off the UI loop.
// Message holds the client's explanation when Results is empty.
type SearchResultMsg struct {
	Query   string
	Order   highlights.Order
	Results []highlights.Result
	Message string
}

// HistoryLoadedMsg carries recent queries for input suggestions.
type HistoryLoadedMsg struct {
	Queries []string
	Err     error
}

// HistorySavedMsg reports whether a submitted query was recorded.
type HistorySavedMsg struct {
	Query string
	Err   error
}

// HistoryClearedMsg reports the outcome of clearing the history.
type HistoryClearedMsg struct {
	Err error
}

// BrowserResultMsg reports the outcome of opening a result URL.
type BrowserResultMsg struct {
	URL string
	Err error
}
