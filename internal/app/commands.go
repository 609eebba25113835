// internal/app/commands.go
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hoopreel/internal/browser"
	"github.com/llehouerou/hoopreel/internal/highlights"
)

// SearchCmd runs a search in the command goroutine and reports the
// results, or the client's last error message when there are none.
func SearchCmd(ctx context.Context, s Searcher, query string, maxResults int, order highlights.Order) tea.Cmd {
	return func() tea.Msg {
		results := s.Search(ctx, query, maxResults, order)
		msg := SearchResultMsg{Query: query, Order: order, Results: results}
		if len(results) == 0 {
			msg.Message = s.LastError()
		}
		return msg
	}
}

// LoadHistoryCmd reads the most recent queries.
func LoadHistoryCmd(store HistoryStore, limit int) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		queries, err := store.Queries(limit)
		return HistoryLoadedMsg{Queries: queries, Err: err}
	}
}

// SaveHistoryCmd records a submitted query.
func SaveHistoryCmd(store HistoryStore, query string, order highlights.Order) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return HistorySavedMsg{Query: query, Err: store.Add(query, order.String())}
	}
}

// ClearHistoryCmd forgets every recorded query.
func ClearHistoryCmd(store HistoryStore) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return HistoryClearedMsg{Err: store.Clear()}
	}
}

// OpenBrowserCmd opens url with open.
func OpenBrowserCmd(open browser.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return BrowserResultMsg{URL: url, Err: open(url)}
	}
}
