// internal/app/interfaces.go
package app

import (
	"context"

	"github.com/llehouerou/hoopreel/internal/highlights"
	"github.com/llehouerou/hoopreel/internal/history"
)

// Compile-time assertions that the real implementations satisfy the app's interfaces.
var (
	_ Searcher     = (*highlights.Client)(nil)
	_ HistoryStore = (*history.Store)(nil)
)

// Searcher runs highlight searches. Search never returns an error; when it
// returns no results, LastError explains why.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int, order highlights.Order) []highlights.Result
	LastError() string
}

// HistoryStore records submitted queries and returns recent ones.
type HistoryStore interface {
	Add(query, order string) error
	Queries(limit int) ([]string, error)
	Clear() error
}
