// internal/app/helpers_test.go
package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hoopreel/internal/highlights"
	"github.com/llehouerou/hoopreel/internal/ui/action"
	"github.com/llehouerou/hoopreel/internal/ui/testutil"
)

type searchCall struct {
	Query      string
	MaxResults int
	Order      highlights.Order
}

// fakeSearcher returns canned results and records every call.
type fakeSearcher struct {
	mu      sync.Mutex
	results []highlights.Result
	lastErr string
	calls   []searchCall
}

func (f *fakeSearcher) Search(_ context.Context, query string, maxResults int, order highlights.Order) []highlights.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, searchCall{Query: query, MaxResults: maxResults, Order: order})
	return f.results
}

func (f *fakeSearcher) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *fakeSearcher) Calls() []searchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]searchCall(nil), f.calls...)
}

// fakeHistory is an in-memory HistoryStore.
type fakeHistory struct {
	queries  []string
	addErr   error
	clearErr error
}

func (f *fakeHistory) Clear() error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.queries = nil
	return nil
}

func (f *fakeHistory) Add(query, _ string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.queries = append([]string{query}, f.queries...)
	return nil
}

func (f *fakeHistory) Queries(limit int) ([]string, error) {
	if len(f.queries) > limit {
		return f.queries[:limit], nil
	}
	return f.queries, nil
}

// fakeOpener records opened URLs.
type fakeOpener struct {
	urls []string
	err  error
}

func (f *fakeOpener) Open(url string) error {
	f.urls = append(f.urls, url)
	return f.err
}

var errTransport = errors.New("dial tcp: connection refused")

func threeResults() []highlights.Result {
	return []highlights.Result{
		{Platform: highlights.Platform, Title: "Lakers beat Nuggets", URL: highlights.WatchURL("v1"), UploadDate: "2024-05-01T01:00:00Z"},
		{Platform: highlights.Platform, Title: "LeBron 40 points", URL: highlights.WatchURL("v2"), UploadDate: "2024-04-29T01:00:00Z"},
		{Platform: highlights.Platform, Title: "Lakers clinch", URL: highlights.WatchURL("v3"), UploadDate: "2024-04-20T01:00:00Z"},
	}
}

type testDeps struct {
	searcher *fakeSearcher
	history  *fakeHistory
	opener   *fakeOpener
}

func newTestModel(t *testing.T) (Model, *testDeps) {
	t.Helper()
	d := &testDeps{
		searcher: &fakeSearcher{},
		history:  &fakeHistory{},
		opener:   &fakeOpener{},
	}
	m := New(context.Background(), Deps{
		Searcher: d.searcher,
		History:  d.history,
		OpenURL:  d.opener.Open,
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 30})
	return m, d
}

// update sends msg and returns the resulting Model, discarding commands.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := updateCmd(t, m, msg)
	return next
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// findMsg runs cmd, feeds nothing back, and returns the first message of type T.
func findMsg[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	for _, msg := range testutil.CollectMsgs(cmd) {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T produced by command", zero)
	return zero
}

// submitAndComplete submits the current input and delivers the search result.
func submitAndComplete(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := updateCmd(t, m, keyMsg(tea.KeyEnter))
	require.True(t, m.Searching)
	res := findMsg[SearchResultMsg](t, cmd)
	return update(t, m, res)
}

// actionOf unwraps a UI action of type T from msg.
func actionOf[T action.Action](msg tea.Msg) (T, bool) {
	var zero T
	am, ok := msg.(action.Msg)
	if !ok {
		return zero, false
	}
	a, ok := am.Action.(T)
	return a, ok
}
