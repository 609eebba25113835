// internal/app/update.go
package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/hoopreel/internal/errmsg"
	"github.com/llehouerou/hoopreel/internal/highlights"
	"github.com/llehouerou/hoopreel/internal/ui/action"
	"github.com/llehouerou/hoopreel/internal/ui/notice"
	"github.com/llehouerou/hoopreel/internal/ui/orderselect"
	"github.com/llehouerou/hoopreel/internal/ui/resultstable"
)

// Notice texts.
const (
	inputRequiredTitle   = "Input Required"
	inputRequiredMessage = "Please enter search keywords."
	noResultsTitle       = "No Results"
	browserErrorTitle    = "Browser Error"
	historyErrorTitle    = "History Error"
	historyClearedTitle  = "History Cleared"
	historyClearedText   = "Search history was cleared."
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case action.Msg:
		return m.handleAction(msg)

	case SearchResultMsg:
		return m.handleSearchResult(msg)

	case HistoryLoadedMsg:
		if msg.Err != nil {
			m.log.WithError(msg.Err).Warn(errmsg.Format(errmsg.OpHistoryLoad, msg.Err))
			return m, nil
		}
		m.Input.SetSuggestions(msg.Queries)
		return m, nil

	case HistorySavedMsg:
		if msg.Err != nil {
			m.log.WithError(msg.Err).Warn(errmsg.Format(errmsg.OpHistorySave, msg.Err))
			return m, nil
		}
		return m, LoadHistoryCmd(m.history, m.historySize)

	case HistoryClearedMsg:
		if msg.Err != nil {
			m.log.WithError(msg.Err).Error("clear history failed")
			m.Notice.Show(notice.KindError, historyErrorTitle,
				errmsg.Format(errmsg.OpHistoryClear, msg.Err), m.Width, m.Height)
			return m, nil
		}
		m.log.Info("search history cleared")
		m.Input.SetSuggestions(nil)
		m.Notice.Show(notice.KindInfo, historyClearedTitle, historyClearedText, m.Width, m.Height)
		return m, nil

	case BrowserResultMsg:
		if msg.Err != nil {
			m.log.WithError(msg.Err).WithField("url", msg.URL).Error("open browser failed")
			m.Notice.Show(notice.KindError, browserErrorTitle,
				errmsg.FormatWith(errmsg.OpOpenBrowser, msg.URL, msg.Err), m.Width, m.Height)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.Searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and paste messages belong to the search box.
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Results.SetSize(m.Width, m.tableHeight())
	if m.Notice.Active() {
		m.Notice.SetSize(m.Width, m.Height)
	}
	return m, nil
}

// submit starts a search for the current input. An empty query shows a
// warning instead; a submit while a search is running is ignored.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.Searching {
		m.log.Debug("search already running, submit ignored")
		return m, nil
	}

	query := strings.TrimSpace(m.Input.Value())
	if query == "" {
		m.Notice.Show(notice.KindWarning, inputRequiredTitle, inputRequiredMessage, m.Width, m.Height)
		return m, nil
	}

	order := m.Order.Order()
	m.log.WithFields(logrus.Fields{
		"query": query,
		"order": order,
	}).Info("search submitted")

	m.Searching = true
	m.Status = StatusSearching
	m.Results.Clear()

	return m, tea.Batch(
		SearchCmd(m.ctx, m.searcher, query, m.maxResults, order),
		m.Spinner.Tick,
		SaveHistoryCmd(m.history, query, order),
	)
}

func (m Model) handleSearchResult(msg SearchResultMsg) (tea.Model, tea.Cmd) {
	m.Searching = false
	m.Status = StatusReady

	if len(msg.Results) == 0 {
		message := msg.Message
		if message == "" {
			message = highlights.NoResultsMessage
		}
		m.log.WithField("query", msg.Query).Info("search returned no results")
		m.Results.Clear()
		m.Notice.Show(notice.KindInfo, noResultsTitle, message, m.Width, m.Height)
		return m, nil
	}

	m.log.WithFields(logrus.Fields{
		"query":   msg.Query,
		"results": len(msg.Results),
	}).Info("search completed")
	m.Results.SetResults(msg.Results)
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	m.log.WithField("action", msg.String()).Debug("ui action")

	switch a := msg.Action.(type) {
	case resultstable.Open:
		return m, OpenBrowserCmd(m.openURL, a.URL)
	case orderselect.Changed, notice.Dismissed:
		return m, nil
	}
	return m, nil
}
