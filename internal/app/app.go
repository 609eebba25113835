// internal/app/app.go

// Package app is the root bubbletea model: a search box, an order selector,
// a status line and the results table.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/hoopreel/internal/browser"
	"github.com/llehouerou/hoopreel/internal/highlights"
	"github.com/llehouerou/hoopreel/internal/keymap"
	"github.com/llehouerou/hoopreel/internal/logging"
	"github.com/llehouerou/hoopreel/internal/ui/notice"
	"github.com/llehouerou/hoopreel/internal/ui/orderselect"
	"github.com/llehouerou/hoopreel/internal/ui/resultstable"
	"github.com/llehouerou/hoopreel/internal/ui/styles"
)

// Status line values.
const (
	StatusReady     = "Ready"
	StatusSearching = "Searching..."
)

const (
	inputPlaceholder = "Enter keywords (e.g. Lakers vs Celtics)"
	inputPrompt      = "› "
	inputCharLimit   = 200

	defaultHistorySize = 20
)

// Deps are the collaborators and settings the model is built from.
type Deps struct {
	Searcher    Searcher
	History     HistoryStore // nil disables history
	OpenURL     browser.Opener
	Logger      logrus.FieldLogger
	MaxResults  int
	Order       highlights.Order
	HistorySize int
}

// Model is the root application model.
type Model struct {
	ctx         context.Context
	searcher    Searcher
	history     HistoryStore
	openURL     browser.Opener
	log         logrus.FieldLogger
	maxResults  int
	historySize int

	Input     textinput.Model
	Order     orderselect.Model
	Results   resultstable.Model
	Spinner   spinner.Model
	Notice    notice.Model
	Focus     FocusTarget
	Searching bool
	Status    string
	Width     int
	Height    int
}

// New creates the application model. ctx bounds every search it starts.
func New(ctx context.Context, deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.OpenURL == nil {
		deps.OpenURL = browser.Open
	}
	if deps.MaxResults <= 0 {
		deps.MaxResults = highlights.DefaultMaxResults
	}
	if _, err := highlights.ParseOrder(deps.Order.String()); err != nil {
		deps.Order = highlights.OrderRelevance
	}
	if deps.HistorySize <= 0 {
		deps.HistorySize = defaultHistorySize
	}

	m := Model{
		ctx:         ctx,
		searcher:    deps.Searcher,
		history:     deps.History,
		openURL:     deps.OpenURL,
		log:         deps.Logger,
		maxResults:  deps.MaxResults,
		historySize: deps.HistorySize,
		Input:       newInput(),
		Order:       orderselect.New(deps.Order),
		Results:     resultstable.New(),
		Spinner:     spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.T().S().Focused)),
		Notice:      notice.New(),
		Status:      StatusReady,
	}
	m.setFocus(FocusSearch)
	return m
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.Prompt = inputPrompt
	ti.CharLimit = inputCharLimit
	ti.ShowSuggestions = true
	ti.KeyMap.AcceptSuggestion = searchBinding(keymap.ActionAccept)
	ti.KeyMap.NextSuggestion = searchBinding(keymap.ActionHistoryNext)
	ti.KeyMap.PrevSuggestion = searchBinding(keymap.ActionHistoryPrev)
	ti.PromptStyle = styles.T().S().Focused
	ti.TextStyle = styles.T().S().Base
	ti.PlaceholderStyle = styles.T().S().Subtle
	return ti
}

// searchBinding builds a textinput binding from the search box keymap.
func searchBinding(a keymap.Action) key.Binding {
	return key.NewBinding(key.WithKeys(searchKeys.KeysFor(a)...))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, LoadHistoryCmd(m.history, m.historySize))
}
