// Package notice provides a modal message box with a single dismiss action.
package notice

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hoopreel/internal/keymap"
	"github.com/llehouerou/hoopreel/internal/ui"
	"github.com/llehouerou/hoopreel/internal/ui/action"
	"github.com/llehouerou/hoopreel/internal/ui/popup"
	"github.com/llehouerou/hoopreel/internal/ui/styles"
)

var _ popup.Modal = (*Model)(nil)

var keys = keymap.ForContext(keymap.ContextNotice)

// Kind selects the notice severity.
type Kind int

const (
	KindInfo Kind = iota
	KindWarning
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

func (k Kind) color() lipgloss.Color {
	t := styles.T()
	switch k {
	case KindWarning:
		return t.Warning
	case KindError:
		return t.Error
	default:
		return t.Info
	}
}

func (k Kind) titleStyle() lipgloss.Style {
	s := styles.T().S()
	switch k {
	case KindWarning:
		return s.Warning
	case KindError:
		return s.Error
	default:
		return s.Info
	}
}

const hint = "enter/esc: close"

// Model is a modal notice. It blocks other input until dismissed.
type Model struct {
	ui.Base
	kind    Kind
	title   string
	message string
	active  bool
}

// New creates an inactive notice.
func New() Model {
	return Model{}
}

// Show displays a notice sized against the given screen dimensions.
func (m *Model) Show(kind Kind, title, message string, width, height int) {
	m.kind = kind
	m.title = title
	m.message = message
	m.SetSize(width, height)
	m.active = true
}

// Reset hides the notice and clears its content.
func (m *Model) Reset() {
	m.kind = KindInfo
	m.title = ""
	m.message = ""
	m.active = false
}

// Active returns whether the notice is shown.
func (m Model) Active() bool {
	return m.active
}

// Kind returns the severity of the current notice.
func (m Model) Kind() Kind {
	return m.kind
}

// Title returns the current notice title.
func (m Model) Title() string {
	return m.title
}

// Message returns the current notice body.
func (m Model) Message() string {
	return m.message
}

// Update dismisses an active notice on any of its close keys.
func (m *Model) Update(msg tea.Msg) (popup.Modal, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if !keys.Is(keyMsg.String(), keymap.ActionDismiss) {
		return m, nil
	}
	kind := m.kind
	m.Reset()
	return m, action.Cmd(Source, Dismissed{Kind: kind})
}

// View returns the box content; RenderOverlay frames it.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	wrap := max(min(popup.NoticeMaxWidth-6, m.Width()-10), 10)
	body := lipgloss.NewStyle().Width(wrap).Render(m.message)

	return m.kind.titleStyle().Render(m.title) + "\n\n" +
		styles.T().S().Base.Render(body) + "\n\n" +
		styles.T().S().Subtle.Render(hint)
}

// RenderOverlay returns the framed, centered notice ready for popup.Overlay.
func (m *Model) RenderOverlay() string {
	content := m.View()
	if content == "" {
		return ""
	}
	return popup.RenderBordered(content, m.Width(), m.Height(), popup.NoticeMaxWidth, m.kind.color())
}
