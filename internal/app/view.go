// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/hoopreel/internal/keymap"
	"github.com/llehouerou/hoopreel/internal/ui/popup"
	"github.com/llehouerou/hoopreel/internal/ui/render"
	"github.com/llehouerou/hoopreel/internal/ui/styles"
)

const (
	appTitle    = "Basketball Highlights Search"
	buttonLabel = "Search"

	titleHeight     = 1
	searchRowHeight = 3
	footerHeight    = 1

	minInputWidth = 12
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	sections := []string{
		m.renderTitle(),
		m.renderSearchRow(),
	}
	if table := m.Results.View(); table != "" {
		sections = append(sections, table)
	}
	sections = append(sections, m.renderFooter())
	return popup.Overlay(strings.Join(sections, "\n"), &m.Notice, m.Width)
}

func (m Model) tableHeight() int {
	return max(m.Height-titleHeight-searchRowHeight-footerHeight, 0)
}

func (m Model) renderTitle() string {
	s := styles.T().S()
	status := s.Muted.Render(m.Status)
	if m.Searching {
		status = m.Spinner.View() + " " + s.Focused.Render(m.Status)
	}
	title := styles.Gradient(appTitle, styles.T().Primary, styles.T().Secondary)
	row := render.Row(" "+title, status+" ", m.Width)
	return ansi.Truncate(row, m.Width, "")
}

// searchRowWidths returns the outer widths of the search box, the Search
// button and the order selector, which together span the window.
func (m Model) searchRowWidths() (input, button, order int) {
	button = lipgloss.Width(m.renderButton())
	order = lipgloss.Width(m.Order.View())
	input = max(m.Width-button-order, minInputWidth)
	return input, button, order
}

func (m Model) renderSearchRow() string {
	inputW, _, _ := m.searchRowWidths()

	// outer width minus border and padding
	inner := max(inputW-4, 1)
	ti := m.Input
	ti.Width = max(inner-lipgloss.Width(ti.Prompt)-1, 1)
	field := styles.FieldStyle(m.Focus == FocusSearch).
		Width(inputW - 2).
		Render(ansi.Truncate(ti.View(), inner, ""))

	row := lipgloss.JoinHorizontal(lipgloss.Top, field, m.renderButton(), m.Order.View())
	lines := strings.Split(row, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.Width, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderButton() string {
	s := styles.T().S()
	label := s.Focused.Render(buttonLabel)
	if m.Searching {
		label = s.Disabled.Render(buttonLabel)
	}
	return styles.FieldStyle(false).Render(label)
}

// renderFooter lists the focused control's keys followed by the global ones.
func (m Model) renderFooter() string {
	help := keymap.Help(m.Focus.String(), keymap.ContextGlobal)
	return styles.T().S().Subtle.Render(render.Truncate(" "+help, m.Width))
}
