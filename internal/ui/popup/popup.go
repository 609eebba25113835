// Package popup draws modal boxes over the main view.
package popup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Modal is a box shown over the main view. While active it receives every
// key press.
type Modal interface {
	Active() bool
	Update(msg tea.Msg) (Modal, tea.Cmd)
	// View renders the box content without its frame.
	View() string
	// RenderOverlay renders the framed box centered on the screen.
	RenderOverlay() string
}

// NoticeMaxWidth caps the outer width of notice boxes.
const NoticeMaxWidth = 64

// frame is the horizontal and vertical space taken by border and padding.
const (
	frameW = 6
	frameH = 4
)

// Overlay draws the modal over base when it is active.
func Overlay(base string, m Modal, width int) string {
	if m == nil || !m.Active() {
		return base
	}
	return Compose(base, m.RenderOverlay(), width)
}

// RenderBordered frames content with a rounded border, at most maxWidth
// columns wide, and centers it on a screenW x screenH screen.
func RenderBordered(content string, screenW, screenH, maxWidth int, border lipgloss.Color) string {
	width, height := boxSize(content, screenW, screenH, maxWidth)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width-2).
		Height(height-2).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

// boxSize fits the box to its content, bounded by maxWidth and the screen.
func boxSize(content string, screenW, screenH, maxWidth int) (width, height int) {
	width = lipgloss.Width(content) + frameW
	if maxWidth > 0 {
		width = min(width, maxWidth)
	}
	width = min(width, screenW-4)
	height = min(lipgloss.Height(content)+frameH, screenH-4)
	return width, height
}

// Center places box in the middle of the screen, padding with spaces.
func Center(box string, screenW, screenH int) string {
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

// Compose draws overlay on top of base. Leading and trailing spaces of each
// overlay line are transparent; everything between them replaces base.
func Compose(base, overlay string, width int) string {
	lines := strings.Split(base, "\n")
	for i, over := range strings.Split(overlay, "\n") {
		if i >= len(lines) {
			break
		}
		plain := strings.TrimRight(ansi.Strip(over), " ")
		body := strings.TrimLeft(plain, " ")
		if body == "" {
			continue
		}
		start := len(plain) - len(body)
		end := ansi.StringWidth(plain)

		row := padTo(lines[i], width)
		left := padTo(ansi.Cut(row, 0, start), start)
		right := ansi.Cut(row, end, width)
		lines[i] = left + ansi.Cut(over, start, end) + padTo(right, width-end)
	}
	return strings.Join(lines, "\n")
}

func padTo(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
