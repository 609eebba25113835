package resultstable

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/hoopreel/internal/ui/render"
	"github.com/llehouerou/hoopreel/internal/ui/styles"
)

const (
	emptyText    = "No results. Type keywords and press enter."
	cursorSymbol = "▶"

	platformWidth = 8
	dateWidth     = 34
	urlWidth      = 43
	minTitleWidth = 20
	columnGap     = 1
	prefixWidth   = 2
)

type columns struct {
	platform, title, date, url int
}

// layoutColumns splits the row width between the four columns. URLs and
// dates keep their natural width while the title gets at least
// minTitleWidth; below that everything is scaled down.
func layoutColumns(width int) columns {
	avail := max(width-prefixWidth-3*columnGap, 0)
	fixed := platformWidth + dateWidth + urlWidth
	if avail-fixed >= minTitleWidth {
		return columns{platformWidth, avail - fixed, dateWidth, urlWidth}
	}
	rest := max(avail-platformWidth, 0)
	date := rest * 25 / 100
	url := rest * 35 / 100
	return columns{min(platformWidth, avail), rest - date - url, date, url}
}

// View renders the table panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.InnerWidth()
	cols := layoutColumns(innerWidth)
	s := styles.T().S()

	header := s.Heading.Render(render.TruncateAndPad(fmt.Sprintf("Results (%d)", m.list.Len()), innerWidth))
	colHeader := s.Muted.Render(m.formatRow("", "Platform", "Title", "Date", "URL", cols, innerWidth))

	content := header + "\n" +
		render.Separator(innerWidth) + "\n" +
		colHeader + "\n" +
		m.renderRows(cols, innerWidth)

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderRows(cols columns, innerWidth int) string {
	height := m.ListHeight(tableOverhead)
	lines := make([]string, 0, height)
	items := m.list.Items()
	start, end := m.list.VisibleRange()
	now := m.now()
	s := styles.T().S()

	if len(items) == 0 && height > 0 {
		lines = append(lines, s.Subtle.Render(render.TruncateAndPad(emptyText, innerWidth)))
	}
	for idx := start; idx < end; idx++ {
		r := items[idx]
		prefix := ""
		if idx == m.list.SelectedIndex() {
			prefix = cursorSymbol
		}
		line := m.formatRow(prefix, r.Platform, r.Title, formatDate(r.UploadDate, now), r.URL, cols, innerWidth)
		switch {
		case idx == m.list.SelectedIndex() && m.IsFocused():
			line = s.Cursor.Render(line)
		case idx == m.list.SelectedIndex():
			line = s.Title.Render(line)
		default:
			line = s.Base.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", innerWidth))
	}

	return strings.Join(lines, "\n")
}

func (m Model) formatRow(prefix, platform, title, date, url string, cols columns, width int) string {
	gap := strings.Repeat(" ", columnGap)
	row := render.TruncateAndPad(prefix, prefixWidth) +
		render.TruncateAndPad(render.Cell(platform), cols.platform) + gap +
		render.TruncateAndPad(render.Cell(title), cols.title) + gap +
		render.TruncateAndPad(date, cols.date) + gap +
		render.TruncateAndPad(url, cols.url)
	return render.TruncateAndPad(row, width)
}

// formatDate shows the provider timestamp verbatim, followed by its age
// when it parses as RFC 3339.
func formatDate(raw string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return render.Cell(raw)
	}
	return raw + " (" + humanize.RelTime(t, now, "ago", "from now") + ")"
}
