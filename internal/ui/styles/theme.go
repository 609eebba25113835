package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Accent colors
	Primary   lipgloss.Color // Orange - focused controls, selected row
	Secondary lipgloss.Color // Court blue - headings

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color // Selected row background

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Notice colors
	Info    lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Cursor   lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
	Info     lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#f97316"),
	Secondary: lipgloss.Color("#60a5fa"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#f97316"),

	Info:    lipgloss.Color("#60a5fa"),
	Warning: lipgloss.Color("#f1a208"),
	Error:   lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Heading: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.Primary).
			Bold(true),
		Focused:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(t.FgSubtle).Strikethrough(true),
		Info:     lipgloss.NewStyle().Foreground(t.Info).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(t.Error).Bold(true),
	}
}
