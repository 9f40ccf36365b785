package report

import "github.com/charmbracelet/lipgloss"

// Palette used when Options.Styled is set.
var (
	headingColor = lipgloss.Color("#2196F3") // Blue
	valueColor   = lipgloss.Color("#8BC34A") // Lime Green
	mutedColor   = lipgloss.Color("#9E9E9E") // Grey
)

// render decorates one line of report text.
type render func(string) string

// styles groups the renderers of one report.
type styles struct {
	heading render
	value   render
	muted   render
}

// newStyles returns lipgloss renderers, or identity renderers when plain.
func newStyles(styled bool) styles {
	if !styled {
		plain := func(s string) string { return s }

		return styles{heading: plain, value: plain, muted: plain}
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(headingColor)
	value := lipgloss.NewStyle().Bold(true).Foreground(valueColor)
	muted := lipgloss.NewStyle().Italic(true).Foreground(mutedColor)

	return styles{
		heading: func(s string) string { return heading.Render(s) },
		value:   func(s string) string { return value.Render(s) },
		muted:   func(s string) string { return muted.Render(s) },
	}
}
