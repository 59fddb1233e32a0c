package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("63")
	colorWarn   = lipgloss.Color("214")
	colorOK     = lipgloss.Color("42")
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	// Region is used for "US Vehicles:" style headings, Started for the
	// start lines under them.
	Region  lipgloss.Style
	Started lipgloss.Style
}

func DefaultTheme() Theme {
	faint := lipgloss.NewStyle().Faint(true)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Subtitle: faint,
		Help:     faint,
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent),
		Toast:   lipgloss.NewStyle().Foreground(colorWarn),
		Region:  lipgloss.NewStyle().Bold(true).Underline(true),
		Started: lipgloss.NewStyle().Foreground(colorOK),
	}
}
