// Package render formats colors and levels for the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable text styles. Swatches always use the
// color they show.
type Theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Hint      lipgloss.Style
	Muted     lipgloss.Style
	Pass      lipgloss.Style
	Fail      lipgloss.Style
	Box       lipgloss.Style
	Separator string

	// SwatchWidth is the number of cells a swatch occupies.
	SwatchWidth int
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Pass:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Separator:   " + ",
		SwatchWidth: 6,
	}
}

// PlainTheme returns a theme without borders, for piping output.
func PlainTheme() Theme {
	theme := DefaultTheme()
	theme.Box = lipgloss.NewStyle()
	theme.SwatchWidth = 2
	return theme
}
