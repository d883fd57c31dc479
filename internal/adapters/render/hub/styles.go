package hub

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	strategy lipgloss.Style
	present  lipgloss.Style
	missing  lipgloss.Style
	warning  lipgloss.Style
	meta     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		strategy: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		present:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		missing:  lipgloss.NewStyle().Faint(true),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
