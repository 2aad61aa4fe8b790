package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	op       lipgloss.Style
	opActive lipgloss.Style
	result   lipgloss.Style
	err      lipgloss.Style
	history  lipgloss.Style
	notice   lipgloss.Style
}

func newStyles(accent string) styles {
	color := lipgloss.Color(accent)
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(color),
		label:    lipgloss.NewStyle().Width(3).Foreground(lipgloss.Color("245")),
		op:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241")),
		opActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true).Foreground(color),
		result:   lipgloss.NewStyle().Bold(true).Foreground(color),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		history:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		notice:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
	}
}
