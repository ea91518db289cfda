package cli

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Index  lipgloss.Style
	Value  lipgloss.Style
	Footer lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Index:  lipgloss.NewStyle().Faint(true).Align(lipgloss.Right),
		Value:  lipgloss.NewStyle().Align(lipgloss.Right),
		Footer: lipgloss.NewStyle().Faint(true),
	}
}
