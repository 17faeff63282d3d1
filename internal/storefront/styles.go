package storefront

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title  lipgloss.Style
	Slot   lipgloss.Style
	Price  lipgloss.Style
	Muted  lipgloss.Style
	Screen lipgloss.Style
	Total  lipgloss.Style
	Drawer lipgloss.Style
	Notice lipgloss.Style
	Help   lipgloss.Style
}

func defaultStyles() styles {
	accent := lipgloss.Color("205")
	return styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Slot:   lipgloss.NewStyle().PaddingRight(2),
		Price:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Screen: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Total:  lipgloss.NewStyle().Bold(true),
		Drawer: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(accent).Padding(0, 1),
		Notice: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("196")).Padding(0, 2),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
