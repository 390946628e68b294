package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by every page.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Faint    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Help     lipgloss.Style
	Score    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("84")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		Score:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
	}
}
