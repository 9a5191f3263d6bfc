package theme

import "github.com/charmbracelet/lipgloss"

// Terminal is the palette rendered for a terminal instead of a browser.
type Terminal struct {
	Title     lipgloss.Style
	Accent    lipgloss.Style
	Secondary lipgloss.Style
	Cursor    lipgloss.Style
}

// Terminal returns lipgloss styles matching the current mode.
func (s State) Terminal() Terminal {
	text, secondary, accent := lipgloss.Color("#111827"), lipgloss.Color("#4b5563"), lipgloss.Color("#9333ea")
	if s.IsDark {
		text, secondary, accent = lipgloss.Color("#ffffff"), lipgloss.Color("#d1d5db"), lipgloss.Color("#d8b4fe")
	}
	return Terminal{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(text),
		Accent:    lipgloss.NewStyle().Foreground(accent),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Cursor:    lipgloss.NewStyle().Foreground(accent).Blink(true),
	}
}
