// Package display renders game states, settlements and simulation results
// for the terminal.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem/poker"
)

// Styles holds every lipgloss style the renderers use.
type Styles struct {
	Border    lipgloss.Style
	Header    lipgloss.Style
	HandInfo  lipgloss.Style
	Actions   lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
}

// DefaultStyles returns the standard colour scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		HandInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Actions: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Cards formats cards with suit symbols, hearts and diamonds in red.
func (s *Styles) Cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "[]"
	}

	formatted := make([]string, len(cards))
	for i, card := range cards {
		if card.Suit() == poker.Hearts || card.Suit() == poker.Diamonds {
			formatted[i] = s.RedCard.Render(card.PrettyString())
		} else {
			formatted[i] = s.BlackCard.Render(card.PrettyString())
		}
	}

	return "[" + strings.Join(formatted, " ") + "]"
}
