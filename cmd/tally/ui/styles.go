// Package ui is the terminal front end of tally: a bubbletea program that
// lays habit cards out in a grid, routes keys to the focused habit and
// hosts the command bar. All habit semantics live in internal/habit; this
// package only draws and dispatches.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"tally/internal/config"
	"tally/internal/habit"
)

// Styles holds every lipgloss style the app uses, derived from the user's
// configured colors.
type Styles struct {
	// Habit card internals
	Title    lipgloss.Style
	Reached  lipgloss.Style
	Todo     lipgloss.Style
	Inactive lipgloss.Style

	// Card frames
	Card        lipgloss.Style
	FocusedCard lipgloss.Style

	// Chrome
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
	Help   lipgloss.Style
}

// NewStyles builds the style set from configured colors.
func NewStyles(colors config.Colors) Styles {
	reached := lipgloss.Color(colors.Reached)
	todo := lipgloss.Color(colors.Todo)
	inactive := lipgloss.Color(colors.Inactive)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Reached:  lipgloss.NewStyle().Foreground(reached),
		Todo:     lipgloss.NewStyle().Foreground(todo),
		Inactive: lipgloss.NewStyle().Foreground(inactive),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(inactive).
			Padding(0, 1),

		FocusedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(reached).
			Padding(0, 1),

		Status: lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true),
		Prompt: lipgloss.NewStyle().Foreground(reached).Bold(true),
		Help:   lipgloss.NewStyle().Faint(true),
	}
}

// RenderContext assembles the habit-facing drawing context for one card.
func (s Styles) RenderContext(look config.Look, today habit.Date, focused bool) habit.RenderContext {
	return habit.RenderContext{
		Today:     today,
		Focused:   focused,
		TrueChr:   look.TrueChr,
		FalseChr:  look.FalseChr,
		FutureChr: look.FutureChr,
		Title:     s.Title,
		Reached:   s.Reached,
		Todo:      s.Todo,
		Inactive:  s.Inactive,
	}
}
