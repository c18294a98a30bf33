package ui

import "github.com/charmbracelet/lipgloss"

// Colors used across the MedLens views.
var (
	ColorTeal   = lipgloss.Color("86")
	ColorViolet = lipgloss.Color("62")
	ColorWhite  = lipgloss.Color("255")
	ColorDim    = lipgloss.Color("242")
	ColorGreen  = lipgloss.Color("78")
	ColorAmber  = lipgloss.Color("214")
	ColorRed    = lipgloss.Color("203")
)

// Styles holds all Lip Gloss style definitions.
// This allows for dependency injection and testing.
type Styles struct {
	// Item card
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardSummary lipgloss.Style
	KindPaper   lipgloss.Style
	KindVideo   lipgloss.Style
	MetaLabel   lipgloss.Style
	MetaValue   lipgloss.Style

	StatusRecruiting lipgloss.Style
	StatusCompleted  lipgloss.Style
	StatusTerminated lipgloss.Style

	// Lists (saved, review)
	ListItem     lipgloss.Style
	SelectedItem lipgloss.Style

	// Chrome
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	StatusBar   lipgloss.Style
	FlashInfo   lipgloss.Style
	FlashError  lipgloss.Style
	Hint        lipgloss.Style
}

// DefaultStyles returns the default look.
func DefaultStyles() Styles {
	s := Styles{}

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorViolet).
		Padding(1, 2)
	s.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorWhite)
	s.CardSummary = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	s.KindPaper = lipgloss.NewStyle().Foreground(ColorTeal).Bold(true)
	s.KindVideo = lipgloss.NewStyle().Foreground(ColorAmber).Bold(true)
	s.MetaLabel = lipgloss.NewStyle().Foreground(ColorDim)
	s.MetaValue = lipgloss.NewStyle().Foreground(ColorWhite)

	s.StatusRecruiting = lipgloss.NewStyle().Foreground(ColorGreen)
	s.StatusCompleted = lipgloss.NewStyle().Foreground(ColorDim)
	s.StatusTerminated = lipgloss.NewStyle().Foreground(ColorRed)

	s.ListItem = lipgloss.NewStyle().Padding(0, 1)
	s.SelectedItem = lipgloss.NewStyle().
		Bold(true).
		Background(ColorViolet).
		Foreground(ColorWhite).
		Padding(0, 1)

	s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(ColorTeal).Padding(0, 1)
	s.TabInactive = lipgloss.NewStyle().Foreground(ColorDim).Padding(0, 1)
	s.StatusBar = lipgloss.NewStyle().Foreground(ColorDim)
	s.FlashInfo = lipgloss.NewStyle().Foreground(ColorTeal)
	s.FlashError = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	s.Hint = lipgloss.NewStyle().Foreground(ColorDim)

	return s
}
