package views

import (
	"github.com/charmbracelet/lipgloss"

	"typetrainer/internal/ui/logic"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	StatusView  lipgloss.Style
	StatusEdit  lipgloss.Style
	PromptBox   lipgloss.Style
	KeyboardBox lipgloss.Style
	KeyCap      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Cursor      lipgloss.Style
	Correct     lipgloss.Style
	Incorrect   lipgloss.Style
	Pending     lipgloss.Style
	Preview     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		StatusView: lipgloss.NewStyle().Blink(true),
		StatusEdit: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		PromptBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		KeyboardBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		KeyCap: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")), // white
		Preview:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // gray
	}
}

// ForSegment returns the style for a segment kind
func (s *Styles) ForSegment(kind logic.SegmentKind) lipgloss.Style {
	switch kind {
	case logic.Correct:
		return s.Correct
	case logic.Incorrect:
		return s.Incorrect
	case logic.Pending:
		return s.Pending
	default:
		return s.Preview
	}
}
