package views

import (
	"github.com/charmbracelet/lipgloss"

	"adminsearch/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Input         lipgloss.Style
	Dropdown      lipgloss.Style
	Header        lipgloss.Style
	Item          lipgloss.Style
	Selected      lipgloss.Style
	Highlight     lipgloss.Style
	Count         lipgloss.Style
	Provider      lipgloss.Style
	StatusMessage lipgloss.Style
	StatusError   lipgloss.Style
	Placeholder   lipgloss.Style

	StatusActive       lipgloss.Style
	StatusInactive     lipgloss.Style
	StatusDiscontinued lipgloss.Style
	StatusUnknown      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Item:          lipgloss.NewStyle().PaddingLeft(2),
		Selected:      lipgloss.NewStyle().PaddingLeft(2).Background(lipgloss.Color("238")).Bold(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Count:         lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Provider:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		StatusMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),

		StatusActive:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusInactive:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusDiscontinued: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusUnknown:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // gray
	}
}

// StatusStyle returns the badge style for a status style class
func (s *Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status.StyleClass() {
	case "status-active":
		return s.StatusActive
	case "status-inactive":
		return s.StatusInactive
	case "status-discontinued":
		return s.StatusDiscontinued
	default:
		return s.StatusUnknown
	}
}

// HeaderStyle returns the header style tinted with a section color
func (s *Styles) HeaderStyle(color string) lipgloss.Style {
	if color == "" {
		return s.Header
	}
	return s.Header.Foreground(lipgloss.Color(color))
}
