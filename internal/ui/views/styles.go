package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Stage         lipgloss.Style
	StageDone     lipgloss.Style
	StageCurrent  lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	PaneActive    lipgloss.Style
	PaneInactive  lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	PopupBox      lipgloss.Style
	ConfirmBox    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Stage:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StageDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StageCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Confirm:      lipgloss.NewStyle().Bold(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(14),
		Value:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		PaneInactive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 3).
			BorderForeground(lipgloss.Color("214")),
	}
}

// StockStyle returns the colour used for a panel's stock badge
func (s *Styles) StockStyle(level int) lipgloss.Style {
	switch {
	case level <= 0:
		return s.StatusError
	case level <= LowStockThreshold:
		return s.StatusWarning
	default:
		return s.StatusSuccess
	}
}
