package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Search        lipgloss.Style
	Chip          lipgloss.Style
	Badge         lipgloss.Style
	Help          lipgloss.Style
	Sidebar       lipgloss.Style
	PanelHeader   lipgloss.Style
	PanelFooter   lipgloss.Style
	Fade          lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	Refined       lipgloss.Style
	Count         lipgloss.Style
	Star          lipgloss.Style
	Price         lipgloss.Style
	Button        lipgloss.Style
	ButtonOff     lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Scroll        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		TabActive:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Search:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Chip:          lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("238")).Padding(0, 1),
		Badge:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Help:          lipgloss.NewStyle().Faint(true),
		Sidebar:       lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("238")).PaddingRight(1),
		PanelHeader:   lipgloss.NewStyle().Bold(true),
		PanelFooter:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
		Fade:          lipgloss.NewStyle().Faint(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Refined:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Count:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Star:          lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Price:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Button:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 2),
		ButtonOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")).Padding(0, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// SwatchColor returns the terminal color for a color facet value
func SwatchColor(name string) lipgloss.Color {
	switch name {
	case "black":
		return lipgloss.Color("240")
	case "white":
		return lipgloss.Color("255")
	case "silver", "grey", "gray":
		return lipgloss.Color("250")
	case "blue":
		return lipgloss.Color("33")
	case "red":
		return lipgloss.Color("203")
	case "green":
		return lipgloss.Color("78")
	case "yellow", "gold":
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("245")
	}
}
