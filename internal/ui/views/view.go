package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ReservedLines is the chrome above and below the panes
const ReservedLines = 5

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Categories    []string
	CategoryIndex int
	SortLabel     string

	Searching   bool   // search mode is active
	SearchInput string // rendered text input
	Query       string

	Chips           []string // active refinements
	RefinementCount int

	Wide         bool
	DrawerOpen   bool
	SidebarWidth int
	SidebarLines []string // already scrolled to the viewport
	ResultLines  []string // already scrolled to the viewport
	MainHeight   int

	Stalled       bool
	Spinner       string
	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	Panels  *PanelRenderer
	Results *ResultsRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		Panels:  NewPanelRenderer(styles),
		Results: NewResultsRenderer(styles),
	}
}

// Styles returns the shared styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.titleLine(state))
	b.WriteString("\n")
	b.WriteString(r.searchLine(state))
	b.WriteString("\n")
	b.WriteString(r.chipsLine(state))
	b.WriteString("\n")
	b.WriteString(r.main(state))
	b.WriteString("\n")

	if state.StatusMessage != "" {
		b.WriteString(r.styles.Status.Render(fit(state.StatusMessage, state.Width)))
	}
	b.WriteString("\n")
	b.WriteString(state.HelpView)
	return b.String()
}

func (r *Renderer) titleLine(state ViewState) string {
	left := r.styles.Title.Render("facetgrip") + " "
	for i, name := range state.Categories {
		if i == state.CategoryIndex {
			left += r.styles.TabActive.Render(name)
		} else {
			left += r.styles.Tab.Render(name)
		}
	}

	right := ""
	if state.Stalled {
		right = r.styles.StatusLoading.Render(state.Spinner + " Loading")
	}
	return spread(left, right, state.Width)
}

func (r *Renderer) searchLine(state ViewState) string {
	var left string
	switch {
	case state.Searching:
		left = r.styles.Search.Render("/ ") + state.SearchInput
	case state.Query != "":
		left = r.styles.Search.Render("/ ") + state.Query
	default:
		left = r.styles.Dim.Render("/ search products")
	}

	right := r.styles.Dim.Render("sort: ") + state.SortLabel
	if !state.Wide {
		button := "[f] Filter & Sort"
		if state.RefinementCount > 0 {
			button += " " + r.styles.Badge.Render(fmt.Sprintf(" %d ", state.RefinementCount))
		}
		right = button + "  " + right
	}
	return spread(left, right, state.Width)
}

func (r *Renderer) chipsLine(state ViewState) string {
	if len(state.Chips) == 0 {
		return ""
	}
	chips := make([]string, 0, len(state.Chips)+1)
	for _, c := range state.Chips {
		chips = append(chips, r.styles.Chip.Render(c))
	}
	chips = append(chips, r.styles.Dim.Render("[x] clear"))
	line := strings.Join(chips, " ")
	if lipgloss.Width(line) > state.Width {
		line = fmt.Sprintf("%d refinements  %s", len(state.Chips), r.styles.Dim.Render("[x] clear"))
	}
	return line
}

func (r *Renderer) main(state ViewState) string {
	height := state.MainHeight
	if height < 1 {
		height = 1
	}
	box := lipgloss.NewStyle().Height(height).MaxHeight(height)

	switch {
	case state.Wide:
		sidebar := r.styles.Sidebar.
			Width(state.SidebarWidth).
			Height(height).
			MaxHeight(height).
			Render(strings.Join(state.SidebarLines, "\n"))
		results := box.Render(strings.Join(state.ResultLines, "\n"))
		return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", results)

	case state.DrawerOpen:
		header := spread(r.styles.Title.Render("Filter & Sort"), r.styles.Dim.Render("esc to close"), state.Width)
		lines := append([]string{header}, state.SidebarLines...)
		return box.Render(strings.Join(lines, "\n"))

	default:
		return box.Render(strings.Join(state.ResultLines, "\n"))
	}
}

// spread places left and right at the edges of width
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
