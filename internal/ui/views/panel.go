package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"facetgrip/internal/domain"
)

// ValueLine is one facet value inside a panel
type ValueLine struct {
	Attribute string
	Value     string
	Count     int
	Refined   bool
}

// PanelView is everything needed to draw one refinement panel
type PanelView struct {
	ID           domain.PanelID
	Header       string
	Type         domain.RefinementType
	Expanded     bool // the store's flag, drives the +/- icon
	RefinedCount int
	Values       []ValueLine
	Footer       string
	MaxHeight    int // rows of the value box; 0 means unbounded
	Scroll       int // first visible value inside the box

	RenderedRows int     // body rows currently on screen
	Fade         float64 // rendered overlay opacity
	Cursor       int     // -1 none, 0 header, i+1 value i
	Focused      bool
}

// Overflows reports whether the value box scrolls
func (p PanelView) Overflows() bool {
	return p.MaxHeight > 0 && len(p.Values) > p.MaxHeight
}

// BodyRows returns the natural height of the panel body
func BodyRows(p PanelView) int {
	n := len(p.Values)
	if p.Overflows() {
		n = p.MaxHeight
	}
	if p.Footer != "" {
		n++
	}
	return n
}

// ClampScroll keeps scroll inside the value box
func ClampScroll(p PanelView, scroll int) int {
	if !p.Overflows() {
		return 0
	}
	if max := len(p.Values) - p.MaxHeight; scroll > max {
		scroll = max
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}

// PanelRenderer draws refinement panels
type PanelRenderer struct {
	styles *Styles
}

// NewPanelRenderer creates a panel renderer
func NewPanelRenderer(styles *Styles) *PanelRenderer {
	return &PanelRenderer{styles: styles}
}

// Render returns the header line followed by the visible body rows
func (r *PanelRenderer) Render(p PanelView, width int) []string {
	lines := []string{r.header(p, width)}

	styled, plain := r.body(p, width)
	rows := p.RenderedRows
	if rows > len(styled) {
		rows = len(styled)
	}
	if rows < 0 {
		rows = 0
	}
	for i := 0; i < rows; i++ {
		if i == rows-1 && p.Fade > 0 {
			lines = append(lines, r.styles.Fade.Render(plain[i]))
			continue
		}
		lines = append(lines, styled[i])
	}
	return lines
}

func (r *PanelRenderer) header(p PanelView, width int) string {
	arrow := "▸"
	icon := "+"
	if p.Expanded {
		arrow = "▾"
		icon = "−"
	}
	marker := " "
	if p.Focused && p.Cursor == 0 {
		marker = "›"
	}

	badge := ""
	if p.RefinedCount > 0 {
		badge = " " + strconv.Itoa(p.RefinedCount) + " "
	}
	scroll := ""
	if p.Overflows() {
		scroll = "↕ "
	}

	avail := width - runewidth.StringWidth(marker+arrow+" ") - runewidth.StringWidth(badge) - runewidth.StringWidth(scroll+icon) - 1
	title := fit(p.Header, avail)

	var b strings.Builder
	b.WriteString(r.styles.Highlight.Render(marker))
	b.WriteString(arrow + " ")
	if p.Focused && p.Cursor == 0 {
		b.WriteString(r.styles.Highlight.Render(title))
	} else {
		b.WriteString(r.styles.PanelHeader.Render(title))
	}
	if badge != "" {
		b.WriteString(r.styles.Badge.Render(badge))
	}
	b.WriteString(" ")
	b.WriteString(r.styles.Scroll.Render(scroll))
	b.WriteString(icon)
	return b.String()
}

// body returns the full body, styled and plain, with the value box scrolled
func (r *PanelRenderer) body(p PanelView, width int) ([]string, []string) {
	styled := make([]string, 0, len(p.Values)+1)
	plain := make([]string, 0, len(p.Values)+1)
	for i, v := range p.Values {
		s, pl := r.valueRow(p, v, p.Focused && p.Cursor == i+1, width)
		styled = append(styled, s)
		plain = append(plain, pl)
	}

	if p.Overflows() {
		scroll := ClampScroll(p, p.Scroll)
		vp := viewport.New(width, p.MaxHeight)
		vp.SetContent(strings.Join(styled, "\n"))
		vp.SetYOffset(scroll)
		styled = strings.Split(vp.View(), "\n")
		plain = plain[scroll : scroll+p.MaxHeight]
	}

	if p.Footer != "" {
		f := fit("  "+p.Footer, width)
		styled = append(styled, r.styles.PanelFooter.Render(f))
		plain = append(plain, f)
	}
	return styled, plain
}

func (r *PanelRenderer) valueRow(p PanelView, v ValueLine, selected bool, width int) (string, string) {
	marker := " "
	if selected {
		marker = "›"
	}

	var mark, markStyled string
	switch p.Type {
	case domain.RefinementColor:
		mark = "●"
		markStyled = lipgloss.NewStyle().Foreground(SwatchColor(v.Value)).Render(mark)
		if v.Refined {
			mark = "◉"
			markStyled = r.styles.Refined.Foreground(SwatchColor(v.Value)).Render(mark)
		}
	case domain.RefinementRating:
		mark = "( )"
		if v.Refined {
			mark = "(•)"
		}
		markStyled = mark
	default:
		mark = "[ ]"
		if v.Refined {
			mark = "[x]"
		}
		markStyled = mark
		if v.Refined {
			markStyled = r.styles.Refined.Render(mark)
		}
	}

	label := v.Value
	if p.Type == domain.RefinementRating {
		if n, err := strconv.Atoi(v.Value); err == nil {
			label = Stars(float64(n))
		}
	}
	count := fmt.Sprintf("%d", v.Count)

	prefix := " " + marker + " " // indent under the header
	avail := width - runewidth.StringWidth(prefix) - runewidth.StringWidth(mark) - 1 - runewidth.StringWidth(count) - 1
	label = fit(label, avail)

	plain := prefix + mark + " " + label + " " + count

	labelStyled := label
	switch {
	case selected:
		labelStyled = r.styles.Highlight.Render(label)
	case v.Refined:
		labelStyled = r.styles.Refined.Render(label)
	}
	if p.Type == domain.RefinementRating {
		labelStyled = r.styles.Star.Render(label)
		if selected {
			labelStyled = r.styles.Highlight.Render(label)
		}
	}
	styled := " " + r.styles.Highlight.Render(marker) + " " + markStyled + " " + labelStyled + " " + r.styles.Count.Render(count)
	return styled, plain
}
