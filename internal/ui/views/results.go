package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/mattn/go-runewidth"
)

// HitView is one product row
type HitView struct {
	Title   string
	Rating  float64
	Reviews int
	Price   float64
}

// ResultsView is everything needed to draw the results pane
type ResultsView struct {
	Hits       []HitView
	Cursor     int
	Focused    bool
	HasResults bool
	NbHits     int
	IsLastPage bool
	Stalled    bool
	Progress   float64
	Query      string
	Err        string
}

// LoadMoreIndex returns the item index of the load-more row, or -1
func LoadMoreIndex(v ResultsView) int {
	if !v.HasResults || v.NbHits == 0 || v.IsLastPage {
		return -1
	}
	return len(v.Hits)
}

// SentinelLine returns the line of the load-more control, or -1. The
// control is what auto-loading watches for.
func SentinelLine(v ResultsView) int {
	if LoadMoreIndex(v) < 0 {
		return -1
	}
	return len(v.Hits) + 2
}

// ItemLine maps a result item index to its line
func ItemLine(v ResultsView, index int) int {
	if index >= len(v.Hits) {
		return SentinelLine(v)
	}
	return index
}

// ResultsRenderer draws the hit list and the load-more area
type ResultsRenderer struct {
	styles   *Styles
	progress progress.Model
}

// NewResultsRenderer creates a results renderer
func NewResultsRenderer(styles *Styles) *ResultsRenderer {
	return &ResultsRenderer{
		styles:   styles,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Lines returns the full, unscrolled results pane
func (r *ResultsRenderer) Lines(v ResultsView, width int) []string {
	if !v.HasResults {
		return []string{r.styles.Status.Render("Searching…")}
	}
	if v.NbHits == 0 {
		msg := "No results."
		if v.Query != "" {
			msg = fmt.Sprintf("No results for “%s”.", v.Query)
		}
		lines := []string{r.styles.Status.Render(msg)}
		if v.Err != "" {
			lines = append(lines, r.styles.StatusError.Render(v.Err))
		}
		return lines
	}

	lines := make([]string, 0, len(v.Hits)+3)
	for i, h := range v.Hits {
		lines = append(lines, r.hitRow(h, v.Focused && v.Cursor == i, width))
	}
	lines = append(lines, "")

	loaded := len(v.Hits)
	viewed := fmt.Sprintf("viewed %d of %d products", loaded, v.NbHits)
	if v.IsLastPage {
		lines = append(lines, r.styles.Dim.Render(viewed))
		return lines
	}

	barWidth := width - runewidth.StringWidth(viewed) - 2
	if barWidth > 30 {
		barWidth = 30
	}
	progressLine := viewed
	if barWidth >= 5 {
		r.progress.Width = barWidth
		progressLine = r.progress.ViewAs(v.Progress) + "  " + r.styles.Dim.Render(viewed)
	}
	lines = append(lines, progressLine)

	marker := " "
	if v.Focused && v.Cursor == len(v.Hits) {
		marker = "›"
	}
	button := r.styles.Button.Render("Load more")
	if v.Stalled {
		button = r.styles.ButtonOff.Render("Loading…")
	}
	line := r.styles.Highlight.Render(marker) + " " + button
	if v.Err != "" {
		line += "  " + r.styles.StatusError.Render(v.Err)
	}
	lines = append(lines, line)
	return lines
}

func (r *ResultsRenderer) hitRow(h HitView, selected bool, width int) string {
	marker := " "
	if selected {
		marker = "›"
	}
	reviews := ""
	if h.Reviews > 0 {
		reviews = fmt.Sprintf("(%d)", h.Reviews)
	}
	price := fmt.Sprintf("$%.2f", h.Price)
	right := fmt.Sprintf("%s %-6s %9s", Stars(h.Rating), reviews, price)

	avail := width - runewidth.StringWidth(marker) - 1 - runewidth.StringWidth(right) - 1
	if avail < 8 {
		// Too narrow for the details column
		return r.styles.Highlight.Render(marker) + " " + fit(h.Title, width-2)
	}
	title := fit(h.Title, avail)
	if selected {
		title = r.styles.Highlight.Render(title)
	}
	return r.styles.Highlight.Render(marker) + " " + title + " " +
		r.styles.Star.Render(Stars(h.Rating)) + " " +
		r.styles.Count.Render(fmt.Sprintf("%-6s", reviews)) + " " +
		r.styles.Price.Render(fmt.Sprintf("%9s", price))
}
