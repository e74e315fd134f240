package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	inputtypes "facetgrip/internal/ui/input/types"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys inputtypes.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys inputtypes.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

type helpSection struct {
	title    string
	bindings []key.Binding
	notes    []string
}

func (r *HelpRenderer) sections() []helpSection {
	k := r.keys
	return []helpSection{
		{
			title:    "Navigation",
			bindings: []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Focus},
		},
		{
			title:    "Refinement Panels",
			bindings: []key.Binding{k.Toggle, k.Refine, k.ExpandAll, k.Clear},
			notes: []string{
				"Wide terminals keep any number of panels open.",
				"Narrow terminals open one panel at a time inside the drawer.",
			},
		},
		{
			title:    "Narrow Layout",
			bindings: []key.Binding{k.Drawer, k.Close},
		},
		{
			title:    "Search",
			bindings: []key.Binding{k.Search, k.Category, k.Sort, k.LoadMore},
			notes: []string{
				"Scrolling to the end of the results loads more pages automatically,",
				"up to a limit. Press load more to keep loading for this search.",
			},
		},
		{
			title:    "Other",
			bindings: []key.Binding{k.Help, k.Quit},
		},
	}
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	noteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("facetgrip Help"))
	help.WriteString("\n")

	for _, s := range r.sections() {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			h := b.Help()
			if h.Key == "" {
				continue
			}
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
		for _, n := range s.notes {
			help.WriteString("  " + noteStyle.Render(n) + "\n")
		}
	}
	help.WriteString("\n")
	help.WriteString(noteStyle.Render("  Press q to close this help."))
	help.WriteString("\n")
	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	configureVimKeyBindings(&config)

	root.SetConfig(config)
	return root.Run()
}

// configureVimKeyBindings adds vim-style movement on top of ov's defaults
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	extra := map[string][]string{
		"exit":      {"q", "Escape"},
		"down":      {"j", "Down"},
		"up":        {"k", "Up"},
		"top":       {"g", "Home"},
		"bottom":    {"G", "End"},
		"page_down": {"ctrl+f", "PageDown", "Space"},
		"page_up":   {"ctrl+b", "PageUp"},
	}
	for action, keys := range extra {
		config.Keybind[action] = appendMissing(config.Keybind[action], keys)
	}
}

func appendMissing(have, add []string) []string {
	seen := make(map[string]bool, len(have))
	for _, k := range have {
		seen[k] = true
	}
	for _, k := range add {
		if !seen[k] {
			have = append(have, k)
			seen[k] = true
		}
	}
	return have
}
