package state

import (
	"facetgrip/internal/domain"
)

// AppState contains the UI state that is not owned by a core store
type AppState struct {
	// Focus and cursors
	PanelsFocused bool // navigation keys move through refinement panels
	PanelIndex    int  // selected sidebar item
	PanelOffset   int  // first visible sidebar line
	ResultIndex   int  // selected result item
	ResultOffset  int  // first visible results line

	// Layout
	Ready          bool // a window size has been received
	Width          int
	Height         int
	ViewportHeight int  // rows available to the panes
	DrawerOpen     bool // narrow layout "Filter & Sort" drawer

	// Search selections
	CategoryIndex int
	SortIndex     int

	// Per-panel scroll offset of max-height value boxes
	PanelScroll map[domain.PanelID]int

	StatusMessage string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		PanelScroll:    make(map[domain.PanelID]int),
		ViewportHeight: 20, // Default until the first resize
	}
}

// ResetCursors moves both panes back to the top
func (s *AppState) ResetCursors() {
	s.PanelIndex, s.PanelOffset = 0, 0
	s.ResultIndex, s.ResultOffset = 0, 0
	s.PanelScroll = make(map[domain.PanelID]int)
}

// ResetResults moves the results cursor back to the top
func (s *AppState) ResetResults() {
	s.ResultIndex, s.ResultOffset = 0, 0
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
}
