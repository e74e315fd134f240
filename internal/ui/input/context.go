package input

import (
	"facetgrip/internal/ui/input/types"
	"facetgrip/internal/ui/logic"
	"facetgrip/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State         *state.AppState
	Items         []logic.SidebarItem
	LoadMoreIndex int // result item index of the load-more row, -1 when absent
	IsWide        bool
	IsStalled     bool
	CurrentQuery  string
}

// Focus returns the pane receiving navigation keys
func (c *ModelContext) Focus() types.Focus {
	if c.State.PanelsFocused {
		return types.FocusPanels
	}
	return types.FocusResults
}

// Wide reports whether the wide layout is active
func (c *ModelContext) Wide() bool {
	return c.IsWide
}

// DrawerOpen reports whether the narrow drawer is showing
func (c *ModelContext) DrawerOpen() bool {
	return c.State.DrawerOpen
}

// CurrentPanel returns the panel id when the cursor is on a panel header
func (c *ModelContext) CurrentPanel() string {
	it, ok := logic.ItemAt(c.Items, c.State.PanelIndex)
	if !ok || !it.Header {
		return ""
	}
	return string(it.Panel)
}

// CurrentValue returns the facet value under the cursor
func (c *ModelContext) CurrentValue() (string, string, bool) {
	it, ok := logic.ItemAt(c.Items, c.State.PanelIndex)
	if !ok || it.Header {
		return "", "", false
	}
	return it.Attribute, it.Value, true
}

// OnLoadMore reports whether the results cursor is on the load-more row
func (c *ModelContext) OnLoadMore() bool {
	return c.LoadMoreIndex >= 0 && c.State.ResultIndex == c.LoadMoreIndex
}

// Stalled reports whether a search is in flight
func (c *ModelContext) Stalled() bool {
	return c.IsStalled
}

// Query returns the active search text
func (c *ModelContext) Query() string {
	return c.CurrentQuery
}
