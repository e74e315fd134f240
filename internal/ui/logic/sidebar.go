package logic

import "facetgrip/internal/domain"

// SidebarItem is one selectable row of the refinement panels: a panel
// header or one facet value inside an open panel
type SidebarItem struct {
	Panel     domain.PanelID
	Attribute string
	Value     string
	Header    bool
	Line      int // line in the full sidebar rendering
	ValueIdx  int // position among the panel's values
}

// ItemAt returns the item at index, if any
func ItemAt(items []SidebarItem, index int) (SidebarItem, bool) {
	if index < 0 || index >= len(items) {
		return SidebarItem{}, false
	}
	return items[index], true
}

// HeaderIndex returns the index of a panel's header item, or -1
func HeaderIndex(items []SidebarItem, id domain.PanelID) int {
	for i, it := range items {
		if it.Header && it.Panel == id {
			return i
		}
	}
	return -1
}
