package logic

// Navigator moves a cursor over items and scrolls a window of lines so
// the cursor's line stays visible
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
	n.clampSelected()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Move applies a navigation direction and returns the new selected index
func (n *Navigator) Move(direction string) int {
	page := n.viewportHeight - 1
	if page < 1 {
		page = 1
	}
	switch direction {
	case "up":
		n.selectedIndex--
	case "down":
		n.selectedIndex++
	case "pageup":
		n.selectedIndex -= page
	case "pagedown":
		n.selectedIndex += page
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.totalItems - 1
	}
	n.clampSelected()
	return n.selectedIndex
}

func (n *Navigator) clampSelected() {
	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ScrollTo adjusts the viewport so line is visible and returns the offset
func (n *Navigator) ScrollTo(line, totalLines int) int {
	if line < n.viewportOffset {
		n.viewportOffset = line
	}
	if n.viewportHeight > 0 && line >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = line - n.viewportHeight + 1
	}

	// Keep the window filled when content shrank
	maxOffset := totalLines - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
	return n.viewportOffset
}

// IsVisible reports whether line is inside the viewport
func (n *Navigator) IsVisible(line int) bool {
	return line >= n.viewportOffset && line < n.viewportOffset+n.viewportHeight
}

// Window returns the visible slice of lines
func (n *Navigator) Window(lines []string) []string {
	start := n.viewportOffset
	if start > len(lines) {
		start = len(lines)
	}
	end := start + n.viewportHeight
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}
