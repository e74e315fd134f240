package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"facetgrip/internal/ui/input/types"
)

// SearchMode edits the query; every keystroke runs a new search
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
