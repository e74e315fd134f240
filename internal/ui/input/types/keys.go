package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal-mode bindings. It feeds both key matching and
// the help footer.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Focus     key.Binding
	Toggle    key.Binding
	Refine    key.Binding
	ExpandAll key.Binding
	Category  key.Binding
	Sort      key.Binding
	Search    key.Binding
	LoadMore  key.Binding
	Clear     key.Binding
	Drawer    key.Binding
	Close     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Toggle:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/close panel")),
		Refine:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "refine")),
		ExpandAll: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "expand/collapse all")),
		Category:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		LoadMore:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "load more")),
		Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear refinements")),
		Drawer:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter & sort")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Toggle, k.Search, k.Category, k.LoadMore, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Focus},
		{k.Toggle, k.Refine, k.ExpandAll, k.Drawer, k.Close, k.Clear},
		{k.Search, k.Category, k.Sort, k.LoadMore},
		{k.Help, k.Quit},
	}
}
