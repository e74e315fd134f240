package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"facetgrip/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Close):
		if ctx.DrawerOpen() {
			return []types.Action{types.CloseDrawerAction{}}, true
		}
		return nil, false

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.Focus):
		return []types.Action{types.SwitchFocusAction{}}, true

	case key.Matches(msg, k.Toggle, k.Refine):
		return m.activate(ctx)

	case key.Matches(msg, k.ExpandAll):
		return []types.Action{types.ToggleAllPanelsAction{}}, true
	case key.Matches(msg, k.Category):
		return []types.Action{types.CycleCategoryAction{}}, true
	case key.Matches(msg, k.Sort):
		return []types.Action{types.CycleSortAction{}}, true
	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.Query()}}, true

	case key.Matches(msg, k.LoadMore):
		// The load-more control is disabled while a search is stalled
		if ctx.Stalled() {
			return nil, true
		}
		return []types.Action{types.LoadMoreAction{}}, true

	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearRefinementsAction{}}, true

	case key.Matches(msg, k.Drawer):
		if ctx.Wide() || ctx.DrawerOpen() {
			return nil, false
		}
		return []types.Action{types.OpenDrawerAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	}
	return nil, false
}

// activate handles enter/space on whatever is under the cursor
func (m *NormalMode) activate(ctx types.Context) ([]types.Action, bool) {
	if ctx.Focus() == types.FocusPanels {
		if id := ctx.CurrentPanel(); id != "" {
			return []types.Action{types.TogglePanelAction{PanelID: id}}, true
		}
		if attr, value, ok := ctx.CurrentValue(); ok {
			return []types.Action{types.ToggleRefinementAction{Attribute: attr, Value: value}}, true
		}
		return nil, false
	}
	if ctx.OnLoadMore() && !ctx.Stalled() {
		return []types.Action{types.LoadMoreAction{}}, true
	}
	return nil, false
}
