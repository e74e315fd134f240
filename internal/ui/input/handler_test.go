package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facetgrip/internal/ui/input/types"
	"facetgrip/internal/ui/logic"
	"facetgrip/internal/ui/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newContext() *ModelContext {
	return &ModelContext{
		State: state.NewAppState(),
		Items: []logic.SidebarItem{
			{Panel: "list:brand", Header: true},
			{Panel: "list:brand", Attribute: "brand", Value: "Sony"},
		},
		LoadMoreIndex: 3,
		IsWide:        true,
	}
}

func TestEnterOnPanelHeaderTogglesPanel(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.PanelsFocused = true

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.TogglePanelAction{PanelID: "list:brand"}, actions[0])
}

func TestSpaceOnValueTogglesRefinement(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.PanelsFocused = true
	ctx.State.PanelIndex = 1

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.ToggleRefinementAction{Attribute: "brand", Value: "Sony"}, actions[0])
}

func TestEnterOnLoadMore(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.ResultIndex = 3

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.LoadMoreAction{}, actions[0])

	ctx.IsStalled = true
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Empty(t, actions, "load more is disabled while stalled")

	actions, _ = h.HandleKey(runes("m"), ctx)
	assert.Empty(t, actions)
}

func TestDrawerKeysOnlyInNarrowLayout(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("f"), ctx)
	assert.Empty(t, actions)

	ctx.IsWide = false
	actions, _ = h.HandleKey(runes("f"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.OpenDrawerAction{}, actions[0])

	ctx.State.DrawerOpen = true
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.CloseDrawerAction{}, actions[0])
}

func TestSearchModeLiveUpdatesAndCancel(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.CurrentQuery = "so"

	_, _ = h.HandleKey(runes("/"), ctx)
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "so", h.TextInput().Value())

	actions, _ := h.HandleKey(runes("n"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "son"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.CancelTextAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeSubmit(t *testing.T) {
	h := New()
	ctx := newContext()
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("x"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.SubmitTextAction{Text: "x", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, "normal", h.ModeName())
}

func TestNormalModeGlobalKeys(t *testing.T) {
	h := New()
	ctx := newContext()
	cases := map[string]types.Action{
		"E": types.ToggleAllPanelsAction{},
		"c": types.CycleCategoryAction{},
		"s": types.CycleSortAction{},
		"x": types.ClearRefinementsAction{},
		"?": types.ToggleHelpAction{},
		"q": types.QuitAction{},
		"j": types.NavigateAction{Direction: "down"},
		"G": types.NavigateAction{Direction: "end"},
	}
	for k, want := range cases {
		actions, _ := h.HandleKey(runes(k), ctx)
		require.Len(t, actions, 1, "key %s", k)
		assert.Equal(t, want, actions[0], "key %s", k)
	}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.SwitchFocusAction{}, actions[0])
}
