package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SwitchFocusAction struct{}

func (a SwitchFocusAction) Type() string { return "switch_focus" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Panel actions
type TogglePanelAction struct {
	PanelID string
}

func (a TogglePanelAction) Type() string { return "toggle_panel" }

type ToggleAllPanelsAction struct{}

func (a ToggleAllPanelsAction) Type() string { return "toggle_all_panels" }

type OpenDrawerAction struct{}

func (a OpenDrawerAction) Type() string { return "open_drawer" }

type CloseDrawerAction struct{}

func (a CloseDrawerAction) Type() string { return "close_drawer" }

// Search actions
type ToggleRefinementAction struct {
	Attribute string
	Value     string
}

func (a ToggleRefinementAction) Type() string { return "toggle_refinement" }

type ClearRefinementsAction struct{}

func (a ClearRefinementsAction) Type() string { return "clear_refinements" }

type CycleCategoryAction struct{}

func (a CycleCategoryAction) Type() string { return "cycle_category" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type LoadMoreAction struct{}

func (a LoadMoreAction) Type() string { return "load_more" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
