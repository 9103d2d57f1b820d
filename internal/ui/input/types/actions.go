package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// ClearQueryAction resets the search query to empty
type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Notice actions
type OpenNoticeAction struct{}

func (a OpenNoticeAction) Type() string { return "open_notice" }

// LoadMoreAction asks for the next page explicitly
type LoadMoreAction struct{}

func (a LoadMoreAction) Type() string { return "load_more" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
