package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noticeboard/internal/ui/input/types"
)

// SearchMode edits the query. The query is live: every keystroke updates it,
// and leaving the mode keeps the current text.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "esc":
		// Keep the query, just stop editing
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "ctrl+u":
		if m.textInput != nil {
			m.textInput.SetValue("")
		}
		return []types.Action{types.ClearQueryAction{}}, true
	case "up", "down", "pgup", "pgdown":
		// Let the list scroll while typing
		return []types.Action{types.NavigateAction{Direction: navDirection(msg.String())}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}

func navDirection(k string) string {
	switch k {
	case "pgup":
		return "pageup"
	case "pgdown":
		return "pagedown"
	default:
		return k
	}
}
