package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Category  string
	Query     string
	Searching bool
	SearchBox string // rendered text input

	Cards    []string // rendered cards of the visible list
	Start    int      // first card in the viewport
	End      int      // one past the last card in the viewport
	Shown    int
	Total    int
	Loading  bool
	Spinner  string
	HasMore  bool
	LoadErr  error
	Toast    string
	Status   string
	HelpView string
	Detail   string // non-empty shows the detail popup
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	cards  *CardRenderer
	popup  *PopupRenderer
}

// NewRenderer creates a new renderer. Dates are shown in loc (nil means local time).
func NewRenderer(loc *time.Location) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		cards:  NewCardRenderer(styles, loc),
		popup:  NewPopupRenderer(styles),
	}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Cards returns the card renderer
func (r *Renderer) Cards() *CardRenderer {
	return r.cards
}

// Title returns the screen title for category
func Title(category string) string {
	if category == "" {
		return "All Notices"
	}
	return category + " Notices"
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}

	header := r.renderHeader(state, width)
	footer := r.renderFooter(state)

	bodyHeight := state.Height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := r.renderBody(state, bodyHeight)

	screen := r.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))

	if state.Detail != "" {
		return r.popup.RenderPopup(state.Detail, width, state.Height)
	}
	return screen
}

// ChromeHeight returns the lines used by everything except the card list
func (r *Renderer) ChromeHeight(state ViewState) int {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	return lipgloss.Height(r.renderHeader(state, width)) + lipgloss.Height(r.renderFooter(state))
}

func (r *Renderer) renderHeader(state ViewState, width int) string {
	title := r.styles.Title.Render(Title(state.Category))
	counter := r.styles.Counter.Render(fmt.Sprintf("%d/%d", state.Shown, state.Total))

	gap := width - 2 - lipgloss.Width(title) - lipgloss.Width(counter)
	if gap < 2 {
		gap = 2
	}
	titleLine := title + strings.Repeat(" ", gap) + counter

	box := r.styles.SearchBox
	if state.Searching {
		box = r.styles.SearchActive
	}
	search := box.Width(width - 4).Render(r.styles.SearchPrompt.Render("⌕ ") + state.SearchBox)

	return lipgloss.JoinVertical(lipgloss.Left, titleLine, search)
}

func (r *Renderer) renderBody(state ViewState, height int) string {
	if len(state.Cards) == 0 {
		msg := "No notices"
		if state.Query != "" {
			msg = fmt.Sprintf("No notices match %q", state.Query)
		}
		return lipgloss.NewStyle().Height(height).Render(r.styles.Empty.Render(msg))
	}

	var lines []string
	if state.Start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", state.Start)))
	}
	for i := state.Start; i < state.End && i < len(state.Cards); i++ {
		lines = append(lines, state.Cards[i])
	}
	if state.End < len(state.Cards) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", len(state.Cards)-state.End)))
	}

	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderFooter(state ViewState) string {
	var status string
	switch {
	case state.Loading:
		status = r.styles.Loading.Render(state.Spinner + " Loading more notices...")
	case state.LoadErr != nil:
		status = r.styles.Error.Render(fmt.Sprintf("Could not load more: %v (press r to retry)", state.LoadErr))
	case state.Shown > 0 && !state.HasMore:
		status = r.styles.End.Render("End of notices")
	case state.HasMore:
		status = r.styles.Dim.Render("Scroll down for more")
	}

	toast := state.Toast
	if state.Status != "" {
		toast = r.styles.Dim.Render(state.Status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, status, toast, r.styles.Help.Render(state.HelpView))
}
