package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"noticeboard/internal/domain"
	"noticeboard/internal/eventbus"
	"noticeboard/internal/logging"
	"noticeboard/internal/pagination"
	"noticeboard/internal/ui/input"
	inputtypes "noticeboard/internal/ui/input/types"
	"noticeboard/internal/ui/logic"
	"noticeboard/internal/ui/toast"
	"noticeboard/internal/ui/views"
)

const statusDuration = 3 * time.Second

// Options configures the presentation of the notices screen
type Options struct {
	ShowToast     bool
	ToastDuration time.Duration

	// EndReachedThreshold is how close, in screens, the last rendered card
	// must be to the end of the list before the next page is requested.
	EndReachedThreshold float64

	// Location is used to format dates. Nil means local time.
	Location *time.Location
}

// DefaultOptions returns the default presentation options
func DefaultOptions() Options {
	return Options{
		ShowToast:           true,
		ToastDuration:       toast.DefaultDuration,
		EndReachedThreshold: 0.5,
	}
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	ctrl   *pagination.Controller
	opts   Options
	logger zerolog.Logger

	width       int
	height      int
	help        help.Model
	spinner     spinner.Model
	toast       toast.Model
	detail      string // content of the inline detail popup
	status      string
	quitting    bool
	inPagerMode bool // tracks if we're currently in pager mode

	// After a failed load the list stops asking for pages on its own
	// until the user retries or changes the query.
	autoLoadPaused bool

	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around ctrl. bus may be nil.
func NewModel(ctrl *pagination.Controller, bus eventbus.EventBus, opts Options) *Model {
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = toast.DefaultDuration
	}
	if opts.EndReachedThreshold < 0 {
		opts.EndReachedThreshold = 0
	}

	renderer := views.NewRenderer(opts.Location)
	styles := renderer.Styles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Loading

	t := toast.New(opts.ToastDuration)
	t.Faint = styles.ToastFaint
	t.Solid = styles.ToastSolid

	return &Model{
		bus:          bus,
		ctrl:         ctrl,
		opts:         opts,
		logger:       logging.NewLogger("ui"),
		help:         help.New(),
		spinner:      sp,
		toast:        t,
		navigator:    logic.NewNavigator(),
		renderer:     renderer,
		inputHandler: input.New(inputtypes.DefaultKeyMap()),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPager(p)
}

// Controller returns the pagination controller behind the screen
func (m *Model) Controller() *pagination.Controller {
	return m.ctrl
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, m.maybeLoadMore()

	case tea.KeyMsg:
		if m.detail != "" {
			switch msg.String() {
			case "esc", "q", "enter":
				m.detail = ""
			case "ctrl+c":
				return m, m.quit()
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, modelContext{m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case pagination.LoadedMsg:
		return m, m.handleLoaded(msg)

	case spinner.TickMsg:
		if !m.ctrl.IsLoadingMore() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toast.TickMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the popup
			m.logger.Warn().Err(msg.err).Str("notice", msg.id).Msg("pager failed, falling back to popup")
			if n, ok := m.noticeByID(msg.id); ok {
				m.detail = m.renderer.DetailContent(n)
			}
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	// Cursor blink and other text input messages
	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting || m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state, _ := m.frame()
	if m.detail != "" {
		state.Detail = m.detail
	}
	return m.renderer.Render(state)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		total := len(m.ctrl.Visible())
		switch a.Direction {
		case "up":
			m.navigator.Move(-1, total)
		case "down":
			m.navigator.Move(1, total)
		case "pageup":
			m.navigator.Move(-m.pageStep(), total)
		case "pagedown":
			m.navigator.Move(m.pageStep(), total)
		case "home":
			m.navigator.Home()
		case "end":
			m.navigator.End(total)
		}
		return m.maybeLoadMore()

	case inputtypes.UpdateTextAction:
		return m.setQuery(a.Text)

	case inputtypes.SubmitTextAction:
		return m.setQuery(a.Text)

	case inputtypes.ClearQueryAction:
		m.inputHandler.SetText("")
		return m.setQuery("")

	case inputtypes.OpenNoticeAction:
		return m.openSelected()

	case inputtypes.LoadMoreAction:
		m.autoLoadPaused = false
		return m.requestMore(true)

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.QuitAction:
		return m.quit()
	}

	return nil
}

func (m *Model) setQuery(text string) tea.Cmd {
	if text == m.ctrl.Query() {
		return nil
	}
	m.ctrl.SetQuery(text)
	m.navigator.Reset()
	m.autoLoadPaused = false
	return m.maybeLoadMore()
}

// maybeLoadMore requests the next page when the end of the list is on or
// near the screen
func (m *Model) maybeLoadMore() tea.Cmd {
	if m.height == 0 || m.autoLoadPaused || m.ctrl.IsLoadingMore() || !m.ctrl.HasMore() {
		return nil
	}

	_, f := m.frame()
	if !logic.NearEnd(f.end, f.total, logic.PerScreen(f.heights, f.listHeight), m.opts.EndReachedThreshold) {
		return nil
	}
	return m.requestMore(false)
}

func (m *Model) requestMore(explicit bool) tea.Cmd {
	cmd := m.ctrl.RequestMore()
	if cmd == nil {
		if explicit {
			switch err := m.ctrl.Check(); {
			case errors.Is(err, pagination.ErrNoMoreData):
				return m.setStatus("All notices are shown")
			case errors.Is(err, pagination.ErrBusy):
				return m.setStatus("Already loading")
			}
		}
		return nil
	}

	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) handleLoaded(msg pagination.LoadedMsg) tea.Cmd {
	if !m.ctrl.Complete(msg) {
		return nil
	}

	if err := m.ctrl.Err(); err != nil {
		m.autoLoadPaused = true
		m.publish(eventbus.ErrorEvent{Message: "load more failed", Err: err})
		return nil
	}

	// The loading flag is already clear here
	var cmds []tea.Cmd
	if m.opts.ShowToast {
		snap := m.ctrl.Snapshot()
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Show(fmt.Sprintf("Showing %d of %d notices", len(snap.Visible), snap.Total))
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.maybeLoadMore())
	return tea.Batch(cmds...)
}

func (m *Model) openSelected() tea.Cmd {
	visible := m.ctrl.Visible()
	i := m.navigator.Selected()
	if i < 0 || i >= len(visible) {
		return nil
	}
	n := visible[i]
	m.publish(eventbus.NoticeOpenedEvent{ID: n.ID})

	content := m.renderer.DetailContent(n)
	if m.program == nil {
		m.detail = content
		return nil
	}

	program := m.program
	pager := m.pager
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := pager.Show(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{id: n.ID, err: err}
	}
}

func (m *Model) quit() tea.Cmd {
	m.ctrl.Close()
	m.quitting = true
	return tea.Quit
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(statusDuration, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) pageStep() int {
	_, f := m.frame()
	step := int(logic.PerScreen(f.heights, f.listHeight))
	if step < 1 {
		step = 1
	}
	return step
}

func (m *Model) noticeByID(id string) (domain.Notice, bool) {
	for _, n := range m.ctrl.Visible() {
		if n.ID == id {
			return n, true
		}
	}
	return domain.Notice{}, false
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// layout is the card geometry of the current frame
type layout struct {
	heights    []int
	listHeight int
	end        int
	total      int
}

// frame renders the cards, scrolls the navigator and builds the view state
func (m *Model) frame() (views.ViewState, layout) {
	snap := m.ctrl.Snapshot()
	m.navigator.Clamp(len(snap.Visible))

	width := m.width
	if width <= 0 {
		width = 80
	}

	cards := make([]string, len(snap.Visible))
	heights := make([]int, len(snap.Visible))
	for i, n := range snap.Visible {
		cards[i] = m.renderer.Cards().RenderCard(n, i == m.navigator.Selected(), width-2, snap.Query)
		heights[i] = lipgloss.Height(cards[i])
	}

	state := views.ViewState{
		Width:     width,
		Height:    m.height,
		Category:  m.ctrl.Category(),
		Query:     snap.Query,
		Searching: m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		SearchBox: m.inputHandler.TextInput().View(),
		Cards:     cards,
		Shown:     len(snap.Visible),
		Total:     snap.Total,
		Loading:   snap.IsLoadingMore,
		Spinner:   m.spinner.View(),
		HasMore:   snap.HasMore,
		LoadErr:   snap.Err,
		Toast:     m.toast.View(),
		Status:    m.status,
		HelpView:  m.help.View(m.inputHandler.Keys()),
	}

	listHeight := m.height - m.renderer.ChromeHeight(state)
	state.Start, state.End = m.navigator.Fit(heights, listHeight)

	return state, layout{
		heights:    heights,
		listHeight: listHeight,
		end:        state.End,
		total:      len(snap.Visible),
	}
}

// modelContext exposes read-only model state to the input handler
type modelContext struct {
	m *Model
}

func (c modelContext) CurrentIndex() int {
	return c.m.navigator.Selected()
}

func (c modelContext) TotalItems() int {
	return len(c.m.ctrl.Visible())
}

func (c modelContext) Query() string {
	return c.m.ctrl.Query()
}
