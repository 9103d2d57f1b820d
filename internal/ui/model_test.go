package ui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticeboard/internal/domain"
	"noticeboard/internal/notices"
	"noticeboard/internal/pagination"
	"noticeboard/internal/ui/toast"
)

func testNotices(n int, prefix string) []domain.Notice {
	out := make([]domain.Notice, n)
	for i := range out {
		out[i] = domain.Notice{
			ID:          fmt.Sprintf("%s-%02d", prefix, i),
			Title:       fmt.Sprintf("%s notice %d", prefix, i),
			Description: "Short description.",
			Date:        "2024-03-01T09:30:00Z",
			Category:    "Academic",
		}
	}
	return out
}

func newTestModel(t *testing.T, items []domain.Notice, fetch func(int) error, opts Options) *Model {
	t.Helper()

	src, err := notices.NewStaticSource(items)
	require.NoError(t, err)

	ctrl := pagination.New(src, "Academic", pagination.Options{
		PageSize:            10,
		LoadDelay:           time.Millisecond,
		CancelOnQueryChange: true,
		Fetch:               fetch,
	}, nil)

	opts.Location = time.UTC
	if opts.ToastDuration == 0 {
		opts.ToastDuration = 10 * time.Millisecond
	}
	return NewModel(ctrl, nil, opts)
}

// collect runs cmd and any batched commands, returning the produced messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func loadedMsg(t *testing.T, cmd tea.Cmd) pagination.LoadedMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if loaded, ok := msg.(pagination.LoadedMsg); ok {
			return loaded
		}
	}
	require.Fail(t, "no LoadedMsg produced")
	return pagination.LoadedMsg{}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestViewBeforeResize(t *testing.T) {
	m := newTestModel(t, testNotices(3, "a"), nil, DefaultOptions())
	assert.Equal(t, "Loading...", m.View())
}

func TestViewShowsHeaderAndCards(t *testing.T) {
	m := newTestModel(t, testNotices(14, "a"), nil, DefaultOptions())
	send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Academic Notices")
	assert.Contains(t, view, "10/14")
	assert.Contains(t, view, "a notice 0")
	assert.Contains(t, view, "Mar 1, 09:30 AM")
}

func TestTallScreenLoadsUntilFilled(t *testing.T) {
	m := newTestModel(t, testNotices(25, "a"), nil, DefaultOptions())
	ctrl := m.Controller()

	cmd := send(m, tea.WindowSizeMsg{Width: 100, Height: 400})
	require.NotNil(t, cmd, "the first page does not fill the screen")
	assert.True(t, ctrl.IsLoadingMore())
	assert.Contains(t, m.View(), "Loading more notices...")

	cmd = send(m, loadedMsg(t, cmd))
	assert.Equal(t, 2, ctrl.PageCount())
	assert.True(t, m.toast.Visible(), "toast follows a completed page")

	// still room on screen, so the next page is requested right away
	assert.True(t, ctrl.IsLoadingMore())
	send(m, loadedMsg(t, cmd))
	assert.Equal(t, 3, ctrl.PageCount())
	assert.False(t, ctrl.IsLoadingMore())
	assert.False(t, ctrl.HasMore())
	assert.Contains(t, m.View(), "End of notices")
}

func TestShortScreenLoadsAtEnd(t *testing.T) {
	m := newTestModel(t, testNotices(25, "a"), nil, DefaultOptions())
	ctrl := m.Controller()

	cmd := send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	assert.False(t, ctrl.IsLoadingMore())

	cmd = send(m, runes("G"))
	require.NotNil(t, cmd)
	assert.Equal(t, 9, m.navigator.Selected())
	assert.True(t, ctrl.IsLoadingMore())

	// scrolling again while loading does not start another cycle
	send(m, tea.KeyMsg{Type: tea.KeyUp})
	send(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, ctrl.IsLoadingMore())

	send(m, loadedMsg(t, cmd))
	assert.Equal(t, 2, ctrl.PageCount())
	assert.Len(t, ctrl.Visible(), 20)
}

func TestSearchIsLive(t *testing.T) {
	items := append(testNotices(12, "alpha"), testNotices(4, "beta")...)
	m := newTestModel(t, items, nil, DefaultOptions())
	ctrl := m.Controller()
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	send(m, runes("/"))
	for _, r := range "BET" {
		send(m, runes(string(r)))
	}
	assert.Equal(t, "BET", ctrl.Query())
	assert.Len(t, ctrl.Filtered(), 4)
	assert.Contains(t, m.View(), "4/4")

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "BET", ctrl.Query(), "leaving search keeps the query")

	send(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, ctrl.Query())
	assert.Empty(t, m.inputHandler.TextInput().Value())
}

func TestQueryChangeCancelsLoad(t *testing.T) {
	m := newTestModel(t, append(testNotices(12, "alpha"), testNotices(4, "beta")...), nil, DefaultOptions())
	ctrl := m.Controller()
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	cmd := send(m, runes("r"))
	require.NotNil(t, cmd)
	require.True(t, ctrl.IsLoadingMore())
	stale := loadedMsg(t, cmd)

	send(m, runes("/"))
	send(m, runes("a"))
	assert.False(t, ctrl.IsLoadingMore())
	assert.Equal(t, 1, ctrl.PageCount())

	send(m, stale)
	assert.Equal(t, 1, ctrl.PageCount(), "completion of a cancelled load is discarded")
	assert.False(t, m.toast.Visible())
}

func TestFailedLoadPausesAutoLoad(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	fetch := func(int) error {
		if fail {
			return boom
		}
		return nil
	}
	m := newTestModel(t, testNotices(25, "a"), fetch, DefaultOptions())
	ctrl := m.Controller()

	cmd := send(m, tea.WindowSizeMsg{Width: 100, Height: 400})
	require.NotNil(t, cmd)

	assert.Nil(t, send(m, loadedMsg(t, cmd)))
	assert.False(t, ctrl.IsLoadingMore())
	assert.Equal(t, 1, ctrl.PageCount())
	assert.ErrorIs(t, ctrl.Err(), boom)
	assert.False(t, m.toast.Visible())
	assert.Contains(t, m.View(), "press r to retry")

	// no retry loop on resize
	assert.Nil(t, send(m, tea.WindowSizeMsg{Width: 100, Height: 401}))
	assert.False(t, ctrl.IsLoadingMore())

	fail = false
	cmd = send(m, runes("r"))
	require.NotNil(t, cmd)
	send(m, loadedMsg(t, cmd))
	assert.Equal(t, 2, ctrl.PageCount())
	assert.NoError(t, ctrl.Err())
}

func TestToastDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowToast = false
	m := newTestModel(t, testNotices(25, "a"), nil, opts)

	cmd := send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	cmd = send(m, runes("r"))
	send(m, loadedMsg(t, cmd))

	assert.Equal(t, 2, m.Controller().PageCount())
	assert.False(t, m.toast.Visible())
}

func TestToastTicksRunThroughPhases(t *testing.T) {
	m := newTestModel(t, testNotices(25, "a"), nil, DefaultOptions())
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	cmd := send(m, runes("r"))
	cmd = send(m, loadedMsg(t, cmd))
	require.Equal(t, toast.FadeIn, m.toast.Phase())

	for _, msg := range collect(cmd) {
		if tick, ok := msg.(toast.TickMsg); ok {
			cmd = send(m, tick)
		}
	}
	assert.Equal(t, toast.Hold, m.toast.Phase())
	assert.NotNil(t, cmd)
}

func TestOpenNoticeFallsBackToPopup(t *testing.T) {
	m := newTestModel(t, testNotices(3, "a"), nil, DefaultOptions())
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	send(m, tea.KeyMsg{Type: tea.KeyDown})
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotEmpty(t, m.detail)
	assert.Contains(t, m.View(), "a notice 1")
	assert.Contains(t, m.View(), "a-01")

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.detail)
}

func TestPagerErrorShowsPopup(t *testing.T) {
	m := newTestModel(t, testNotices(3, "a"), nil, DefaultOptions())
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	send(m, pagerMsg{id: "a-02", err: errors.New("no tty")})
	assert.Contains(t, m.detail, "a notice 2")
}

func TestQuitTearsDownController(t *testing.T) {
	m := newTestModel(t, testNotices(25, "a"), nil, DefaultOptions())
	ctrl := m.Controller()
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	load := send(m, runes("r"))
	require.NotNil(t, load)

	cmd := send(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, ctrl.Closed())
	assert.False(t, ctrl.IsLoadingMore())
	assert.Empty(t, m.View())

	send(m, loadedMsg(t, load))
	assert.Equal(t, 1, ctrl.PageCount())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, testNotices(3, "a"), nil, DefaultOptions())
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.False(t, m.help.ShowAll)
	send(m, runes("?"))
	assert.True(t, m.help.ShowAll)
}
