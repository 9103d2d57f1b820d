// Package pagination reveals a filtered notice list one page at a time.
//
// A Controller belongs to a single screen and is driven from the Bubble Tea
// update loop, so it does no locking. Loading is simulated: RequestMore
// returns a command that fires a LoadedMsg after a fixed delay, and the
// owner hands that message back through Complete.
package pagination

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"noticeboard/internal/domain"
	"noticeboard/internal/eventbus"
	"noticeboard/internal/logging"
	"noticeboard/internal/notices"
)

const (
	DefaultPageSize  = 10
	DefaultLoadDelay = time.Second
)

// Options configures a Controller
type Options struct {
	PageSize  int
	LoadDelay time.Duration

	// CancelOnQueryChange drops an in-flight load when the query changes.
	// When false the load still completes and advances the current page count.
	CancelOnQueryChange bool

	// Fetch, when set, runs off the update loop once the delay elapses.
	// A non-nil error fails the cycle without revealing a page.
	Fetch func(page int) error
}

// DefaultOptions returns the options used by the notices screen
func DefaultOptions() Options {
	return Options{
		PageSize:            DefaultPageSize,
		LoadDelay:           DefaultLoadDelay,
		CancelOnQueryChange: true,
	}
}

// LoadedMsg is delivered when a load-more delay elapses
type LoadedMsg struct {
	ID   uint64
	Page int
	Err  error
}

// State is the mutable part of a Controller
type State struct {
	Query         string
	PageCount     int
	IsLoadingMore bool
}

// Snapshot is the state plus the derived lists, computed together
type Snapshot struct {
	State
	Visible []domain.Notice
	Total   int // length of the filtered list
	HasMore bool
	Err     error
}

// Controller owns query, page and loading state for one screen
type Controller struct {
	source   notices.Source
	category string
	opts     Options
	bus      eventbus.EventBus
	logger   zerolog.Logger

	query     string
	pageCount int
	slot      Slot
	err       error
	closed    bool
}

// New creates a controller for category. An empty category lists all notices.
// bus may be nil.
func New(source notices.Source, category string, opts Options, bus eventbus.EventBus) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.LoadDelay < 0 {
		opts.LoadDelay = 0
	}

	c := &Controller{
		source:    source,
		category:  category,
		opts:      opts,
		bus:       bus,
		logger:    logging.NewLogger("controller").With().Str("category", category).Logger(),
		pageCount: 1,
	}

	total := len(c.Filtered())
	c.logger.Info().Int("total", total).Int("page_size", opts.PageSize).Msg("controller created")
	c.publish(eventbus.NoticesLoadedEvent{Category: category, Count: total})

	return c
}

// SetQuery replaces the search query and resets the page count to 1
func (c *Controller) SetQuery(text string) {
	c.query = text
	c.pageCount = 1
	c.err = nil

	if c.opts.CancelOnQueryChange {
		if t, ok := c.slot.Cancel(); ok {
			c.logger.Debug().Uint64("task", t.ID).Msg("load cancelled by query change")
			c.publish(eventbus.LoadMoreCancelledEvent{Reason: "query changed"})
		}
	}

	c.publish(eventbus.QueryChangedEvent{Query: text, Matches: len(c.Filtered())})
}

// Check reports why RequestMore would be rejected, or nil when it would start a load
func (c *Controller) Check() error {
	switch {
	case c.closed:
		return ErrClosed
	case c.slot.Busy():
		return ErrBusy
	case !c.HasMore():
		return ErrNoMoreData
	}
	return nil
}

// RequestMore starts a load-more cycle. It returns nil without changing any
// state when a load is in flight, everything is already visible, or the
// controller is closed.
func (c *Controller) RequestMore() tea.Cmd {
	if err := c.Check(); err != nil {
		c.logger.Debug().Err(err).Msg("load more ignored")
		return nil
	}

	task := c.slot.Start(c.pageCount + 1)
	c.err = nil
	c.logger.Debug().Uint64("task", task.ID).Int("page", task.Page).Msg("load more started")
	c.publish(eventbus.LoadMoreStartedEvent{Page: task.Page})

	fetch := c.opts.Fetch
	return tea.Tick(c.opts.LoadDelay, func(time.Time) tea.Msg {
		var err error
		if fetch != nil {
			err = fetch(task.Page)
		}
		return LoadedMsg{ID: task.ID, Page: task.Page, Err: err}
	})
}

// Complete applies a LoadedMsg. It reports whether the message belonged to
// the pending task; stale messages are ignored. The loading flag is cleared
// on success and failure alike.
func (c *Controller) Complete(msg LoadedMsg) bool {
	task, ok := c.slot.Take(msg.ID)
	if !ok {
		c.logger.Debug().Uint64("task", msg.ID).Msg("stale load result discarded")
		return false
	}

	if msg.Err != nil {
		c.err = &FetchError{Page: task.Page, Err: msg.Err}
		c.logger.Warn().Err(msg.Err).Int("page", task.Page).Msg("load more failed")
		c.publish(eventbus.LoadMoreFailedEvent{Page: task.Page, Err: c.err})
		return true
	}

	// Relative to the current count, which a query change may have reset.
	c.pageCount++

	visible, total := len(c.Visible()), len(c.Filtered())
	c.logger.Debug().Int("page_count", c.pageCount).Int("visible", visible).Int("total", total).Msg("page loaded")
	c.publish(eventbus.PageLoadedEvent{PageCount: c.pageCount, Visible: visible, Total: total})
	return true
}

// Close tears the controller down. A pending load is discarded and later
// calls become no-ops.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if t, ok := c.slot.Cancel(); ok {
		c.logger.Debug().Uint64("task", t.ID).Msg("load cancelled by teardown")
		c.publish(eventbus.LoadMoreCancelledEvent{Reason: "closed"})
	}
}

// Filtered returns the notices matching the category and query, in source order
func (c *Controller) Filtered() []domain.Notice {
	all := c.source.ListNotices(c.category)
	out := make([]domain.Notice, 0, len(all))
	for _, n := range all {
		if n.InCategory(c.category) && n.Matches(c.query) {
			out = append(out, n)
		}
	}
	return out
}

// Visible returns the first PageCount*PageSize filtered notices
func (c *Controller) Visible() []domain.Notice {
	return c.window(c.Filtered())
}

func (c *Controller) window(filtered []domain.Notice) []domain.Notice {
	n := c.pageCount * c.opts.PageSize
	if n > len(filtered) {
		n = len(filtered)
	}
	return filtered[:n]
}

// HasMore reports whether some filtered notices are not yet visible
func (c *Controller) HasMore() bool {
	return c.pageCount*c.opts.PageSize < len(c.Filtered())
}

// Snapshot computes the state and derived lists in one pass
func (c *Controller) Snapshot() Snapshot {
	filtered := c.Filtered()
	visible := c.window(filtered)
	return Snapshot{
		State:   c.State(),
		Visible: visible,
		Total:   len(filtered),
		HasMore: len(visible) < len(filtered),
		Err:     c.err,
	}
}

// State returns the current mutable state
func (c *Controller) State() State {
	return State{
		Query:         c.query,
		PageCount:     c.pageCount,
		IsLoadingMore: c.slot.Busy(),
	}
}

func (c *Controller) Query() string       { return c.query }
func (c *Controller) PageCount() int      { return c.pageCount }
func (c *Controller) IsLoadingMore() bool { return c.slot.Busy() }
func (c *Controller) Category() string    { return c.category }
func (c *Controller) PageSize() int       { return c.opts.PageSize }
func (c *Controller) Closed() bool        { return c.closed }

// Err returns the error of the last failed cycle, cleared by the next
// request or query change
func (c *Controller) Err() error {
	return c.err
}

func (c *Controller) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
