// Package toast shows a short-lived message that fades in, holds and fades out.
package toast

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultDuration is the total time a toast stays on screen
const DefaultDuration = 2 * time.Second

// Phase is the current stage of a toast
type Phase int

const (
	Hidden Phase = iota
	FadeIn
	Hold
	FadeOut
)

func (p Phase) String() string {
	switch p {
	case FadeIn:
		return "fade-in"
	case Hold:
		return "hold"
	case FadeOut:
		return "fade-out"
	default:
		return "hidden"
	}
}

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg advances a toast to its next phase
type TickMsg struct {
	id int
}

// Model is a single toast slot. Showing a new message replaces the current one.
type Model struct {
	Duration time.Duration
	Faint    lipgloss.Style
	Solid    lipgloss.Style

	id    int
	text  string
	phase Phase
}

// New creates a hidden toast
func New(d time.Duration) Model {
	if d <= 0 {
		d = DefaultDuration
	}
	return Model{
		Duration: d,
		Faint:    lipgloss.NewStyle().Faint(true),
		Solid:    lipgloss.NewStyle(),
	}
}

// ID returns the id of the current toast
func (m Model) ID() int {
	return m.id
}

// Phase returns the current phase
func (m Model) Phase() Phase {
	return m.phase
}

// Text returns the current message
func (m Model) Text() string {
	return m.text
}

// Visible reports whether a toast is on screen
func (m Model) Visible() bool {
	return m.phase != Hidden
}

// Show starts a new toast, superseding any toast still on screen
func (m Model) Show(text string) (Model, tea.Cmd) {
	m.id = nextID()
	m.text = text
	m.phase = FadeIn
	return m, m.tick(m.fade())
}

// Hide removes the toast immediately; pending ticks become stale
func (m Model) Hide() Model {
	m.id = nextID()
	m.phase = Hidden
	m.text = ""
	return m
}

// Update handles ticks of the current toast
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.id != m.id {
		return m, nil
	}

	switch m.phase {
	case FadeIn:
		m.phase = Hold
		return m, m.tick(m.Duration - 2*m.fade())
	case Hold:
		m.phase = FadeOut
		return m, m.tick(m.fade())
	case FadeOut:
		m.phase = Hidden
		m.text = ""
	}
	return m, nil
}

// View renders the toast for its phase
func (m Model) View() string {
	switch m.phase {
	case FadeIn, FadeOut:
		return m.Faint.Render(m.text)
	case Hold:
		return m.Solid.Render(m.text)
	}
	return ""
}

func (m Model) fade() time.Duration {
	return m.Duration / 5
}

func (m Model) tick(d time.Duration) tea.Cmd {
	id := m.id
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{id: id}
	})
}
