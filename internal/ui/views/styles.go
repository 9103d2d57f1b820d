package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Counter      lipgloss.Style
	SearchPrompt lipgloss.Style
	SearchBox    lipgloss.Style
	SearchActive lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Unread       lipgloss.Style
	Subtitle     lipgloss.Style
	Description  lipgloss.Style
	Date         lipgloss.Style
	Attachment   lipgloss.Style
	Highlight    lipgloss.Style
	Dim          lipgloss.Style
	Scroll       lipgloss.Style
	Loading      lipgloss.Style
	End          lipgloss.Style
	Error        lipgloss.Style
	Empty        lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	DetailBox    lipgloss.Style
	ToastFaint   lipgloss.Style
	ToastSolid   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	cardBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Counter:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SearchPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		SearchActive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1),
		Card:         cardBase,
		CardSelected: cardBase.BorderForeground(lipgloss.Color("99")),
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Unread:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // pink
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Description:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Date:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Attachment:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Loading:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		End:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Empty:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(0, 1),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		ToastFaint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		ToastSolid: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
	}
}
