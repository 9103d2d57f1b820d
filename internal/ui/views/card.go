package views

import (
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"noticeboard/internal/domain"
)

// DescriptionWords is how many words of a description a card shows
const DescriptionWords = 30

// DateLayout is how card dates are shown, e.g. "Mar 28, 02:00 AM"
const DateLayout = "Jan 2, 03:04 PM"

// CardRenderer renders notice cards
type CardRenderer struct {
	styles   *Styles
	location *time.Location
}

// NewCardRenderer creates a card renderer showing dates in loc
func NewCardRenderer(styles *Styles, loc *time.Location) *CardRenderer {
	if loc == nil {
		loc = time.Local
	}
	return &CardRenderer{styles: styles, location: loc}
}

// FormatDate formats an ISO-8601 date for display, returning the input when it cannot be parsed
func (r *CardRenderer) FormatDate(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return date
	}
	return t.In(r.location).Format(DateLayout)
}

// TruncateDescription keeps the first maxWords space-separated words
func TruncateDescription(description string, maxWords int) string {
	words := strings.Split(description, " ")
	if len(words) <= maxWords {
		return description
	}
	return strings.Join(words[:maxWords], " ") + "..."
}

// RenderCard renders a notice as a bordered card of the given outer width
func (r *CardRenderer) RenderCard(n domain.Notice, selected bool, width int, query string) string {
	style := r.styles.Card
	if selected {
		style = r.styles.CardSelected
	}
	// Border and padding take four columns
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	title := r.highlight(n.Title, query, r.styles.CardTitle)
	if n.IsUnread {
		dot := r.styles.Unread.Render("●")
		gap := inner - lipgloss.Width(title) - lipgloss.Width(dot)
		if gap < 1 {
			gap = 1
		}
		title = title + strings.Repeat(" ", gap) + dot
	}

	lines := []string{title}
	if n.Subtitle != "" {
		lines = append(lines, r.styles.Subtitle.Render(n.Subtitle))
	}

	desc := TruncateDescription(n.Description, DescriptionWords)
	lines = append(lines, r.styles.Description.Width(inner).Render(r.highlightPlain(desc, query)))

	date := r.styles.Date.Render(r.FormatDate(n.Date))
	footer := date
	if n.HasAttachment {
		clip := r.styles.Attachment.Render("📎 attachment")
		gap := inner - lipgloss.Width(clip) - lipgloss.Width(date)
		if gap < 1 {
			gap = 1
		}
		footer = clip + strings.Repeat(" ", gap) + date
	}
	lines = append(lines, footer)

	return style.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// highlight renders text with the first case-insensitive match of query emphasised
func (r *CardRenderer) highlight(text, query string, base lipgloss.Style) string {
	start, end := matchRange(text, query)
	if start < 0 {
		return base.Render(text)
	}
	return base.Render(text[:start]) + r.styles.Highlight.Render(text[start:end]) + base.Render(text[end:])
}

func (r *CardRenderer) highlightPlain(text, query string) string {
	start, end := matchRange(text, query)
	if start < 0 {
		return text
	}
	return text[:start] + r.styles.Highlight.Render(text[start:end]) + text[end:]
}

// matchRange finds query in text ignoring case and returns byte offsets
// into text. Runes are compared one by one, so offsets always fall on rune
// boundaries even when lowering changes a rune's encoded length.
func matchRange(text, query string) (int, int) {
	if query == "" {
		return -1, -1
	}

	q := []rune(strings.ToLower(query))
	var offsets []int // byte offset of each rune in text
	var lower []rune
	for i, r := range text {
		offsets = append(offsets, i)
		lower = append(lower, unicode.ToLower(r))
	}
	offsets = append(offsets, len(text))

	for start := 0; start+len(q) <= len(lower); start++ {
		match := true
		for j, r := range q {
			if lower[start+j] != r {
				match = false
				break
			}
		}
		if match {
			return offsets[start], offsets[start+len(q)]
		}
	}
	return -1, -1
}
