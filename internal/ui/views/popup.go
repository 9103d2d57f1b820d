package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"noticeboard/internal/domain"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centers content in a bordered box over a blank screen
func (pr *PopupRenderer) RenderPopup(content string, width, height int) string {
	boxWidth := width - 8
	if boxWidth > 90 {
		boxWidth = 90
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	hint := pr.styles.Dim.Render("esc/q/enter to close")
	box := pr.styles.DetailBox.Width(boxWidth).Render(content + "\n\n" + hint)

	if height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// DetailContent renders the full notice for the popup and the pager
func (r *Renderer) DetailContent(n domain.Notice) string {
	var b strings.Builder

	b.WriteString(r.styles.CardTitle.Render(n.Title))
	if n.IsUnread {
		b.WriteString(" " + r.styles.Unread.Render("●"))
	}
	b.WriteString("\n")
	if n.Subtitle != "" {
		b.WriteString(r.styles.Subtitle.Render(n.Subtitle) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(n.Description)
	b.WriteString("\n\n")

	meta := []string{
		fmt.Sprintf("Category:  %s", n.Category),
		fmt.Sprintf("Posted:    %s", r.cards.FormatDate(n.Date)),
		fmt.Sprintf("ID:        %s", n.ID),
	}
	if n.HasAttachment {
		meta = append(meta, "Attachment: yes")
	}
	b.WriteString(r.styles.Date.Render(strings.Join(meta, "\n")))

	return b.String()
}
