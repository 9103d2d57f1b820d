package domain

import (
	"strings"
	"time"
)

// Notice represents a single announcement shown to the user
type Notice struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle,omitempty"` // empty when the notice has none
	Description   string `json:"description"`
	Date          string `json:"date"` // ISO-8601 timestamp
	HasAttachment bool   `json:"hasAttachment"`
	IsUnread      bool   `json:"isUnread"`
	Category      string `json:"category"`
}

// ParsedDate parses the notice date
func (n Notice) ParsedDate() (time.Time, error) {
	return time.Parse(time.RFC3339, n.Date)
}

// Matches reports whether the notice title or description contains the query,
// ignoring case. An empty query matches every notice.
func (n Notice) Matches(query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Description), q)
}

// InCategory reports whether the notice belongs to category.
// An empty category means no filter.
func (n Notice) InCategory(category string) bool {
	return category == "" || n.Category == category
}
