// Package notices provides the ordered notice collections the screens page through.
package notices

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"noticeboard/internal/domain"
)

//go:embed data/notices.json
var embeddedNotices []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrDuplicateID is returned when two notices share an ID.
	ErrDuplicateID = errors.New("duplicate notice id")

	// ErrInvalidNotice is returned when a notice lacks a required field.
	ErrInvalidNotice = errors.New("invalid notice")
)

// Source lists notices in display order. An empty category lists every notice.
type Source interface {
	ListNotices(category string) []domain.Notice
}

// StaticSource is an immutable, in-memory Source
type StaticSource struct {
	items []domain.Notice
}

// NewStaticSource validates items and wraps them in a Source.
// Notices without an ID are assigned one.
func NewStaticSource(items []domain.Notice) (*StaticSource, error) {
	seen := make(map[string]int, len(items))
	owned := make([]domain.Notice, len(items))
	copy(owned, items)

	for i := range owned {
		n := &owned[i]
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if strings.TrimSpace(n.Title) == "" {
			return nil, fmt.Errorf("%w: notice %s has no title", ErrInvalidNotice, n.ID)
		}
		if strings.TrimSpace(n.Description) == "" {
			return nil, fmt.Errorf("%w: notice %s has no description", ErrInvalidNotice, n.ID)
		}
		if prev, ok := seen[n.ID]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateID, n.ID, prev, i)
		}
		seen[n.ID] = i
	}

	return &StaticSource{items: owned}, nil
}

// Decode parses a JSON array of notices
func Decode(data []byte) (*StaticSource, error) {
	var items []domain.Notice
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse notices: %w", err)
	}
	return NewStaticSource(items)
}

// LoadEmbedded returns the built-in dataset
func LoadEmbedded() (*StaticSource, error) {
	return Decode(embeddedNotices)
}

// LoadFile reads a JSON dataset from disk
func LoadFile(path string) (*StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notices file: %w", err)
	}
	return Decode(data)
}

// Load reads path, or the built-in dataset when path is empty
func Load(path string) (*StaticSource, error) {
	if path == "" {
		return LoadEmbedded()
	}
	return LoadFile(path)
}

// ListNotices returns the notices in category, in source order.
// The returned slice is a copy.
func (s *StaticSource) ListNotices(category string) []domain.Notice {
	out := make([]domain.Notice, 0, len(s.items))
	for _, n := range s.items {
		if n.InCategory(category) {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of notices in the source
func (s *StaticSource) Len() int {
	return len(s.items)
}

// CategoryCount is a category and how many notices it holds
type CategoryCount struct {
	Name  string
	Count int
}

// Categories returns the distinct categories in first-seen order
func (s *StaticSource) Categories() []CategoryCount {
	index := make(map[string]int)
	var out []CategoryCount
	for _, n := range s.items {
		i, ok := index[n.Category]
		if !ok {
			index[n.Category] = len(out)
			out = append(out, CategoryCount{Name: n.Category})
			i = len(out) - 1
		}
		out[i].Count++
	}
	return out
}

// HasCategory reports whether any notice belongs to category
func (s *StaticSource) HasCategory(category string) bool {
	for _, n := range s.items {
		if n.Category == category {
			return true
		}
	}
	return false
}
