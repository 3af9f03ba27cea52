package navigation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyID     = errors.New("navigation item id is required")
	ErrDuplicateID = errors.New("duplicate navigation item id")
)

// Item is a single entry of the navigation menu. Accent and Highlight only
// select style hooks; they carry no behaviour.
type Item struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Accent    bool   `json:"accent,omitempty"`
	Highlight bool   `json:"highlight,omitempty"`
}

// DefaultItems returns the built-in menu in display order.
func DefaultItems() []Item {
	return []Item{
		{ID: "home", Label: "HOME", Highlight: true},
		{ID: "option1", Label: "TIKTOK"},
		{ID: "option2", Label: "LINKEDIN", Accent: true},
		{ID: "option3", Label: "SETTINGS"},
	}
}

// Registry is an ordered, immutable set of navigation items.
type Registry struct {
	items []Item
	index map[string]int
}

// NewRegistry copies items into a registry, trimming ids. An empty or repeated
// id is rejected with ErrEmptyID or ErrDuplicateID.
func NewRegistry(items []Item) (*Registry, error) {
	r := &Registry{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}

	for position, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return nil, fmt.Errorf("item %d: %w", position, ErrEmptyID)
		}
		if _, exists := r.index[id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		item.ID = id
		r.index[id] = len(r.items)
		r.items = append(r.items, item)
	}

	return r, nil
}

// Items returns a copy of the registry contents in display order.
func (r *Registry) Items() []Item {
	if r == nil {
		return nil
	}
	return append([]Item(nil), r.items...)
}

// Len returns the number of items.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// Lookup returns the item with the given id.
func (r *Registry) Lookup(id string) (Item, bool) {
	if r == nil {
		return Item{}, false
	}
	position, ok := r.index[strings.TrimSpace(id)]
	if !ok {
		return Item{}, false
	}
	return r.items[position], true
}
