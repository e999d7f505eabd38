package palette

import (
	"slices"
	"sync"

	"github.com/dshills/formstorm/internal/element"
)

// Recent tracks recently placed component types, most recent first.
type Recent struct {
	mu       sync.Mutex
	items    []element.Type
	maxItems int
}

// NewRecent creates a tracker holding up to maxItems types.
func NewRecent(maxItems int) *Recent {
	if maxItems <= 0 {
		maxItems = 8
	}
	return &Recent{
		items:    make([]element.Type, 0, maxItems),
		maxItems: maxItems,
	}
}

// Add records a use of t, moving it to the front.
func (r *Recent) Add(t element.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := slices.Index(r.items, t); i >= 0 {
		r.items = slices.Delete(r.items, i, i+1)
	}
	r.items = slices.Insert(r.items, 0, t)

	if len(r.items) > r.maxItems {
		r.items = r.items[:r.maxItems]
	}
}

// List returns up to limit recent types. A non-positive limit returns all.
func (r *Recent) List(limit int) []element.Type {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.items) {
		limit = len(r.items)
	}
	return slices.Clone(r.items[:limit])
}

// Position returns the recency rank of t (0 = most recent), or -1.
func (r *Recent) Position(t element.Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Index(r.items, t)
}

// Len returns the number of tracked types.
func (r *Recent) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Clear forgets all recent types.
func (r *Recent) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = r.items[:0]
}
