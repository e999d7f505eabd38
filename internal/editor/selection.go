package editor

import (
	"slices"

	"github.com/dshills/formstorm/internal/notify"
)

// SelectElement replaces the selection with id. With multi set, it toggles
// id in the existing selection instead.
func (s *Store) SelectElement(id string, multi bool) {
	s.mu.Lock()
	switch {
	case !multi:
		s.selected = []string{id}
	case slices.Contains(s.selected, id):
		s.selected = without(s.selected, id)
	default:
		s.selected = append(slices.Clone(s.selected), id)
	}
	s.mu.Unlock()

	s.publish(notify.ActionSelect, id)
}

// ClearSelection empties the selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()

	s.publish(notify.ActionSelect)
}

// SetHoveredID sets the hovered element. An empty id clears it.
func (s *Store) SetHoveredID(id string) {
	s.mu.Lock()
	if s.hovered == id {
		s.mu.Unlock()
		return
	}
	s.hovered = id
	s.mu.Unlock()

	s.publish(notify.ActionHover, id)
}
