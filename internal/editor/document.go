package editor

import (
	"fmt"
	"slices"

	"github.com/dshills/formstorm/internal/element"
	"github.com/dshills/formstorm/internal/geometry"
	"github.com/dshills/formstorm/internal/notify"
)

// AddElement inserts el, appends it to the global order and the current
// step, and makes it the only selection. The caller supplies a unique id;
// no validation is performed. Re-adding an existing id replaces the element
// in place without duplicating its order entry.
func (s *Store) AddElement(el element.Element) {
	s.mu.Lock()
	s.saveToHistoryLocked("Add " + describe(el))

	el = el.Clone()
	_, exists := s.elements[el.ID]
	s.elements[el.ID] = el

	if exists {
		s.log.Debug("addElement: replaced existing element %q", el.ID)
	} else {
		s.order = append(s.order, el.ID)
		step := &s.steps[s.currentStep]
		step.Elements = append(step.Elements, el.ID)
	}
	s.selected = []string{el.ID}
	s.mu.Unlock()

	s.publish(notify.ActionAddElement, el.ID)
}

// UpdateElement shallow-merges patch into the element with id.
// Styles merge one level deep. Not recorded in history.
func (s *Store) UpdateElement(id string, patch element.Patch) {
	s.mu.Lock()
	el, ok := s.elements[id]
	if !ok {
		s.mu.Unlock()
		s.log.Debug("updateElement: unknown id %q", id)
		return
	}
	s.elements[id] = el.Apply(patch)
	s.mu.Unlock()

	s.publish(notify.ActionUpdateElement, id)
}

// DeleteElement removes the element from the document, every step and the
// selection.
func (s *Store) DeleteElement(id string) {
	s.mu.Lock()
	el, ok := s.elements[id]
	if !ok {
		s.mu.Unlock()
		s.log.Debug("deleteElement: unknown id %q", id)
		return
	}
	s.saveToHistoryLocked("Delete " + describe(el))

	delete(s.elements, id)
	s.order = without(s.order, id)
	for i := range s.steps {
		s.steps[i].Elements = without(s.steps[i].Elements, id)
	}
	s.selected = without(s.selected, id)
	if s.hovered == id {
		s.hovered = ""
	}
	s.mu.Unlock()

	s.publish(notify.ActionDeleteElement, id)
}

// DuplicateElement copies the element under a new id, named "<name> Copy"
// and offset by DuplicateOffset on both axes. The copy is appended to the
// global order only, not to any step, and becomes the only selection.
// Returns the new id, or "" if id is unknown.
func (s *Store) DuplicateElement(id string) string {
	s.mu.Lock()
	el, ok := s.elements[id]
	if !ok {
		s.mu.Unlock()
		s.log.Debug("duplicateElement: unknown id %q", id)
		return ""
	}
	s.saveToHistoryLocked("Duplicate " + describe(el))

	dup := el.Clone()
	dup.ID = s.newID()
	dup.Name = el.Name + " Copy"
	dup.Position = el.Position.Add(DuplicateOffset, DuplicateOffset)

	s.elements[dup.ID] = dup
	s.order = append(s.order, dup.ID)
	s.selected = []string{dup.ID}
	s.mu.Unlock()

	s.publish(notify.ActionDuplicateElement, id, dup.ID)
	return dup.ID
}

// MoveElement snaps position to the grid and stores it.
func (s *Store) MoveElement(id string, position geometry.Point) {
	s.mu.Lock()
	el, ok := s.elements[id]
	if !ok {
		s.mu.Unlock()
		s.log.Debug("moveElement: unknown id %q", id)
		return
	}
	el = el.Clone()
	el.Position = geometry.SnapPoint(position, s.effectiveGridLocked())
	s.elements[id] = el
	s.mu.Unlock()

	s.publish(notify.ActionMoveElement, id)
}

// ResizeElement snaps size to the grid and stores it. No minimum size is
// enforced here.
func (s *Store) ResizeElement(id string, size geometry.Size) {
	s.mu.Lock()
	el, ok := s.elements[id]
	if !ok {
		s.mu.Unlock()
		s.log.Debug("resizeElement: unknown id %q", id)
		return
	}
	el = el.Clone()
	el.Size = geometry.SnapSize(size, s.effectiveGridLocked())
	s.elements[id] = el
	s.mu.Unlock()

	s.publish(notify.ActionResizeElement, id)
}

// ReorderElements moves the id at fromIndex of the global order to toIndex.
// Step lists are untouched. An out-of-range fromIndex is ignored; toIndex is
// clamped.
func (s *Store) ReorderElements(fromIndex, toIndex int) {
	s.mu.Lock()
	if fromIndex < 0 || fromIndex >= len(s.order) {
		s.mu.Unlock()
		s.log.Debug("reorderElements: index %d out of range", fromIndex)
		return
	}
	id := s.order[fromIndex]
	s.order = slices.Delete(s.order, fromIndex, fromIndex+1)
	toIndex = geometry.ClampInt(toIndex, 0, len(s.order))
	s.order = slices.Insert(s.order, toIndex, id)
	s.mu.Unlock()

	s.publish(notify.ActionReorderElements, id)
}

func (s *Store) effectiveGridLocked() float64 {
	return geometry.EffectiveGrid(s.snapToGrid, s.gridSize)
}

// without returns a copy of ids with every occurrence of id removed.
func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// describe labels an element for history entries.
func describe(el element.Element) string {
	if el.Name != "" {
		return el.Name
	}
	return fmt.Sprintf("%s %s", el.Type, el.ID)
}
