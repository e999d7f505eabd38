package editor

import (
	"maps"
	"slices"
	"strings"

	"github.com/dshills/formstorm/internal/element"
	"github.com/dshills/formstorm/internal/geometry"
)

// State returns a deep copy of the store's state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	elements := make(map[string]element.Element, len(s.elements))
	for id, el := range s.elements {
		elements[id] = el.Clone()
	}
	steps := make([]Page, len(s.steps))
	for i, p := range s.steps {
		steps[i] = p.Clone()
	}

	return State{
		ProjectName:      s.projectName,
		ProjectID:        s.projectID,
		FormTitle:        s.formTitle,
		FormDescription:  s.formDescription,
		FormLayout:       s.formLayout,
		Elements:         elements,
		ElementOrder:     slices.Clone(s.order),
		Steps:            steps,
		CurrentStepIndex: s.currentStep,
		SelectedIDs:      slices.Clone(s.selected),
		HoveredID:        s.hovered,
		Zoom:             s.zoom,
		Pan:              s.pan,
		ShowGrid:         s.showGrid,
		SnapToGrid:       s.snapToGrid,
		GridSize:         s.gridSize,
		ArtboardWidth:    s.artboardWidth,
		ArtboardHeight:   s.artboardHeight,
		ArtboardPadding:  s.artboardPadding,
		LeftPanelTab:     s.leftTab,
		RightPanelTab:    s.rightTab,
		IsPreviewMode:    s.preview,
		HistoryLen:       s.history.Len(),
		HistoryIndex:     s.history.Index(),
	}
}

// Element returns a copy of the element with id.
func (s *Store) Element(id string) (element.Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	el, ok := s.elements[id]
	if !ok {
		return element.Element{}, false
	}
	return el.Clone(), true
}

// Len returns the number of elements in the document.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elements)
}

// ElementOrder returns the global element order.
func (s *Store) ElementOrder() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// Elements returns the elements in global order.
func (s *Store) Elements() []element.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orderedLocked(s.order)
}

func (s *Store) orderedLocked(ids []string) []element.Element {
	out := make([]element.Element, 0, len(ids))
	for _, id := range ids {
		if el, ok := s.elements[id]; ok {
			out = append(out, el.Clone())
		}
	}
	return out
}

// Steps returns a copy of the steps.
func (s *Store) Steps() []Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Page, len(s.steps))
	for i, p := range s.steps {
		out[i] = p.Clone()
	}
	return out
}

// CurrentStepIndex returns the index of the active step.
func (s *Store) CurrentStepIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentStep
}

// CurrentStep returns a copy of the active step.
func (s *Store) CurrentStep() Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.steps[s.currentStep].Clone()
}

// PageOrder returns the ids listed on the active step that still exist,
// in step order.
func (s *Store) PageOrder() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageOrderLocked()
}

func (s *Store) pageOrderLocked() []string {
	if s.currentStep < 0 || s.currentStep >= len(s.steps) {
		return slices.Clone(s.order)
	}
	return s.existingLocked(s.steps[s.currentStep].Elements)
}

// VisibleElements returns the active step's elements in step order,
// skipping hidden ones. This is what the canvas renders.
func (s *Store) VisibleElements() []element.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.DeleteFunc(s.orderedLocked(s.pageOrderLocked()), func(el element.Element) bool {
		return !el.IsVisible()
	})
}

// Children returns the elements whose ParentID is parentID, in global order.
func (s *Store) Children(parentID string) []element.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []element.Element
	for _, el := range s.orderedLocked(s.order) {
		if el.ParentID == parentID {
			out = append(out, el)
		}
	}
	return out
}

// Layers returns the active step's elements whose name contains query,
// ignoring case. An empty query matches everything.
func (s *Store) Layers(query string) []element.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	return slices.DeleteFunc(s.orderedLocked(s.pageOrderLocked()), func(el element.Element) bool {
		return !strings.Contains(strings.ToLower(el.Name), q)
	})
}

// SelectedIDs returns the selection in selection order.
func (s *Store) SelectedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.selected)
}

// IsSelected reports whether id is selected.
func (s *Store) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.selected, id)
}

// HoveredID returns the hovered element id, or "".
func (s *Store) HoveredID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hovered
}

// Zoom returns the zoom factor.
func (s *Store) Zoom() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zoom
}

// Pan returns the pan offset.
func (s *Store) Pan() geometry.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pan
}

// GridSize returns the snap grid size.
func (s *Store) GridSize() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gridSize
}

// SnapToGrid reports whether positions and sizes snap.
func (s *Store) SnapToGrid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapToGrid
}

// ShowGrid reports whether the grid is shown.
func (s *Store) ShowGrid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showGrid
}

// Artboard returns the artboard rectangle in canvas coordinates.
func (s *Store) Artboard() geometry.Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return geometry.Rect{Width: s.artboardWidth, Height: s.artboardHeight}
}

// ArtboardPadding returns the padding around the artboard.
func (s *Store) ArtboardPadding() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.artboardPadding
}

// IsPreviewMode reports whether preview mode is on.
func (s *Store) IsPreviewMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preview
}

// ProjectName returns the project name.
func (s *Store) ProjectName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectName
}

// CountType returns how many elements have type t.
func (s *Store) CountType(t element.Type) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, el := range s.elements {
		if el.Type == t {
			n++
		}
	}
	return n
}

// IDs returns all element ids, sorted.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.elements))
}
