// Package editor provides the form editor store: the single owner of the
// document model, selection, viewport and undo history.
//
// UI surfaces (canvas, panels, toolbar) read state through selectors and
// change it only through Store actions. Each action runs to completion under
// the store lock and then notifies subscribers.
//
// # Document model
//
// Elements live in a map keyed by id. ElementOrder is the global rendering
// order. Steps (pages) hold ordered subsets of element ids for multi-step
// forms; a form always has at least one step.
//
//	s := editor.New()
//	s.AddElement(element.Element{ID: "a", Type: element.TypeTextInput, Name: "Text Input 1"})
//	s.MoveElement("a", geometry.Point{X: 13, Y: 13}) // stored as {16, 16} on an 8px grid
//
// # Silent absorption
//
// Actions never fail. Unknown ids are ignored, out-of-range indices and
// viewport values are clamped, and guarded transitions (removing the last
// step, undo at the bottom, redo at the tip) do nothing. Ignored calls are
// logged at debug level.
//
// # History
//
// AddElement, DeleteElement and DuplicateElement snapshot the document before
// mutating it. Property edits, moves, resizes and reorders do not; callers
// that want a drag gesture to be undoable call SaveToHistory before it
// starts.
//
// Snapshots cover elements, the global order and each step's membership.
// Step structure itself (adding, removing, renaming steps), selection and
// viewport are outside history.
//
// # Observing changes
//
//	sub := s.Subscribe(func(c notify.Change) { redraw() })
//	defer sub.Unsubscribe()
//
// Observers run after the store lock is released and may read the store.
package editor
