// Package history provides snapshot-based undo/redo for the form editor.
//
// The store captures a Snapshot of the document before every structural
// edit (add, delete, duplicate) and hands it to Save. Undo restores the most
// recent snapshot; Redo re-applies the state that Undo replaced.
//
// # State machine
//
// History is a linear list of entries plus an index:
//
//	-1 <= Index() <= Len()-1
//
// Index() == -1 means nothing can be undone. Save discards every entry after
// the index before appending, so a new edit made after some undos erases the
// redo branch. The list is capped (DefaultMaxEntries); the oldest entry is
// evicted when the cap is exceeded.
//
//	h := history.NewHistory(history.DefaultMaxEntries)
//	h.Save("Add Text Input 1", before)
//
//	restored, err := h.Undo(current) // restored == before
//	again, err := h.Redo()           // again == current
//
// # Redo
//
// An entry records only the state before its edit. The state after the edit
// is captured lazily when the entry is undone, so Redo returns exactly the
// document that Undo replaced.
//
// # Immutability
//
// Snapshots are deep-copied on the way in and on the way out. Callers may
// keep mutating the maps they pass to Save and Undo.
package history
