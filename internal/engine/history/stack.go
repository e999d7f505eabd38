package history

import (
	"errors"
	"sync"
	"time"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is the number of snapshots kept.
const DefaultMaxEntries = 50

// OperationInfo describes an undoable or redoable entry.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
}

// entry is one saved snapshot with metadata.
type entry struct {
	label     string
	timestamp time.Time
	before    Snapshot

	// after is filled in when the entry is undone.
	after *Snapshot
}

func (e *entry) info() OperationInfo {
	return OperationInfo{Description: e.label, Timestamp: e.timestamp}
}

// History manages undo/redo state for a document.
type History struct {
	mu sync.Mutex

	entries []*entry
	index   int

	// Configuration
	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		index:      -1,
		maxEntries: maxEntries,
	}
}

// Save records the state before a structural edit.
// Entries after the current index are discarded first.
func (h *History) Save(label string, before Snapshot) {
	snap := before.Clone()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = h.entries[:h.index+1]
	h.entries = append(h.entries, &entry{
		label:     label,
		timestamp: time.Now(),
		before:    snap,
	})

	if len(h.entries) > h.maxEntries {
		excess := len(h.entries) - h.maxEntries
		h.entries = h.entries[excess:]
	}
	h.index = len(h.entries) - 1
}

// Undo returns the snapshot to restore and steps the index back.
// current is the live state being replaced; Redo returns it later.
func (h *History) Undo(current Snapshot) (Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index < 0 {
		return Snapshot{}, ErrNothingToUndo
	}

	e := h.entries[h.index]
	after := current.Clone()
	e.after = &after
	h.index--

	return e.before.Clone(), nil
}

// Redo returns the state that the matching Undo replaced and steps the
// index forward.
func (h *History) Redo() (Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.redoableLocked() {
		return Snapshot{}, ErrNothingToRedo
	}

	e := h.entries[h.index+1]
	h.index++

	return e.after.Clone(), nil
}

// redoableLocked reports whether the next entry has a state to redo into.
func (h *History) redoableLocked() bool {
	return h.index < len(h.entries)-1 && h.entries[h.index+1].after != nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index >= 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.redoableLocked()
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Index returns the position of the next entry Undo restores, or -1.
func (h *History) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}

// Clear removes all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
	h.index = -1
}

// UndoInfo returns undoable entries, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, 0, h.index+1)
	for _, e := range h.entries[:h.index+1] {
		result = append(result, e.info())
	}
	return result
}

// RedoInfo returns redoable entries, next redo first.
func (h *History) RedoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, 0, len(h.entries)-h.index-1)
	for _, e := range h.entries[h.index+1:] {
		result = append(result, e.info())
	}
	return result
}

// PeekUndo returns info about the next undo without performing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index < 0 {
		return OperationInfo{}, false
	}
	return h.entries[h.index].info(), true
}

// PeekRedo returns info about the next redo without performing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.redoableLocked() {
		return OperationInfo{}, false
	}
	return h.entries[h.index+1].info(), true
}

// SetMaxEntries changes the cap. Oldest entries are evicted if needed.
func (h *History) SetMaxEntries(n int) {
	if n <= 0 {
		n = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = n
	if len(h.entries) > n {
		excess := len(h.entries) - n
		if excess > h.index+1 {
			// The current position was evicted; the redo chain no longer
			// starts from the live document.
			h.entries = nil
			h.index = -1
			return
		}
		h.entries = h.entries[excess:]
		h.index -= excess
	}
}

// MaxEntries returns the cap.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
