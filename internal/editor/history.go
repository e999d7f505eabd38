package editor

import (
	"errors"
	"slices"

	"github.com/dshills/formstorm/internal/engine/history"
	"github.com/dshills/formstorm/internal/notify"
)

// snapshotLocked captures the undoable document state.
// Caller must hold s.mu.
func (s *Store) snapshotLocked() history.Snapshot {
	pages := make(map[string][]string, len(s.steps))
	for _, p := range s.steps {
		pages[p.ID] = p.Elements
	}
	// history clones on Save and Undo.
	return history.Snapshot{
		Elements: s.elements,
		Order:    s.order,
		Pages:    pages,
	}
}

// saveToHistoryLocked records the current document as an undo point.
// Caller must hold s.mu.
func (s *Store) saveToHistoryLocked(label string) {
	s.history.Save(label, s.snapshotLocked())
}

// restoreLocked replaces the document with snap.
//
// Steps present in the snapshot take its membership back. Steps created
// since keep their lists, minus ids that no longer exist. Selection and
// hover drop ids that no longer exist. Caller must hold s.mu.
func (s *Store) restoreLocked(snap history.Snapshot) {
	s.elements = snap.Elements
	s.order = snap.Order

	for i := range s.steps {
		if ids, ok := snap.Pages[s.steps[i].ID]; ok {
			s.steps[i].Elements = ids
			continue
		}
		s.steps[i].Elements = s.existingLocked(s.steps[i].Elements)
	}

	s.selected = s.existingLocked(s.selected)
	if _, ok := s.elements[s.hovered]; !ok {
		s.hovered = ""
	}
}

func (s *Store) existingLocked(ids []string) []string {
	return slices.DeleteFunc(slices.Clone(ids), func(id string) bool {
		_, ok := s.elements[id]
		return !ok
	})
}

// SaveToHistory records the current document as an undo point.
// Any redo branch is discarded.
func (s *Store) SaveToHistory() {
	s.mu.Lock()
	s.saveToHistoryLocked("Checkpoint")
	s.mu.Unlock()

	s.publish(notify.ActionHistory)
}

// Undo restores the document to the previous snapshot.
// It does nothing when there is nothing to undo.
func (s *Store) Undo() {
	s.mu.Lock()
	snap, err := s.history.Undo(s.snapshotLocked())
	if err != nil {
		s.mu.Unlock()
		if !errors.Is(err, history.ErrNothingToUndo) {
			s.log.Error("undo: %v", err)
			return
		}
		s.log.Debug("undo: %v", err)
		return
	}
	s.restoreLocked(snap)
	s.mu.Unlock()

	s.publish(notify.ActionUndo)
}

// Redo reapplies the most recently undone change.
// It does nothing when there is nothing to redo.
func (s *Store) Redo() {
	s.mu.Lock()
	snap, err := s.history.Redo()
	if err != nil {
		s.mu.Unlock()
		if !errors.Is(err, history.ErrNothingToRedo) {
			s.log.Error("redo: %v", err)
			return
		}
		s.log.Debug("redo: %v", err)
		return
	}
	s.restoreLocked(snap)
	s.mu.Unlock()

	s.publish(notify.ActionRedo)
}

// CanUndo reports whether Undo would change anything.
func (s *Store) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (s *Store) CanRedo() bool {
	return s.history.CanRedo()
}

// HistoryLen returns the number of stored snapshots.
func (s *Store) HistoryLen() int {
	return s.history.Len()
}

// HistoryIndex returns the position of the latest applied snapshot, or -1.
func (s *Store) HistoryIndex() int {
	return s.history.Index()
}

// UndoInfo describes the undoable operations, oldest first.
func (s *Store) UndoInfo() []history.OperationInfo {
	return s.history.UndoInfo()
}
