package editor

import (
	"fmt"
	"slices"
	"testing"

	"github.com/dshills/formstorm/internal/geometry"
)

func TestUndoRedoInverse(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("x"))
	s0 := docJSON(t, s.State())

	s.AddElement(textInput("a"))
	s1 := docJSON(t, s.State())

	s.Undo()
	if got := docJSON(t, s.State()); got != s0 {
		t.Errorf("after undo:\n got %s\nwant %s", got, s0)
	}

	s.Redo()
	if got := docJSON(t, s.State()); got != s1 {
		t.Errorf("after redo:\n got %s\nwant %s", got, s1)
	}
}

func TestUndoRedoKeepsEditsMadeBeforeUndo(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("a"))
	s.MoveElement("a", geometry.Point{X: 40, Y: 40})
	moved := docJSON(t, s.State())

	s.Undo()
	if s.Len() != 0 {
		t.Fatalf("Len = %d after undo, want 0", s.Len())
	}
	s.Redo()
	if got := docJSON(t, s.State()); got != moved {
		t.Errorf("redo lost the move:\n got %s\nwant %s", got, moved)
	}
}

func TestUndoNothing(t *testing.T) {
	s := newTestStore()
	s.Undo()
	s.Redo()

	if s.HistoryIndex() != -1 || s.HistoryLen() != 0 {
		t.Errorf("history = %d/%d, want -1/0", s.HistoryIndex(), s.HistoryLen())
	}
	if s.CanUndo() || s.CanRedo() {
		t.Error("empty history should not undo or redo")
	}
}

func TestUndoToEmptyThenRedoPastTip(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("a"))
	s.AddElement(textInput("b"))

	s.Undo()
	s.Undo()
	s.Undo()
	if s.HistoryIndex() != -1 {
		t.Errorf("HistoryIndex = %d, want -1", s.HistoryIndex())
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}

	s.Redo()
	s.Redo()
	s.Redo()
	if s.HistoryIndex() != 1 {
		t.Errorf("HistoryIndex = %d, want 1", s.HistoryIndex())
	}
	if !slices.Equal(s.ElementOrder(), []string{"a", "b"}) {
		t.Errorf("order = %v, want [a b]", s.ElementOrder())
	}
}

func TestHistoryCap(t *testing.T) {
	s := newTestStore()
	for i := range 60 {
		s.AddElement(textInput(fmt.Sprintf("e%d", i)))
	}
	if s.HistoryLen() > 50 {
		t.Errorf("HistoryLen = %d, want <= 50", s.HistoryLen())
	}
	if s.HistoryIndex() != s.HistoryLen()-1 {
		t.Errorf("HistoryIndex = %d, want %d", s.HistoryIndex(), s.HistoryLen()-1)
	}
}

func TestRedoBranchDiscard(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("a"))
	s.AddElement(textInput("b"))
	s.AddElement(textInput("c"))

	s.Undo()
	s.Undo()
	if !s.CanRedo() {
		t.Fatal("CanRedo = false after undo")
	}

	s.AddElement(textInput("d"))
	if s.CanRedo() {
		t.Error("CanRedo = true after new mutation")
	}
	before := docJSON(t, s.State())
	s.Redo()
	if got := docJSON(t, s.State()); got != before {
		t.Error("redo after branch discard changed the document")
	}
	if !slices.Equal(s.ElementOrder(), []string{"a", "d"}) {
		t.Errorf("order = %v, want [a d]", s.ElementOrder())
	}
}

func TestUndoDeleteRestoresPageMembership(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("a"))
	s.AddStep("")
	s.AddElement(textInput("b"))

	s.DeleteElement("a")
	if s.Steps()[0].Contains("a") {
		t.Fatal("delete left a in step 0")
	}

	s.Undo()
	steps := s.Steps()
	if !slices.Equal(steps[0].Elements, []string{"a"}) {
		t.Errorf("step 0 = %v, want [a]", steps[0].Elements)
	}
	if !slices.Equal(steps[1].Elements, []string{"b"}) {
		t.Errorf("step 1 = %v, want [b]", steps[1].Elements)
	}
}

func TestUndoAddRemovesFromNewerStep(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("a"))
	s.SaveToHistory()
	s.AddStep("Details")
	s.AddElement(textInput("b"))

	s.Undo()
	steps := s.Steps()
	if len(steps) != 2 {
		t.Fatalf("undo changed step count: %d", len(steps))
	}
	if len(steps[1].Elements) != 0 {
		t.Errorf("step added after snapshot kept %v", steps[1].Elements)
	}
}

func TestUndoPrunesSelectionAndHover(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("a"))
	s.SetHoveredID("a")

	s.Undo()
	if len(s.SelectedIDs()) != 0 {
		t.Errorf("selection = %v, want empty", s.SelectedIDs())
	}
	if s.HoveredID() != "" {
		t.Errorf("HoveredID = %q, want empty", s.HoveredID())
	}
}

func TestUndoDoesNotTouchViewport(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("a"))
	s.SetZoom(2)
	s.ToggleGrid()

	s.Undo()
	if s.Zoom() != 2 || s.ShowGrid() {
		t.Errorf("undo changed viewport: zoom %v grid %v", s.Zoom(), s.ShowGrid())
	}
}

func TestSaveToHistory(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("a"))

	s.SaveToHistory()
	s.MoveElement("a", geometry.Point{X: 80, Y: 80})

	s.Undo()
	got, _ := s.Element("a")
	if got.Position != (geometry.Point{}) {
		t.Errorf("Position = %+v after undoing the gesture, want origin", got.Position)
	}
	if !s.CanUndo() {
		t.Error("the add should still be undoable")
	}
}

func TestUndoInfo(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("a"))
	s.DuplicateElement("a")

	info := s.UndoInfo()
	if len(info) != 2 {
		t.Fatalf("len = %d, want 2", len(info))
	}
	if info[0].Description != "Add Text Input 1" {
		t.Errorf("info[0] = %q", info[0].Description)
	}
	if info[1].Description != "Duplicate Text Input 1" {
		t.Errorf("info[1] = %q", info[1].Description)
	}
}

func TestWithMaxHistory(t *testing.T) {
	s := newTestStore(WithMaxHistory(3))
	for i := range 5 {
		s.AddElement(textInput(fmt.Sprintf("e%d", i)))
	}
	if s.HistoryLen() != 3 {
		t.Errorf("HistoryLen = %d, want 3", s.HistoryLen())
	}
}
