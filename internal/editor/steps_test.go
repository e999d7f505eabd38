package editor

import (
	"slices"
	"testing"

	"github.com/dshills/formstorm/internal/element"
	"github.com/dshills/formstorm/internal/geometry"
)

func TestAddStep(t *testing.T) {
	s := newTestStore()
	s.AddStep("")
	s.AddStep("")

	steps := s.Steps()
	if len(steps) != 3 {
		t.Fatalf("len = %d, want 3", len(steps))
	}
	if s.CurrentStepIndex() != 2 {
		t.Errorf("CurrentStepIndex = %d, want 2", s.CurrentStepIndex())
	}
	for i, want := range []string{"Step 1", "Step 2", "Step 3"} {
		if steps[i].Name != want {
			t.Errorf("step %d = %q, want %q", i, steps[i].Name, want)
		}
	}

	id := s.AddStep("Payment")
	if got := s.CurrentStep(); got.ID != id || got.Name != "Payment" {
		t.Errorf("CurrentStep = %+v", got)
	}
}

func TestRemoveLastStepIsNoOp(t *testing.T) {
	s := newTestStore()
	for range 5 {
		s.RemoveStep(0)
	}
	if n := len(s.Steps()); n != 1 {
		t.Errorf("len = %d, want 1", n)
	}
}

func TestRemoveStep(t *testing.T) {
	s := newTestStore()
	s.AddElement(textInput("a"))
	s.AddStep("")
	s.AddStep("")

	s.RemoveStep(2)
	if s.CurrentStepIndex() != 1 {
		t.Errorf("CurrentStepIndex = %d, want 1", s.CurrentStepIndex())
	}

	s.RemoveStep(0)
	steps := s.Steps()
	if len(steps) != 1 || steps[0].Name != "Step 2" {
		t.Errorf("steps = %+v", steps)
	}
	if s.CurrentStepIndex() != 0 {
		t.Errorf("CurrentStepIndex = %d, want 0", s.CurrentStepIndex())
	}
	if _, ok := s.Element("a"); !ok {
		t.Error("orphaned element should stay in the document")
	}
	checkOrderIntegrity(t, s)

	s.RemoveStep(9)
	s.RemoveStep(-1)
	if len(s.Steps()) != 1 {
		t.Error("out-of-range remove changed steps")
	}
}

func TestRemoveStepsNeverEmpty(t *testing.T) {
	s := newTestStore()
	for range 4 {
		s.AddStep("")
	}
	for _, i := range []int{3, 0, 7, 1, 0, 0, 0} {
		s.RemoveStep(i)
		if len(s.Steps()) < 1 {
			t.Fatal("steps empty")
		}
		if idx := s.CurrentStepIndex(); idx < 0 || idx >= len(s.Steps()) {
			t.Fatalf("CurrentStepIndex %d out of range", idx)
		}
	}
}

func TestRenameStep(t *testing.T) {
	s := newTestStore()
	s.RenameStep(0, "Contact")
	s.RenameStep(4, "Nope")

	if got := s.Steps()[0].Name; got != "Contact" {
		t.Errorf("Name = %q, want Contact", got)
	}
}

func TestSetCurrentStepIndexClamps(t *testing.T) {
	s := newTestStore()
	s.AddStep("")
	s.AddStep("")

	tests := []struct{ in, want int }{
		{0, 0}, {1, 1}, {-3, 0}, {9, 2},
	}
	for _, tt := range tests {
		s.SetCurrentStepIndex(tt.in)
		if got := s.CurrentStepIndex(); got != tt.want {
			t.Errorf("SetCurrentStepIndex(%d) -> %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPageOrder(t *testing.T) {
	s := newTestStore()
	for _, id := range []string{"a", "b", "c"} {
		s.AddElement(textInput(id))
	}
	s.AddStep("")
	s.AddElement(textInput("d"))
	s.SetCurrentStepIndex(0)
	s.ReorderElements(2, 0)

	if got := s.PageOrder(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("PageOrder = %v, want step order [a b c]", got)
	}

	s.SetCurrentStepIndex(1)
	if got := s.PageOrder(); !slices.Equal(got, []string{"d"}) {
		t.Errorf("PageOrder = %v, want [d]", got)
	}
}

func TestVisibleElementsAndLayers(t *testing.T) {
	s := newTestStore()
	a := textInput("a")
	a.Name = "Email"
	b := textInput("b")
	b.Name = "Phone"
	c := textInput("c")
	c.Name = "Work email"
	c.Visible = element.Bool(false)
	for _, el := range []element.Element{a, b, c} {
		s.AddElement(el)
	}
	dup := s.DuplicateElement("a")

	var ids []string
	for _, el := range s.VisibleElements() {
		ids = append(ids, el.ID)
	}
	if !slices.Equal(ids, []string{"a", "b"}) {
		t.Errorf("VisibleElements = %v, want [a b]", ids)
	}

	ids = nil
	for _, el := range s.Layers("EMAIL") {
		ids = append(ids, el.ID)
	}
	if !slices.Equal(ids, []string{"a", "c"}) {
		t.Errorf("Layers(EMAIL) = %v, want [a c]", ids)
	}
	if slices.Contains(ids, dup) {
		t.Error("duplicate is not on the page and should not be listed")
	}
	if n := len(s.Layers("")); n != 3 {
		t.Errorf("Layers(\"\") = %d elements, want 3", n)
	}
}

func TestChildren(t *testing.T) {
	s := newTestStore()
	box := textInput("box")
	box.Type = element.TypeContainer
	inner := textInput("inner")
	inner.ParentID = "box"
	s.AddElement(box)
	s.AddElement(inner)

	kids := s.Children("box")
	if len(kids) != 1 || kids[0].ID != "inner" {
		t.Errorf("Children(box) = %+v", kids)
	}
	if roots := s.Children(""); len(roots) != 1 || roots[0].ID != "box" {
		t.Errorf("Children(\"\") = %+v", roots)
	}
}

func TestViewport(t *testing.T) {
	s := newTestStore()

	s.SetZoom(10)
	if s.Zoom() != MaxZoom {
		t.Errorf("Zoom = %v, want %v", s.Zoom(), MaxZoom)
	}
	s.SetZoom(0)
	if s.Zoom() != MinZoom {
		t.Errorf("Zoom = %v, want %v", s.Zoom(), MinZoom)
	}
	s.ResetZoom()
	s.ZoomIn()
	if z := s.Zoom(); z < 1.09 || z > 1.11 {
		t.Errorf("ZoomIn -> %v, want 1.1", z)
	}
	s.ResetZoom()
	s.ZoomOut()
	if z := s.Zoom(); z < 0.89 || z > 0.91 {
		t.Errorf("ZoomOut -> %v, want 0.9", z)
	}

	s.SetArtboardWidth(100)
	s.SetArtboardHeight(5000)
	if r := s.Artboard(); r.Width != 360 || r.Height != 2000 {
		t.Errorf("Artboard = %+v, want 360x2000", r)
	}

	s.SetPan(geometry.Point{X: 5, Y: -5})
	if s.Pan() != (geometry.Point{X: 5, Y: -5}) {
		t.Errorf("Pan = %+v", s.Pan())
	}

	s.SetGridSize(-1)
	if s.GridSize() != 8 {
		t.Errorf("GridSize = %v, want 8", s.GridSize())
	}
	s.SetGridSize(10)
	if s.GridSize() != 10 {
		t.Errorf("GridSize = %v, want 10", s.GridSize())
	}

	s.ToggleSnapToGrid()
	if s.SnapToGrid() {
		t.Error("SnapToGrid still on")
	}
	s.TogglePreviewMode()
	if !s.IsPreviewMode() {
		t.Error("preview not on")
	}
}

func TestPanelTabsAndProject(t *testing.T) {
	s := newTestStore()

	s.SetLeftPanelTab(LeftTabLayers)
	s.SetLeftPanelTab("bogus")
	s.SetRightPanelTab(RightTabLogic)
	s.SetRightPanelTab("bogus")
	s.SetProjectName("Signup")
	s.SetFormTitle("Join us")
	s.SetFormDescription("It takes a minute")
	s.SetFormLayout(LayoutTwoColumn)
	s.SetFormLayout("three")

	st := s.State()
	if st.LeftPanelTab != LeftTabLayers || st.RightPanelTab != RightTabLogic {
		t.Errorf("tabs = %s/%s", st.LeftPanelTab, st.RightPanelTab)
	}
	if st.ProjectName != "Signup" || st.FormTitle != "Join us" || st.FormDescription != "It takes a minute" {
		t.Errorf("project = %+v", st)
	}
	if st.FormLayout != LayoutTwoColumn {
		t.Errorf("FormLayout = %s", st.FormLayout)
	}
}
