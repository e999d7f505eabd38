package element

import (
	"testing"

	"github.com/dshills/formstorm/internal/geometry"
)

func sampleElement() Element {
	return Element{
		ID:       "a",
		Type:     TypeTextInput,
		Name:     "Text Input 1",
		Label:    "Text Input",
		Position: geometry.Point{X: 10, Y: 20},
		Size:     geometry.Size{Width: 320, Height: 72},
		Styles:   Styles{StyleColor: "blue", StylePadding: "8px"},
		Options:  []Option{{Label: "A", Value: "a"}},
	}
}

func TestTypesAreValid(t *testing.T) {
	if len(Types) != 20 {
		t.Fatalf("len(Types) = %d, want 20", len(Types))
	}
	for _, typ := range Types {
		if !typ.Valid() {
			t.Errorf("%s should be valid", typ)
		}
		tr, _ := TraitsOf(typ)
		if tr.Width <= 0 || tr.Height <= 0 {
			t.Errorf("%s has no default size", typ)
		}
	}
	if Type("carousel").Valid() {
		t.Error("unknown type reported valid")
	}
}

func TestIsVisible(t *testing.T) {
	e := sampleElement()
	if !e.IsVisible() {
		t.Error("unset Visible should be visible")
	}
	e.Visible = Bool(false)
	if e.IsVisible() {
		t.Error("explicit false should hide")
	}
}

func TestCloneIsDeep(t *testing.T) {
	e := sampleElement()
	e.Visible = Bool(true)
	c := e.Clone()

	c.Styles[StyleColor] = "red"
	c.Options[0].Label = "changed"
	*c.Visible = false

	if e.Styles[StyleColor] != "blue" {
		t.Error("styles shared between clone and original")
	}
	if e.Options[0].Label != "A" {
		t.Error("options shared between clone and original")
	}
	if !*e.Visible {
		t.Error("visible pointer shared between clone and original")
	}
}

func TestApplyShallowReplace(t *testing.T) {
	e := sampleElement()
	newOpts := []Option{{Label: "B", Value: "b"}, {Label: "C", Value: "c"}}
	pos := geometry.Point{X: 1, Y: 2}

	got := e.Apply(Patch{
		Label:    String("Email"),
		Options:  &newOpts,
		Position: &pos,
	})

	if got.Label != "Email" {
		t.Errorf("Label = %q", got.Label)
	}
	if got.Name != e.Name {
		t.Errorf("Name changed to %q", got.Name)
	}
	if len(got.Options) != 2 || got.Options[0].Value != "b" {
		t.Errorf("Options = %+v, want replaced", got.Options)
	}
	if got.Position != pos {
		t.Errorf("Position = %+v", got.Position)
	}
	if e.Label != "Text Input" {
		t.Error("Apply modified the receiver")
	}

	newOpts[0].Value = "mutated"
	if got.Options[0].Value != "b" {
		t.Error("patch slice aliased into element")
	}
}

func TestApplyMergesStylesOneLevel(t *testing.T) {
	e := sampleElement()
	got := e.Apply(Patch{Styles: Styles{StyleColor: "red", StyleOpacity: 0.5}})

	if got.Styles[StyleColor] != "red" {
		t.Errorf("color = %v, want red", got.Styles[StyleColor])
	}
	if got.Styles[StylePadding] != "8px" {
		t.Errorf("padding = %v, want preserved 8px", got.Styles[StylePadding])
	}
	if v, ok := got.Styles.Number(StyleOpacity); !ok || v != 0.5 {
		t.Errorf("opacity = %v, %v", v, ok)
	}
	if e.Styles[StyleColor] != "blue" {
		t.Error("Apply modified receiver styles")
	}
}

func TestApplyNilStyleValueUnsets(t *testing.T) {
	e := sampleElement()
	got := e.Apply(Patch{Styles: Styles{StylePadding: nil}})
	if _, ok := got.Styles[StylePadding]; ok {
		t.Error("nil style value should delete key")
	}
}

func TestPatchIsEmpty(t *testing.T) {
	if !(Patch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if (Patch{Locked: Bool(true)}).IsEmpty() {
		t.Error("patch with Locked should not be empty")
	}
}
