package editor

import (
	"slices"

	"github.com/dshills/formstorm/internal/element"
	"github.com/dshills/formstorm/internal/geometry"
)

// Page is one step of a multi-step form.
type Page struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Elements []string `json:"elements"`
}

// Clone returns a deep copy of p.
func (p Page) Clone() Page {
	out := p
	out.Elements = slices.Clone(p.Elements)
	return out
}

// Contains reports whether the page lists id.
func (p Page) Contains(id string) bool {
	return slices.Contains(p.Elements, id)
}

// FormLayout is the column layout of the exported form.
type FormLayout string

// Form layouts.
const (
	LayoutOneColumn FormLayout = "one-column"
	LayoutTwoColumn FormLayout = "two-column"
)

// Valid reports whether l is a known layout.
func (l FormLayout) Valid() bool {
	return l == LayoutOneColumn || l == LayoutTwoColumn
}

// LeftPanelTab selects the left panel view.
type LeftPanelTab string

// Left panel tabs.
const (
	LeftTabLayers     LeftPanelTab = "layers"
	LeftTabComponents LeftPanelTab = "components"
)

// Valid reports whether t is a known tab.
func (t LeftPanelTab) Valid() bool {
	return t == LeftTabLayers || t == LeftTabComponents
}

// RightPanelTab selects the right panel view.
type RightPanelTab string

// Right panel tabs.
const (
	RightTabDesign   RightPanelTab = "design"
	RightTabSettings RightPanelTab = "settings"
	RightTabLogic    RightPanelTab = "logic"
)

// Valid reports whether t is a known tab.
func (t RightPanelTab) Valid() bool {
	return t == RightTabDesign || t == RightTabSettings || t == RightTabLogic
}

// State is a read-only copy of everything the store owns.
// Mutating it has no effect on the store.
type State struct {
	ProjectName     string     `json:"projectName"`
	ProjectID       string     `json:"projectId"`
	FormTitle       string     `json:"formTitle"`
	FormDescription string     `json:"formDescription"`
	FormLayout      FormLayout `json:"formLayout"`

	Elements     map[string]element.Element `json:"elements"`
	ElementOrder []string                   `json:"elementOrder"`

	Steps            []Page `json:"steps"`
	CurrentStepIndex int    `json:"currentStepIndex"`

	SelectedIDs []string `json:"selectedIds"`
	HoveredID   string   `json:"hoveredId,omitempty"`

	Zoom            float64        `json:"zoom"`
	Pan             geometry.Point `json:"pan"`
	ShowGrid        bool           `json:"showGrid"`
	SnapToGrid      bool           `json:"snapToGrid"`
	GridSize        float64        `json:"gridSize"`
	ArtboardWidth   float64        `json:"artboardWidth"`
	ArtboardHeight  float64        `json:"artboardHeight"`
	ArtboardPadding float64        `json:"artboardPadding"`

	LeftPanelTab  LeftPanelTab  `json:"leftPanelTab"`
	RightPanelTab RightPanelTab `json:"rightPanelTab"`
	IsPreviewMode bool          `json:"isPreviewMode"`

	HistoryLen   int `json:"historyLen"`
	HistoryIndex int `json:"historyIndex"`
}

// CurrentStep returns the active step.
func (st State) CurrentStep() Page {
	return st.Steps[st.CurrentStepIndex]
}

// OrderedElements returns the elements of ElementOrder in order.
func (st State) OrderedElements() []element.Element {
	out := make([]element.Element, 0, len(st.ElementOrder))
	for _, id := range st.ElementOrder {
		if el, ok := st.Elements[id]; ok {
			out = append(out, el)
		}
	}
	return out
}
