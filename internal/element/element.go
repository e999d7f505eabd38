package element

import (
	"slices"

	"github.com/dshills/formstorm/internal/geometry"
)

// Option is one choice of a select or radio element.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ValidationRule is a declarative validation attached to an element.
// Rules are stored and exported but never evaluated by the editor.
type ValidationRule struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Element is one placed form component.
type Element struct {
	ID           string           `json:"id"`
	Type         Type             `json:"type"`
	Name         string           `json:"name"`
	Label        string           `json:"label,omitempty"`
	Placeholder  string           `json:"placeholder,omitempty"`
	HelpText     string           `json:"helpText,omitempty"`
	DefaultValue string           `json:"defaultValue,omitempty"`
	Required     bool             `json:"required,omitempty"`
	Validation   []ValidationRule `json:"validation,omitempty"`
	Options      []Option         `json:"options,omitempty"`
	Position     geometry.Point   `json:"position"`
	Size         geometry.Size    `json:"size"`
	Styles       Styles           `json:"styles"`
	ParentID     string           `json:"parentId,omitempty"`
	Children     []string         `json:"children,omitempty"`
	Locked       bool             `json:"locked,omitempty"`

	// Visible is nil when never set; only an explicit false hides the element.
	Visible *bool `json:"visible,omitempty"`
}

// IsVisible reports whether the element renders and exports.
func (e Element) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// IsRoot reports whether the element has no parent.
func (e Element) IsRoot() bool {
	return e.ParentID == ""
}

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	out := e
	out.Styles = e.Styles.Clone()
	out.Validation = slices.Clone(e.Validation)
	out.Options = slices.Clone(e.Options)
	out.Children = slices.Clone(e.Children)
	if e.Visible != nil {
		v := *e.Visible
		out.Visible = &v
	}
	return out
}

// Bool returns a pointer to b, for Visible and Patch fields.
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s, for Patch fields.
func String(s string) *string {
	return &s
}
