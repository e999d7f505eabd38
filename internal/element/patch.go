package element

import (
	"slices"

	"github.com/dshills/formstorm/internal/geometry"
)

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Type         *Type
	Name         *string
	Label        *string
	Placeholder  *string
	HelpText     *string
	DefaultValue *string
	Required     *bool
	Validation   *[]ValidationRule
	Options      *[]Option
	Position     *geometry.Point
	Size         *geometry.Size
	Styles       Styles
	ParentID     *string
	Children     *[]string
	Locked       *bool
	Visible      *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Type == nil && p.Name == nil && p.Label == nil && p.Placeholder == nil &&
		p.HelpText == nil && p.DefaultValue == nil && p.Required == nil &&
		p.Validation == nil && p.Options == nil && p.Position == nil && p.Size == nil &&
		p.Styles == nil && p.ParentID == nil && p.Children == nil && p.Locked == nil &&
		p.Visible == nil
}

// Apply returns a copy of e with the patch applied. Patch slices are
// cloned so later changes to the patch do not leak in.
func (e Element) Apply(p Patch) Element {
	out := e.Clone()
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Label != nil {
		out.Label = *p.Label
	}
	if p.Placeholder != nil {
		out.Placeholder = *p.Placeholder
	}
	if p.HelpText != nil {
		out.HelpText = *p.HelpText
	}
	if p.DefaultValue != nil {
		out.DefaultValue = *p.DefaultValue
	}
	if p.Required != nil {
		out.Required = *p.Required
	}
	if p.Validation != nil {
		out.Validation = slices.Clone(*p.Validation)
	}
	if p.Options != nil {
		out.Options = slices.Clone(*p.Options)
	}
	if p.Position != nil {
		out.Position = *p.Position
	}
	if p.Size != nil {
		out.Size = *p.Size
	}
	if p.Styles != nil {
		out.Styles = out.Styles.Merge(p.Styles)
	}
	if p.ParentID != nil {
		out.ParentID = *p.ParentID
	}
	if p.Children != nil {
		out.Children = slices.Clone(*p.Children)
	}
	if p.Locked != nil {
		out.Locked = *p.Locked
	}
	if p.Visible != nil {
		out.Visible = Bool(*p.Visible)
	}
	return out
}
