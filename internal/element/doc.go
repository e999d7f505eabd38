// Package element defines the form element model placed on the editor canvas.
//
// An Element is one placed form component. Its Type is drawn from a closed
// set of component variants; each variant implies a default size and which
// settings (label, placeholder, required, options) are meaningful.
//
// Elements are plain values. The editor store hands out clones and expects
// readers to treat them as immutable; changes go through a Patch.
//
// # Patches
//
// Patch applies partial updates with shallow-merge semantics: nil fields are
// left untouched and set fields fully replace the old value. Styles is the one
// exception and merges one level deep:
//
//	el = el.Apply(element.Patch{Styles: element.Styles{"color": "red"}})
//
// keeps every other style key. A nil style value removes the key.
package element
