// Package keymap maps keyboard shortcuts to editor store actions.
//
// A Keymap holds Bindings from a key specification ("Ctrl+Shift+Z") to an
// action name ("history.redo"), optionally guarded by a When condition.
// Handle looks up an event and runs the bound action against a Target,
// normally the editor store.
//
// # Matching
//
// Events are normalized before lookup. An exact match wins; otherwise the
// event is retried with Shift dropped, so "Ctrl+Shift+D" still duplicates
// and "Ctrl++" (typed with Shift) still zooms in.
//
// # Conditions
//
// When is a "&&"-joined list of context flags, each optionally negated:
//
//	"!textFocus && hasSelection"
//
// Known flags are textFocus (a text field has keyboard focus) and
// hasSelection (at least one element is selected).
//
// # Usage
//
//	km := keymap.NewDefault(store)
//	handled := km.Handle(key.FromTcell(ev), false)
package keymap
