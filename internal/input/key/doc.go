// Package key provides key events and shortcut parsing for the designer.
//
//   - Key: a named key, or KeyRune for characters
//   - Modifier: Ctrl, Alt, Shift and Meta (Cmd on macOS)
//   - Event: one key press with its modifiers
//
// # Specifications
//
// Shortcuts are written the way menus show them:
//
//	"Delete", "Escape", "z", "Ctrl+Z", "Ctrl+Shift+Z", "Meta+=", "Ctrl++"
//
// Names are case-insensitive. A letter's case is folded into Shift, so
// "Ctrl+Shift+z" and "Ctrl+Shift+Z" parse to the same event.
//
// Terminal hosts convert tcell key events with FromTcell.
package key
