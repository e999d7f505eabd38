package key

import (
	"strings"
	"unicode"
)

// Event is a single key press.
//
// Events are comparable; use Normalize before comparing events that came
// from different sources.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers holds the modifier keys held down.
	Modifiers Modifier
}

// NewRuneEvent creates a character event.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a named-key event.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune reports whether e is a character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Normalize returns e in canonical form: upper-case letters become their
// lower-case rune plus Shift, and a space rune becomes KeySpace.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		return e
	}
	if e.Rune == ' ' {
		return Event{Key: KeySpace, Modifiers: e.Modifiers}
	}
	if unicode.IsUpper(e.Rune) {
		e.Rune = unicode.ToLower(e.Rune)
		e.Modifiers = e.Modifiers.With(ModShift)
	}
	return e
}

// String returns the canonical specification, such as "Ctrl+Shift+Z".
// Parse(e.String()) yields e.Normalize().
func (e Event) String() string {
	e = e.Normalize()

	var name string
	if e.Key == KeyRune {
		name = strings.ToUpper(string(e.Rune))
	} else {
		name = e.Key.String()
	}

	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}
