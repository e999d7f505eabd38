package keymap

import (
	"fmt"
	"strings"
)

// Context flags usable in When conditions.
const (
	FlagTextFocus    = "textFocus"
	FlagHasSelection = "hasSelection"
)

// Binding maps a key specification to an action.
type Binding struct {
	// Keys is the shortcut, for example "Ctrl+Shift+Z".
	Keys string `json:"keys"`

	// Action is the action name, for example "history.redo".
	Action string `json:"action"`

	// When must hold for the binding to fire. Empty means always.
	When string `json:"when,omitempty"`

	// Description documents the binding.
	Description string `json:"description,omitempty"`

	// Category groups bindings for display.
	Category string `json:"category,omitempty"`
}

// Context is the UI state conditions are evaluated against.
type Context struct {
	TextFocus    bool
	HasSelection bool
}

func (c Context) flag(name string) (bool, error) {
	switch name {
	case FlagTextFocus:
		return c.TextFocus, nil
	case FlagHasSelection:
		return c.HasSelection, nil
	}
	return false, fmt.Errorf("unknown condition flag %q", name)
}

// Eval reports whether the condition holds in ctx.
func Eval(when string, ctx Context) (bool, error) {
	if strings.TrimSpace(when) == "" {
		return true, nil
	}
	for _, term := range strings.Split(when, "&&") {
		term = strings.TrimSpace(term)
		negate := strings.HasPrefix(term, "!")
		name := strings.TrimSpace(strings.TrimPrefix(term, "!"))

		v, err := ctx.flag(name)
		if err != nil {
			return false, err
		}
		if v == negate {
			return false, nil
		}
	}
	return true, nil
}
