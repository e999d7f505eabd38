package keymap

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/formstorm/internal/input/key"
)

// ErrUnknownAction is returned when a binding names an action the keymap
// cannot run.
var ErrUnknownAction = errors.New("unknown action")

// Target is the set of store actions shortcuts can trigger.
type Target interface {
	SelectedIDs() []string
	DeleteElement(id string)
	DuplicateElement(id string) string
	ClearSelection()
	Undo()
	Redo()
	ZoomIn()
	ZoomOut()
	ResetZoom()
	TogglePreviewMode()
}

// Keymap resolves key events to actions and runs them.
type Keymap struct {
	mu       sync.RWMutex
	target   Target
	bindings []Binding
	byEvent  map[key.Event][]int
}

// New creates an empty keymap driving target.
func New(target Target) *Keymap {
	return &Keymap{
		target:  target,
		byEvent: make(map[key.Event][]int),
	}
}

// NewDefault creates a keymap with DefaultBindings.
func NewDefault(target Target) *Keymap {
	km := New(target)
	for _, b := range DefaultBindings() {
		// Defaults are static and covered by tests.
		_ = km.Bind(b)
	}
	return km
}

// Bind adds a binding. Later bindings for the same keys take precedence.
func (k *Keymap) Bind(b Binding) error {
	if b.Action == "" {
		return fmt.Errorf("binding %q: empty action", b.Keys)
	}
	if _, ok := actions[b.Action]; !ok {
		return fmt.Errorf("binding %q: %w: %s", b.Keys, ErrUnknownAction, b.Action)
	}
	if _, err := Eval(b.When, Context{}); err != nil {
		return fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", b.Keys, err)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	k.bindings = append(k.bindings, b)
	k.byEvent[ev] = append(k.byEvent[ev], len(k.bindings)-1)
	return nil
}

// Unbind removes every binding for keys and reports whether any existed.
func (k *Keymap) Unbind(keys string) bool {
	ev, err := key.Parse(keys)
	if err != nil {
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	_, ok := k.byEvent[ev]
	delete(k.byEvent, ev)
	return ok
}

// Bindings returns the active bindings in registration order.
func (k *Keymap) Bindings() []Binding {
	k.mu.RLock()
	defer k.mu.RUnlock()

	live := make(map[int]bool)
	for _, idxs := range k.byEvent {
		for _, i := range idxs {
			live[i] = true
		}
	}
	out := make([]Binding, 0, len(live))
	for i, b := range k.bindings {
		if live[i] {
			out = append(out, b)
		}
	}
	return out
}

// Lookup returns the binding ev triggers in ctx.
func (k *Keymap) Lookup(ev key.Event, ctx Context) (Binding, bool) {
	ev = ev.Normalize()

	k.mu.RLock()
	defer k.mu.RUnlock()

	if b, ok := k.lookupLocked(ev, ctx); ok {
		return b, true
	}
	if ev.Modifiers.HasShift() {
		ev.Modifiers = ev.Modifiers.Without(key.ModShift)
		return k.lookupLocked(ev, ctx)
	}
	return Binding{}, false
}

func (k *Keymap) lookupLocked(ev key.Event, ctx Context) (Binding, bool) {
	idxs := k.byEvent[ev]
	for i := len(idxs) - 1; i >= 0; i-- {
		b := k.bindings[idxs[i]]
		if ok, _ := Eval(b.When, ctx); ok {
			return b, true
		}
	}
	return Binding{}, false
}

// Handle runs the action bound to ev, if any, and reports whether one ran.
// focusInTextField tells the keymap a text input owns the keyboard.
func (k *Keymap) Handle(ev key.Event, focusInTextField bool) bool {
	ctx := Context{
		TextFocus:    focusInTextField,
		HasSelection: len(k.target.SelectedIDs()) > 0,
	}
	b, ok := k.Lookup(ev, ctx)
	if !ok {
		return false
	}
	return k.Execute(b.Action) == nil
}

// Execute runs the named action against the target.
func (k *Keymap) Execute(action string) error {
	fn, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	fn(k.target)
	return nil
}
