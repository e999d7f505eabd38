package keymap

import (
	"encoding/json"
	"fmt"
	"io"
)

type keymapFile struct {
	Bindings []Binding `json:"bindings"`
	Unbind   []string  `json:"unbind,omitempty"`
}

// LoadReader applies user overrides from JSON:
//
//	{"unbind": ["Ctrl+P"], "bindings": [{"keys": "Ctrl+Y", "action": "history.redo"}]}
//
// Unbinds run first. Loading stops at the first invalid binding.
func (k *Keymap) LoadReader(r io.Reader) error {
	var f keymapFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return fmt.Errorf("decoding keymap: %w", err)
	}
	for _, keys := range f.Unbind {
		k.Unbind(keys)
	}
	for _, b := range f.Bindings {
		if err := k.Bind(b); err != nil {
			return err
		}
	}
	return nil
}

// ApplyOverrides binds each shortcut in overrides to its action, the form
// the [keys] config section takes. An empty action unbinds the shortcut.
func (k *Keymap) ApplyOverrides(overrides map[string]string) error {
	for keys, action := range overrides {
		k.Unbind(keys)
		if action == "" {
			continue
		}
		if err := k.Bind(Binding{Keys: keys, Action: action, Category: "User"}); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON writes the active bindings in the LoadReader format.
func (k *Keymap) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(keymapFile{Bindings: k.Bindings()}, "", "  ")
}
