// Package app wires formstorm together: it loads configuration, builds the
// logger, and creates the editor store with its palette, keymap and
// script runner. Callers own the Application and must Close it.
package app
