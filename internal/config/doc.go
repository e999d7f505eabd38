// Package config loads editor defaults from TOML and the environment.
//
// Sources are applied in order, later ones winning:
//
//  1. Built-in defaults (Default)
//  2. The TOML file, usually $XDG_CONFIG_HOME/formstorm/config.toml
//  3. FORMSTORM_* environment variables
//
// A missing file is not an error. The merged result is validated before it
// is returned.
//
// Example file:
//
//	[project]
//	name = "Signup"
//	layout = "two-column"
//
//	[canvas]
//	grid_size = 16
//	snap_to_grid = true
//
//	[history]
//	limit = 100
//
//	[log]
//	level = "debug"
//
//	[keys]
//	"Ctrl+K" = "view.zoomIn"
//	"Ctrl+P" = ""
//
// Environment variables name a section and key in upper case, for example
// FORMSTORM_CANVAS_GRID_SIZE=16 or FORMSTORM_LOG_LEVEL=warn.
package config
