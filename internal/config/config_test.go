package config

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/dshills/formstorm/internal/editor"
)

func newTestLoader(files fstest.MapFS, env ...string) *Loader {
	return NewLoader(
		WithFileSystem(files),
		WithEnviron(func() []string { return env }),
	)
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	files := fstest.MapFS{
		"formstorm/config.toml": {Data: []byte(`
[project]
name = "Signup"
layout = "two-column"

[canvas]
grid_size = 16
snap_to_grid = false
artboard_width = 1024

[history]
limit = 10

[log]
level = "debug"

[keys]
"Ctrl+K" = "view.zoomIn"
"Ctrl+P" = ""
`)},
	}

	cfg, err := newTestLoader(files).LoadFrom("formstorm/config.toml")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Project.Name != "Signup" || cfg.Project.Layout != "two-column" {
		t.Errorf("project = %+v", cfg.Project)
	}
	if cfg.Project.Title != editor.DefaultFormTitle {
		t.Errorf("unset title = %q, want default", cfg.Project.Title)
	}
	if cfg.Canvas.GridSize != 16 || cfg.Canvas.SnapToGrid || cfg.Canvas.ArtboardWidth != 1024 {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
	if !cfg.Canvas.ShowGrid {
		t.Error("unset show_grid should keep default true")
	}
	if cfg.History.Limit != 10 || cfg.Log.Level != "debug" {
		t.Errorf("history/log = %+v %+v", cfg.History, cfg.Log)
	}
	if cfg.Keys["Ctrl+K"] != "view.zoomIn" {
		t.Errorf("keys = %v", cfg.Keys)
	}
	if v, ok := cfg.Keys["Ctrl+P"]; !ok || v != "" {
		t.Errorf("unbind entry lost: %v", cfg.Keys)
	}
}

func TestMissingFileUsesDefaults(t *testing.T) {
	cfg, err := newTestLoader(fstest.MapFS{}).LoadFrom("nope.toml")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Canvas.GridSize != editor.DefaultGridSize || cfg.Keys == nil {
		t.Errorf("cfg = %+v", cfg)
	}

	cfg, err = newTestLoader(fstest.MapFS{}).LoadFrom("")
	if err != nil || cfg.History.Limit != editor.DefaultMaxHistory {
		t.Errorf("empty path: cfg = %+v, err = %v", cfg, err)
	}
}

func TestEnvOverrides(t *testing.T) {
	files := fstest.MapFS{
		"c.toml": {Data: []byte("[canvas]\ngrid_size = 16\n")},
	}
	cfg, err := newTestLoader(files,
		"FORMSTORM_CANVAS_GRID_SIZE=4",
		"FORMSTORM_CANVAS_SHOW_GRID=off",
		"FORMSTORM_HISTORY_LIMIT=3",
		"FORMSTORM_LOG_LEVEL=warn",
		"FORMSTORM_UNKNOWN=1",
		"HOME=/root",
	).LoadFrom("c.toml")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Canvas.GridSize != 4 {
		t.Errorf("grid size = %v, want env to win over file", cfg.Canvas.GridSize)
	}
	if cfg.Canvas.ShowGrid {
		t.Error("show_grid should be off")
	}
	if cfg.History.Limit != 3 || cfg.Log.Level != "warn" {
		t.Errorf("history/log = %+v %+v", cfg.History, cfg.Log)
	}
}

func TestEnvErrors(t *testing.T) {
	tests := []string{
		"FORMSTORM_CANVAS_GRID_SIZE=big",
		"FORMSTORM_HISTORY_LIMIT=1.5",
		"FORMSTORM_CANVAS_SNAP_TO_GRID=maybe",
	}
	for _, kv := range tests {
		t.Run(kv, func(t *testing.T) {
			_, err := newTestLoader(fstest.MapFS{}, kv).LoadFrom("")
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("err = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantLine int
	}{
		{"syntax", "[canvas]\ngrid_size = = 3\n", 2},
		{"wrong type", "[canvas]\ngrid_size = \"big\"\n", 0},
		{"unknown key", "[canvas]\ngird_size = 3\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := fstest.MapFS{"c.toml": {Data: []byte(tt.data)}}
			_, err := newTestLoader(files).LoadFrom("c.toml")
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if perr.Path != "c.toml" {
				t.Errorf("path = %q", perr.Path)
			}
			if tt.wantLine > 0 && perr.Line != tt.wantLine {
				t.Errorf("line = %d, want %d (%v)", perr.Line, tt.wantLine, perr)
			}
			if perr.Unwrap() == nil {
				t.Error("Unwrap = nil")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"layout", func(c *Config) { c.Project.Layout = "three-column" }, "project.layout"},
		{"zoom", func(c *Config) { c.Canvas.Zoom = 9 }, "canvas.zoom"},
		{"grid", func(c *Config) { c.Canvas.GridSize = 0 }, "canvas.grid_size"},
		{"width", func(c *Config) { c.Canvas.ArtboardWidth = 100 }, "canvas.artboard_width"},
		{"height", func(c *Config) { c.Canvas.ArtboardHeight = 5000 }, "canvas.artboard_height"},
		{"padding", func(c *Config) { c.Canvas.ArtboardPadding = -1 }, "canvas.artboard_padding"},
		{"history", func(c *Config) { c.History.Limit = 0 }, "history.limit"},
		{"recent", func(c *Config) { c.Palette.RecentSize = -2 }, "palette.recent_size"},
		{"timeout", func(c *Config) { c.Script.Timeout = "soon" }, "script.timeout"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("err = %v, want ErrInvalidValue", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("err = %v, want mention of %s", err, tt.field)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Canvas.GridSize = -1
	cfg.History.Limit = -1
	err := cfg.Validate()
	if !strings.Contains(err.Error(), "canvas.grid_size") || !strings.Contains(err.Error(), "history.limit") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadFromReader(t *testing.T) {
	cfg, err := NewLoader(WithEnviron(func() []string { return nil })).
		LoadFromReader(strings.NewReader("[script]\ntimeout = \"250ms\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	d, err := cfg.ScriptTimeout()
	if err != nil || d != 250*time.Millisecond {
		t.Errorf("timeout = %v, %v", d, err)
	}
}

func TestScriptTimeoutEmpty(t *testing.T) {
	cfg := Default()
	cfg.Script.Timeout = ""
	if d, err := cfg.ScriptTimeout(); d != 0 || err != nil {
		t.Errorf("ScriptTimeout = %v, %v", d, err)
	}
}

func TestEditorOptions(t *testing.T) {
	cfg := Default()
	cfg.Project.Name = "Survey"
	cfg.Project.Layout = "two-column"
	cfg.Canvas.GridSize = 12
	cfg.Canvas.SnapToGrid = false
	cfg.Canvas.Zoom = 2
	cfg.Canvas.ArtboardWidth = 1000

	store := editor.New(cfg.EditorOptions()...)
	st := store.State()
	if st.ProjectName != "Survey" || st.FormLayout != editor.LayoutTwoColumn {
		t.Errorf("project = %q %q", st.ProjectName, st.FormLayout)
	}
	if store.GridSize() != 12 || store.SnapToGrid() || store.Zoom() != 2 {
		t.Errorf("canvas = %v %v %v", store.GridSize(), store.SnapToGrid(), store.Zoom())
	}
	if store.Artboard().Width != 1000 {
		t.Errorf("artboard = %+v", store.Artboard())
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if p := DefaultPath(); p != "" && !strings.HasSuffix(p, "formstorm/"+FileName) {
		t.Errorf("DefaultPath = %q", p)
	}
}
