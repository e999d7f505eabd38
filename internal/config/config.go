package config

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/dshills/formstorm/internal/editor"
)

// Config is the complete formstorm configuration.
type Config struct {
	Project ProjectConfig     `toml:"project"`
	Canvas  CanvasConfig      `toml:"canvas"`
	History HistoryConfig     `toml:"history"`
	Palette PaletteConfig     `toml:"palette"`
	Script  ScriptConfig      `toml:"script"`
	Log     LogConfig         `toml:"log"`
	Keys    map[string]string `toml:"keys"`
}

// ProjectConfig holds the project and form metadata a new store starts with.
type ProjectConfig struct {
	Name        string `toml:"name"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Layout      string `toml:"layout"`
}

// CanvasConfig holds the initial viewport.
type CanvasConfig struct {
	Zoom            float64 `toml:"zoom"`
	ShowGrid        bool    `toml:"show_grid"`
	SnapToGrid      bool    `toml:"snap_to_grid"`
	GridSize        float64 `toml:"grid_size"`
	ArtboardWidth   float64 `toml:"artboard_width"`
	ArtboardHeight  float64 `toml:"artboard_height"`
	ArtboardPadding float64 `toml:"artboard_padding"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	Limit int `toml:"limit"`
}

// PaletteConfig configures the component palette.
type PaletteConfig struct {
	RecentSize int `toml:"recent_size"`
}

// ScriptConfig configures the Lua runner.
type ScriptConfig struct {
	Timeout string `toml:"timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LogLevels lists the values accepted by [log] level.
var LogLevels = []string{"debug", "info", "warn", "error", "none"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:        editor.DefaultProjectName,
			Title:       editor.DefaultFormTitle,
			Description: editor.DefaultFormDescription,
			Layout:      string(editor.LayoutOneColumn),
		},
		Canvas: CanvasConfig{
			Zoom:            editor.DefaultZoom,
			ShowGrid:        true,
			SnapToGrid:      true,
			GridSize:        editor.DefaultGridSize,
			ArtboardWidth:   editor.DefaultArtboardWidth,
			ArtboardHeight:  editor.DefaultArtboardHeight,
			ArtboardPadding: editor.DefaultArtboardPadding,
		},
		History: HistoryConfig{Limit: editor.DefaultMaxHistory},
		Palette: PaletteConfig{RecentSize: 8},
		Script:  ScriptConfig{Timeout: "5s"},
		Log:     LogConfig{Level: "info"},
		Keys:    map[string]string{},
	}
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if !editor.FormLayout(c.Project.Layout).Valid() {
		errs = append(errs, invalid("project.layout", c.Project.Layout, "want one-column or two-column"))
	}
	if c.Canvas.Zoom < editor.MinZoom || c.Canvas.Zoom > editor.MaxZoom {
		errs = append(errs, invalid("canvas.zoom", c.Canvas.Zoom, "out of range"))
	}
	if c.Canvas.GridSize <= 0 {
		errs = append(errs, invalid("canvas.grid_size", c.Canvas.GridSize, "must be positive"))
	}
	if c.Canvas.ArtboardWidth < editor.MinArtboardWidth || c.Canvas.ArtboardWidth > editor.MaxArtboardWidth {
		errs = append(errs, invalid("canvas.artboard_width", c.Canvas.ArtboardWidth, "out of range"))
	}
	if c.Canvas.ArtboardHeight < editor.MinArtboardHeight || c.Canvas.ArtboardHeight > editor.MaxArtboardHeight {
		errs = append(errs, invalid("canvas.artboard_height", c.Canvas.ArtboardHeight, "out of range"))
	}
	if c.Canvas.ArtboardPadding < 0 {
		errs = append(errs, invalid("canvas.artboard_padding", c.Canvas.ArtboardPadding, "must not be negative"))
	}
	if c.History.Limit <= 0 {
		errs = append(errs, invalid("history.limit", c.History.Limit, "must be positive"))
	}
	if c.Palette.RecentSize < 0 {
		errs = append(errs, invalid("palette.recent_size", c.Palette.RecentSize, "must not be negative"))
	}
	if _, err := c.ScriptTimeout(); err != nil {
		errs = append(errs, invalid("script.timeout", c.Script.Timeout, err.Error()))
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, invalid("log.level", c.Log.Level, "want one of "+strings.Join(LogLevels, ", ")))
	}

	return errors.Join(errs...)
}

// ScriptTimeout parses [script] timeout. An empty value means no timeout.
func (c *Config) ScriptTimeout() (time.Duration, error) {
	if c.Script.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Script.Timeout)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, errors.New("must not be negative")
	}
	return d, nil
}

// EditorOptions converts the configuration into store options.
func (c *Config) EditorOptions() []editor.Option {
	return []editor.Option{
		editor.WithProject(c.Project.Name, c.Project.Title, c.Project.Description),
		editor.WithFormLayout(editor.FormLayout(c.Project.Layout)),
		editor.WithZoom(c.Canvas.Zoom),
		editor.WithShowGrid(c.Canvas.ShowGrid),
		editor.WithSnapToGrid(c.Canvas.SnapToGrid),
		editor.WithGridSize(c.Canvas.GridSize),
		editor.WithArtboard(c.Canvas.ArtboardWidth, c.Canvas.ArtboardHeight, c.Canvas.ArtboardPadding),
		editor.WithMaxHistory(c.History.Limit),
	}
}
