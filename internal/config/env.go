package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FORMSTORM_"

type envSetter func(c *Config, v string) error

// envSettings maps a variable name, without EnvPrefix, to its setting.
var envSettings = map[string]envSetter{
	"PROJECT_NAME":            setString(func(c *Config) *string { return &c.Project.Name }),
	"PROJECT_TITLE":           setString(func(c *Config) *string { return &c.Project.Title }),
	"PROJECT_DESCRIPTION":     setString(func(c *Config) *string { return &c.Project.Description }),
	"PROJECT_LAYOUT":          setString(func(c *Config) *string { return &c.Project.Layout }),
	"CANVAS_ZOOM":             setFloat(func(c *Config) *float64 { return &c.Canvas.Zoom }),
	"CANVAS_SHOW_GRID":        setBool(func(c *Config) *bool { return &c.Canvas.ShowGrid }),
	"CANVAS_SNAP_TO_GRID":     setBool(func(c *Config) *bool { return &c.Canvas.SnapToGrid }),
	"CANVAS_GRID_SIZE":        setFloat(func(c *Config) *float64 { return &c.Canvas.GridSize }),
	"CANVAS_ARTBOARD_WIDTH":   setFloat(func(c *Config) *float64 { return &c.Canvas.ArtboardWidth }),
	"CANVAS_ARTBOARD_HEIGHT":  setFloat(func(c *Config) *float64 { return &c.Canvas.ArtboardHeight }),
	"CANVAS_ARTBOARD_PADDING": setFloat(func(c *Config) *float64 { return &c.Canvas.ArtboardPadding }),
	"HISTORY_LIMIT":           setInt(func(c *Config) *int { return &c.History.Limit }),
	"PALETTE_RECENT_SIZE":     setInt(func(c *Config) *int { return &c.Palette.RecentSize }),
	"SCRIPT_TIMEOUT":          setString(func(c *Config) *string { return &c.Script.Timeout }),
	"LOG_LEVEL":               setString(func(c *Config) *string { return &c.Log.Level }),
	"LOG_FILE":                setString(func(c *Config) *string { return &c.Log.File }),
}

// applyEnv applies FORMSTORM_* entries from environ ("KEY=value" pairs).
// Unknown FORMSTORM_ variables are ignored.
func applyEnv(cfg *Config, environ []string) error {
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		set, ok := envSettings[strings.TrimPrefix(name, EnvPrefix)]
		if !ok {
			continue
		}
		if err := set(cfg, value); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, name, value, err)
		}
	}
	return nil
}

func setString(field func(*Config) *string) envSetter {
	return func(c *Config, v string) error {
		*field(c) = v
		return nil
	}
}

func setFloat(field func(*Config) *float64) envSetter {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}
}

func setInt(field func(*Config) *int) envSetter {
	return func(c *Config, v string) error {
		i, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = i
		return nil
	}
}

// setBool accepts true/yes/on/1 and false/no/off/0.
func setBool(field func(*Config) *bool) envSetter {
	return func(c *Config, v string) error {
		switch strings.ToLower(v) {
		case "true", "yes", "on", "1":
			*field(c) = true
		case "false", "no", "off", "0":
			*field(c) = false
		default:
			return errors.New("not a boolean")
		}
		return nil
	}
}
