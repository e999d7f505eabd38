package editor

import (
	"github.com/google/uuid"

	"github.com/dshills/formstorm/internal/engine/history"
)

// Default configuration values.
const (
	DefaultProjectName     = "Untitled Form"
	DefaultFormTitle       = "Untitled form"
	DefaultFormDescription = "Form description"
	DefaultZoom            = 1.0
	DefaultGridSize        = 8.0
	DefaultArtboardWidth   = 720.0
	DefaultArtboardHeight  = 800.0
	DefaultArtboardPadding = 40.0
	DefaultMaxHistory      = history.DefaultMaxEntries
)

// Viewport limits.
const (
	MinZoom           = 0.1
	MaxZoom           = 5.0
	ZoomStep          = 0.1
	MinArtboardWidth  = 360.0
	MaxArtboardWidth  = 1440.0
	MinArtboardHeight = 400.0
	MaxArtboardHeight = 2000.0
)

// DuplicateOffset is how far a duplicate is shifted on each axis.
const DuplicateOffset = 20.0

// Logger is the logging surface the store writes to.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// IDGenerator returns a fresh unique id.
type IDGenerator func() string

// NewID is the default IDGenerator.
func NewID() string {
	return uuid.NewString()
}

// Option configures a Store during creation.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDGenerator sets the id source for duplicates, steps and the project.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithMaxHistory sets the number of undo snapshots kept.
func WithMaxHistory(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

// WithGridSize sets the snap grid size.
func WithGridSize(size float64) Option {
	return func(s *Store) {
		if size > 0 {
			s.gridSize = size
		}
	}
}

// WithSnapToGrid enables or disables snapping.
func WithSnapToGrid(enabled bool) Option {
	return func(s *Store) {
		s.snapToGrid = enabled
	}
}

// WithShowGrid shows or hides the canvas grid.
func WithShowGrid(show bool) Option {
	return func(s *Store) {
		s.showGrid = show
	}
}

// WithZoom sets the initial zoom, clamped to [MinZoom, MaxZoom].
func WithZoom(zoom float64) Option {
	return func(s *Store) {
		s.zoom = clampZoom(zoom)
	}
}

// WithArtboard sets the initial artboard dimensions and padding.
// Width and height are clamped; a negative padding is ignored.
func WithArtboard(width, height, padding float64) Option {
	return func(s *Store) {
		s.artboardWidth = clampArtboardWidth(width)
		s.artboardHeight = clampArtboardHeight(height)
		if padding >= 0 {
			s.artboardPadding = padding
		}
	}
}

// WithProject sets the project name and form metadata.
// Empty values keep the defaults.
func WithProject(name, title, description string) Option {
	return func(s *Store) {
		if name != "" {
			s.projectName = name
		}
		if title != "" {
			s.formTitle = title
		}
		if description != "" {
			s.formDescription = description
		}
	}
}

// WithFormLayout sets the form layout. Unknown layouts are ignored.
func WithFormLayout(layout FormLayout) Option {
	return func(s *Store) {
		if layout.Valid() {
			s.formLayout = layout
		}
	}
}
