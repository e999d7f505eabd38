package editor

import (
	"sync"

	"github.com/dshills/formstorm/internal/element"
	"github.com/dshills/formstorm/internal/engine/history"
	"github.com/dshills/formstorm/internal/geometry"
	"github.com/dshills/formstorm/internal/notify"
)

// Store is the form editor's state container.
//
// All operations are safe for concurrent use; the UI is expected to call
// them from one event loop.
type Store struct {
	mu sync.RWMutex

	// Project
	projectName     string
	projectID       string
	formTitle       string
	formDescription string
	formLayout      FormLayout

	// Document
	elements map[string]element.Element
	order    []string

	// Steps
	steps       []Page
	currentStep int

	// Selection
	selected []string
	hovered  string

	// Canvas
	zoom            float64
	pan             geometry.Point
	showGrid        bool
	snapToGrid      bool
	gridSize        float64
	artboardWidth   float64
	artboardHeight  float64
	artboardPadding float64

	// UI
	leftTab  LeftPanelTab
	rightTab RightPanelTab
	preview  bool

	// Collaborators
	history    *history.History
	maxHistory int
	notifier   *notify.Notifier
	log        Logger
	newID      IDGenerator
}

// New creates a Store with one empty step and the given options.
func New(opts ...Option) *Store {
	s := &Store{
		projectName:     DefaultProjectName,
		formTitle:       DefaultFormTitle,
		formDescription: DefaultFormDescription,
		formLayout:      LayoutOneColumn,
		elements:        make(map[string]element.Element),
		zoom:            DefaultZoom,
		showGrid:        true,
		snapToGrid:      true,
		gridSize:        DefaultGridSize,
		artboardWidth:   DefaultArtboardWidth,
		artboardHeight:  DefaultArtboardHeight,
		artboardPadding: DefaultArtboardPadding,
		leftTab:         LeftTabComponents,
		rightTab:        RightTabDesign,
		maxHistory:      DefaultMaxHistory,
		notifier:        notify.New(),
		log:             nopLogger{},
		newID:           NewID,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.projectID = s.newID()
	s.steps = []Page{{ID: s.newID(), Name: stepName(1)}}
	s.history = history.NewHistory(s.maxHistory)

	return s
}

// Subscribe registers an observer for every change.
func (s *Store) Subscribe(observer notify.Observer) *notify.Subscription {
	return s.notifier.Subscribe(observer)
}

// SubscribeAction registers an observer for changes made by one action.
func (s *Store) SubscribeAction(action notify.Action, observer notify.Observer) *notify.Subscription {
	return s.notifier.SubscribeAction(action, observer)
}

// publish notifies observers. Must be called without holding s.mu.
func (s *Store) publish(action notify.Action, ids ...string) {
	s.notifier.Notify(notify.Change{Action: action, IDs: ids})
}

// Close detaches all observers.
func (s *Store) Close() {
	s.notifier.Close()
}
