package palette

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/formstorm/internal/element"
	"github.com/dshills/formstorm/internal/geometry"
)

// Click-to-add placement: new elements cascade down from AddOrigin by
// AddStagger per existing element.
const (
	AddOriginX = 60.0
	AddOriginY = 60.0
	AddStagger = 20.0
)

// Store is the part of the editor store the palette needs.
type Store interface {
	AddElement(el element.Element)
	CountType(t element.Type) int
	ElementOrder() []string
	SnapToGrid() bool
	GridSize() float64
}

// Palette is the component library.
type Palette struct {
	components []Component
	byType     map[element.Type]Component
	recent     *Recent
	newID      func() string
}

// Option configures a Palette.
type Option func(*Palette)

// WithIDGenerator sets the id source for new elements.
func WithIDGenerator(gen func() string) Option {
	return func(p *Palette) {
		if gen != nil {
			p.newID = gen
		}
	}
}

// WithRecentSize sets how many recently used components are remembered.
func WithRecentSize(n int) Option {
	return func(p *Palette) {
		p.recent = NewRecent(n)
	}
}

// New creates a palette holding the full component catalog.
func New(opts ...Option) *Palette {
	p := &Palette{
		components: catalog,
		byType:     make(map[element.Type]Component, len(catalog)),
		recent:     NewRecent(0),
		newID:      uuid.NewString,
	}
	for _, c := range catalog {
		p.byType[c.Type] = c
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Components returns the catalog in panel order.
func (p *Palette) Components() []Component {
	out := make([]Component, len(p.components))
	copy(out, p.components)
	return out
}

// Lookup returns the catalog entry for t.
func (p *Palette) Lookup(t element.Type) (Component, bool) {
	c, ok := p.byType[t]
	return c, ok
}

// Recent returns the recently used component tracker.
func (p *Palette) Recent() *Recent {
	return p.recent
}

// DropPoint converts a drop's client coordinates into document
// coordinates: relative to the artboard's top-left, minus its padding.
// Pan and zoom are not applied.
func DropPoint(clientX, clientY float64, artboard geometry.Rect, padding float64) geometry.Point {
	return geometry.Point{
		X: clientX - artboard.Left - padding,
		Y: clientY - artboard.Top - padding,
	}
}

// NewElement builds a fresh element of type t named after the display
// name with an occurrence suffix: existing is how many elements of t the
// document already holds.
func NewElement(id string, t element.Type, name string, pos geometry.Point, existing int) element.Element {
	tr, _ := element.TraitsOf(t)
	el := element.Element{
		ID:       id,
		Type:     t,
		Name:     fmt.Sprintf("%s %d", name, existing+1),
		Label:    name,
		Position: pos,
		Size:     geometry.Size{Width: tr.Width, Height: tr.Height},
		Styles:   element.Styles{},
		Visible:  element.Bool(true),
	}
	if strings.Contains(string(t), "input") || t == element.TypeTextarea {
		el.Placeholder = "Enter " + strings.ToLower(name) + "..."
	}
	return el
}

// Drop adds the dragged component at pt, snapped when the store snaps.
// It returns the new element id.
func (p *Palette) Drop(s Store, payload Payload, pt geometry.Point) (string, error) {
	if payload.ComponentType == "" || payload.ComponentName == "" {
		return "", ErrInvalidPayload
	}
	if !payload.ComponentType.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownComponent, payload.ComponentType)
	}
	if s.SnapToGrid() {
		pt = geometry.SnapPoint(pt, s.GridSize())
	}
	return p.place(s, payload.ComponentType, payload.ComponentName, pt), nil
}

// Add places a component of type t below the existing elements, the way
// clicking a library entry does. It returns the new element id.
func (p *Palette) Add(s Store, t element.Type) (string, error) {
	c, ok := p.Lookup(t)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownComponent, t)
	}
	pt := geometry.Point{
		X: AddOriginX,
		Y: AddOriginY + float64(len(s.ElementOrder()))*AddStagger,
	}
	return p.place(s, c.Type, c.Name, pt), nil
}

func (p *Palette) place(s Store, t element.Type, name string, pt geometry.Point) string {
	el := NewElement(p.newID(), t, name, pt, s.CountType(t))
	s.AddElement(el)
	p.recent.Add(t)
	return el.ID
}
