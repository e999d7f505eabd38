package palette

import (
	"errors"
	"fmt"

	"github.com/dshills/formstorm/internal/element"
)

// Drag-data keys.
const (
	KeyComponentType = "componentType"
	KeyComponentName = "componentName"
)

// Errors returned while decoding drag data.
var (
	ErrInvalidPayload   = errors.New("invalid drag payload")
	ErrUnknownComponent = errors.New("unknown component type")
)

// Payload is what a palette drag carries to the canvas.
type Payload struct {
	ComponentType element.Type
	ComponentName string
}

// Encode returns the drag-data entries for p.
func (p Payload) Encode() map[string]string {
	return map[string]string{
		KeyComponentType: string(p.ComponentType),
		KeyComponentName: p.ComponentName,
	}
}

// ParsePayload decodes drag data. Both keys must be present and non-empty
// and the type must be a known component.
func ParsePayload(data map[string]string) (Payload, error) {
	typ := data[KeyComponentType]
	name := data[KeyComponentName]
	if typ == "" || name == "" {
		return Payload{}, fmt.Errorf("%w: missing %s or %s", ErrInvalidPayload, KeyComponentType, KeyComponentName)
	}
	t := element.Type(typ)
	if !t.Valid() {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownComponent, typ)
	}
	return Payload{ComponentType: t, ComponentName: name}, nil
}
