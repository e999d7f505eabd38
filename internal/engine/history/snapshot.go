package history

import (
	"maps"
	"slices"

	"github.com/tiendc/go-deepcopy"

	"github.com/dshills/formstorm/internal/element"
)

// Snapshot is a copy of the undoable part of a document.
type Snapshot struct {
	// Elements maps element id to element.
	Elements map[string]element.Element

	// Order is the global element order.
	Order []string

	// Pages maps page id to that page's element ids at capture time.
	Pages map[string][]string
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	var out Snapshot
	if err := deepcopy.Copy(&out, &s); err != nil {
		// deepcopy rejects exotic style values such as funcs or channels.
		return s.cloneByElement()
	}
	if out.Elements == nil {
		out.Elements = make(map[string]element.Element)
	}
	return out
}

func (s Snapshot) cloneByElement() Snapshot {
	out := Snapshot{
		Elements: make(map[string]element.Element, len(s.Elements)),
		Order:    slices.Clone(s.Order),
	}
	for id, el := range s.Elements {
		out.Elements[id] = el.Clone()
	}
	if s.Pages != nil {
		out.Pages = make(map[string][]string, len(s.Pages))
		for id, ids := range s.Pages {
			out.Pages[id] = slices.Clone(ids)
		}
	}
	return out
}

// Len returns the number of elements in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Elements)
}

// IDs returns the element ids, sorted.
func (s Snapshot) IDs() []string {
	return slices.Sorted(maps.Keys(s.Elements))
}
