package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/formstorm/internal/editor"
	"github.com/dshills/formstorm/internal/element"
)

// ErrUnknownFormat is returned for an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an export target.
type Format string

// Export formats.
const (
	FormatJSONSchema Format = "json-schema"
	FormatHTML       Format = "html"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSONSchema, FormatHTML}

// ParseFormat resolves a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatJSONSchema, FormatHTML:
		return f, nil
	case "json", "schema", "jsonschema":
		return FormatJSONSchema, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Source is the read-only input of every exporter.
type Source struct {
	Elements        map[string]element.Element
	Order           []string
	ProjectName     string
	FormTitle       string
	FormDescription string
}

// FromState builds a Source from a store snapshot.
func FromState(st editor.State) Source {
	return Source{
		Elements:        st.Elements,
		Order:           st.ElementOrder,
		ProjectName:     st.ProjectName,
		FormTitle:       st.FormTitle,
		FormDescription: st.FormDescription,
	}
}

// Ordered returns the elements named by Order, skipping unknown ids.
func (s Source) Ordered() []element.Element {
	out := make([]element.Element, 0, len(s.Order))
	for _, id := range s.Order {
		if el, ok := s.Elements[id]; ok {
			out = append(out, el)
		}
	}
	return out
}

// Options tunes the HTML exporter.
type Options struct {
	IncludeStyles     bool
	IncludeValidation bool
}

// DefaultOptions enables styles and validation.
func DefaultOptions() Options {
	return Options{IncludeStyles: true, IncludeValidation: true}
}

// Generate renders src in format f.
func Generate(f Format, src Source, opts Options) (string, error) {
	switch f {
	case FormatJSONSchema:
		return JSONSchema(src)
	case FormatHTML:
		return HTML(src, opts)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
