package export

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/formstorm/internal/element"
)

// SchemaDialect is the $schema URI of generated schemas.
const SchemaDialect = "https://json-schema.org/draft/2020-12/schema"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	lower         = cases.Lower(language.Und)

	// placeholderEnum is used for selects without configured options.
	placeholderEnum = []string{"option1", "option2", "option3"}
)

// FieldName derives a property key from an element name: whitespace runs
// become "_" and the result is lower-cased.
func FieldName(name string) string {
	return lower.String(whitespaceRun.ReplaceAllString(name, "_"))
}

// JSONSchema returns an indented JSON Schema describing the visible
// data-bearing fields of src in order. A later field whose key repeats an
// earlier one replaces it whole.
func JSONSchema(src Source) (string, error) {
	doc := `{}`
	var err error

	set := func(path string, v any) {
		if err == nil {
			doc, err = sjson.Set(doc, path, v)
		}
	}
	setRaw := func(path, raw string) {
		if err == nil {
			doc, err = sjson.SetRaw(doc, path, raw)
		}
	}

	set("$schema", SchemaDialect)
	set("title", src.ProjectName)
	set("type", "object")
	setRaw("properties", `{}`)
	setRaw("required", `[]`)

	var required []string
	for _, el := range src.Ordered() {
		tr, _ := element.TraitsOf(el.Type)
		if !tr.DataBearing || !el.IsVisible() {
			continue
		}

		field, ferr := fieldSchema(el)
		if ferr != nil {
			return "", fmt.Errorf("building field %q: %w", el.Name, ferr)
		}

		name := FieldName(el.Name)
		setRaw("properties."+escapePath(name), field)
		if el.Required && !slices.Contains(required, name) {
			required = append(required, name)
			set("required.-1", name)
		}
	}
	if err != nil {
		return "", fmt.Errorf("building schema: %w", err)
	}

	return gjson.Get(doc, "@pretty").Raw, nil
}

// fieldSchema returns the property schema for one element as raw JSON.
func fieldSchema(el element.Element) (string, error) {
	field := `{}`
	var err error
	set := func(path string, v any) {
		if err == nil {
			field, err = sjson.Set(field, path, v)
		}
	}

	title := el.Label
	if title == "" {
		title = el.Name
	}
	set("title", title)

	switch el.Type {
	case element.TypeNumberInput:
		set("type", "number")
	case element.TypeCheckbox:
		set("type", "boolean")
	default:
		set("type", "string")
	}
	switch el.Type {
	case element.TypeEmailInput:
		set("format", "email")
	case element.TypeSelect:
		set("enum", enumValues(el.Options))
	}

	if el.Placeholder != "" {
		set("description", el.Placeholder)
	}
	return field, err
}

func enumValues(opts []element.Option) []string {
	if len(opts) == 0 {
		return placeholderEnum
	}
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

// escapePath escapes sjson path metacharacters in a single key.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
