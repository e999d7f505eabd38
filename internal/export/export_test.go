package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/formstorm/internal/editor"
	"github.com/dshills/formstorm/internal/element"
)

func sampleSource() Source {
	els := []element.Element{
		{ID: "1", Type: element.TypeTextInput, Name: "Full  Name", Label: "Your name", Placeholder: "Enter text input...", Required: true},
		{ID: "2", Type: element.TypeEmailInput, Name: "Email 1", Required: true},
		{ID: "3", Type: element.TypeNumberInput, Name: "Age"},
		{ID: "4", Type: element.TypeSelect, Name: "Plan"},
		{ID: "5", Type: element.TypeSelect, Name: "Size", Options: []element.Option{{Label: "Small", Value: "s"}, {Label: "Large", Value: "l"}}},
		{ID: "6", Type: element.TypeCheckbox, Name: "Terms", Label: "I agree"},
		{ID: "7", Type: element.TypeHeading, Name: "Heading 1", Label: "About you"},
		{ID: "8", Type: element.TypeButton, Name: "Button 1"},
		{ID: "9", Type: element.TypeTextarea, Name: "Notes", Visible: element.Bool(false)},
	}
	src := Source{Elements: map[string]element.Element{}, ProjectName: "Signup"}
	for _, el := range els {
		src.Elements[el.ID] = el
		src.Order = append(src.Order, el.ID)
	}
	src.Order = append(src.Order, "missing")
	return src
}

func TestFieldName(t *testing.T) {
	tests := map[string]string{
		"Text Input 1": "text_input_1",
		"Full  Name":   "full_name",
		"EMAIL":        "email",
		" padded ":     "_padded_",
		"tab\tsep":     "tab_sep",
	}
	for in, want := range tests {
		if got := FieldName(in); got != want {
			t.Errorf("FieldName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJSONSchema(t *testing.T) {
	out, err := JSONSchema(sampleSource())
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	if !gjson.Valid(out) {
		t.Fatalf("invalid JSON:\n%s", out)
	}

	checks := map[string]string{
		"$schema":                          SchemaDialect,
		"title":                            "Signup",
		"type":                             "object",
		"properties.full_name.title":       "Your name",
		"properties.full_name.type":        "string",
		"properties.full_name.description": "Enter text input...",
		"properties.email_1.title":         "Email 1",
		"properties.email_1.format":        "email",
		"properties.age.type":              "number",
		"properties.terms.type":            "boolean",
		"properties.plan.enum.0":           "option1",
		"properties.plan.enum.#":           "3",
		"properties.size.enum.1":           "l",
		"required.#":                       "2",
		"required.0":                       "full_name",
		"required.1":                       "email_1",
	}
	for path, want := range checks {
		if got := gjson.Get(out, path).String(); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}

	for _, skipped := range []string{"heading_1", "button_1", "notes"} {
		if gjson.Get(out, "properties."+skipped).Exists() {
			t.Errorf("non-data or hidden element %s exported", skipped)
		}
	}

	var keys []string
	gjson.Get(out, "properties").ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	want := "full_name,email_1,age,plan,size,terms"
	if got := strings.Join(keys, ","); got != want {
		t.Errorf("property order = %s, want %s", got, want)
	}
}

func TestJSONSchemaEmpty(t *testing.T) {
	out, err := JSONSchema(Source{ProjectName: "Empty"})
	if err != nil {
		t.Fatal(err)
	}
	if !gjson.Get(out, "properties").IsObject() || !gjson.Get(out, "required").IsArray() {
		t.Errorf("empty schema missing containers:\n%s", out)
	}
}

func TestJSONSchemaDuplicateKeyReplacesField(t *testing.T) {
	src := Source{
		Elements: map[string]element.Element{
			"a": {ID: "a", Type: element.TypeEmailInput, Name: "Field", Placeholder: "Enter email..."},
			"b": {ID: "b", Type: element.TypeNumberInput, Name: "Field"},
		},
		Order: []string{"a", "b"},
	}
	out, err := JSONSchema(src)
	if err != nil {
		t.Fatal(err)
	}

	field := gjson.Get(out, "properties.field")
	if got := field.Get("type").String(); got != "number" {
		t.Errorf("type = %q, want number", got)
	}
	for _, stale := range []string{"format", "description"} {
		if field.Get(stale).Exists() {
			t.Errorf("%s carried over from the earlier field:\n%s", stale, field.Raw)
		}
	}
	if n := len(gjson.Get(out, "properties").Map()); n != 1 {
		t.Errorf("properties has %d keys, want 1", n)
	}
}

func TestJSONSchemaEscapesKeys(t *testing.T) {
	src := Source{
		Elements: map[string]element.Element{
			"a": {ID: "a", Type: element.TypeTextInput, Name: "v1.2 notes"},
		},
		Order: []string{"a"},
	}
	out, err := JSONSchema(src)
	if err != nil {
		t.Fatal(err)
	}
	if !gjson.Get(out, `properties.v1\.2_notes.type`).Exists() {
		t.Errorf("dotted key not kept literal:\n%s", out)
	}
}

func TestHTML(t *testing.T) {
	src := sampleSource()
	el := src.Elements["7"]
	el.Styles = element.Styles{element.StyleColor: "#ABC", element.StyleFontSize: 20.0}
	src.Elements["7"] = el

	out, err := HTML(src, DefaultOptions())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	for _, want := range []string{
		"<title>Signup</title>",
		"<h1>Signup</h1>",
		DefaultDescription,
		`<input type="text" name="Full  Name" class="form-input" placeholder="Enter text input..." required>`,
		`<input type="email" name="Email 1"`,
		`<input type="number" name="Age"`,
		`<option value="option1">Option 1</option>`,
		`<option value="s">Small</option>`,
		`<span>I agree</span>`,
		`<h2 style="color: #aabbcc; font-size: 20px">About you</h2>`,
		`>Submit</button>`,
		"novalidate",
		"<script>",
		"<style>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, `name="Notes"`) {
		t.Error("hidden element rendered")
	}
}

func TestHTMLOptions(t *testing.T) {
	out, err := HTML(sampleSource(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, unwanted := range []string{"<script>", "<style>", "novalidate", "form-error"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("output contains %q with options off", unwanted)
		}
	}
}

func TestHTMLEscapes(t *testing.T) {
	src := Source{
		Elements: map[string]element.Element{
			"x": {ID: "x", Type: element.TypeParagraph, Label: "<script>alert(1)</script>",
				Styles: element.Styles{element.StyleColor: "red; background: url(x)"}},
		},
		Order:       []string{"x"},
		ProjectName: "P",
	}
	out, err := HTML(src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<script>alert") {
		t.Error("label not escaped")
	}
	if strings.Contains(out, "url(") {
		t.Error("unsafe style value emitted")
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := map[string]string{
		"#FFF":    "#ffffff",
		"#6366F1": "#6366f1",
		"red":     "red",
		"":        "",
	}
	for in, want := range tests {
		if got := NormalizeColor(in); got != want {
			t.Errorf("NormalizeColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInlineStyle(t *testing.T) {
	got := InlineStyle(element.Styles{
		element.StyleBackgroundColor: "#000",
		element.StyleBorderRadius:    8.0,
		element.StyleOpacity:         0.5,
		element.StyleTextAlign:       "center",
	})
	want := "background-color: #000000; border-radius: 8px; opacity: 0.5; text-align: center"
	if string(got) != want {
		t.Errorf("InlineStyle = %q, want %q", got, want)
	}
}

func TestGenerateAndParseFormat(t *testing.T) {
	for _, name := range []string{"json-schema", "JSON", "html"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", name, err)
		}
		if _, err := Generate(f, sampleSource(), DefaultOptions()); err != nil {
			t.Errorf("Generate(%s): %v", f, err)
		}
	}
	if _, err := ParseFormat("vue"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
	if _, err := Generate("vue", Source{}, Options{}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestFromState(t *testing.T) {
	s := editor.New(editor.WithProject("Survey", "", ""))
	s.AddElement(element.Element{ID: "a", Type: element.TypeTextInput, Name: "Q1"})

	src := FromState(s.State())
	if src.ProjectName != "Survey" || len(src.Ordered()) != 1 {
		t.Errorf("FromState = %+v", src)
	}
}
