package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dshills/formstorm/internal/element"
)

// DefaultDescription is shown under the heading when the form has none.
const DefaultDescription = "Fill out the form below to get in touch."

// field is the template view of one element.
type field struct {
	Kind        string
	InputType   string
	Name        string
	Label       string
	Placeholder string
	HelpText    string
	Required    bool
	Options     []element.Option
	Style       template.CSS
}

type page struct {
	Title       string
	Heading     string
	Description string
	Fields      []field
	Styles      bool
	Validation  bool
}

var htmlTemplate = template.Must(template.New("form").Parse(formTemplate))

// HTML renders src as a standalone page. Hidden elements and layout-only
// components without an HTML form are skipped.
func HTML(src Source, opts Options) (string, error) {
	p := page{
		Title:       src.ProjectName,
		Heading:     src.FormTitle,
		Description: src.FormDescription,
		Styles:      opts.IncludeStyles,
		Validation:  opts.IncludeValidation,
	}
	if p.Heading == "" {
		p.Heading = src.ProjectName
	}
	if p.Description == "" {
		p.Description = DefaultDescription
	}

	for _, el := range src.Ordered() {
		if !el.IsVisible() {
			continue
		}
		if f, ok := toField(el, opts.IncludeStyles); ok {
			p.Fields = append(p.Fields, f)
		}
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}

func toField(el element.Element, styles bool) (field, bool) {
	f := field{
		Name:        el.Name,
		Label:       el.Label,
		Placeholder: el.Placeholder,
		HelpText:    el.HelpText,
		Required:    el.Required,
		Options:     el.Options,
	}
	if styles {
		f.Style = InlineStyle(el.Styles)
	}

	switch el.Type {
	case element.TypeTextInput, element.TypeEmailInput, element.TypePhoneInput, element.TypeNumberInput:
		f.Kind = "input"
		f.InputType = map[element.Type]string{
			element.TypeTextInput:   "text",
			element.TypeEmailInput:  "email",
			element.TypePhoneInput:  "tel",
			element.TypeNumberInput: "number",
		}[el.Type]
		f.Label = orDefault(el.Label, el.Name)
	case element.TypeTextarea:
		f.Kind = "textarea"
		f.Label = orDefault(el.Label, el.Name)
	case element.TypeSelect:
		f.Kind = "select"
		f.Label = orDefault(el.Label, el.Name)
		if len(f.Options) == 0 {
			f.Options = []element.Option{
				{Label: "Option 1", Value: "option1"},
				{Label: "Option 2", Value: "option2"},
				{Label: "Option 3", Value: "option3"},
			}
		}
	case element.TypeCheckbox:
		f.Kind = "checkbox"
		f.Label = orDefault(el.Label, "Checkbox option")
	case element.TypeButton:
		f.Kind = "button"
		f.Label = orDefault(el.Label, "Submit")
	case element.TypeHeading:
		f.Kind = "heading"
		f.Label = orDefault(el.Label, "Heading")
	case element.TypeParagraph:
		f.Kind = "paragraph"
		f.Label = orDefault(el.Label, "Paragraph text")
	case element.TypeDivider:
		f.Kind = "divider"
	default:
		return field{}, false
	}
	return f, true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

const formTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
{{- if .Styles}}
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #0f0f1a; color: #f0f0f5; line-height: 1.5; }
    .form-container { max-width: 480px; margin: 40px auto; padding: 40px; background: #1a1a2e; border-radius: 12px; border: 1px solid #2a2a3e; }
    .form-header { margin-bottom: 32px; }
    .form-header h1 { font-size: 24px; font-weight: 600; margin-bottom: 8px; }
    .form-header p { color: #888; font-size: 14px; }
    .form-group { margin-bottom: 20px; }
    .form-label { display: block; font-size: 14px; font-weight: 500; margin-bottom: 6px; }
    .form-label .required { color: #ef4444; margin-left: 4px; }
    .form-input { width: 100%; padding: 10px 14px; font-size: 14px; background: #252538; border: 1px solid #3a3a4e; border-radius: 8px; color: #f0f0f5; }
    .form-input:focus { outline: none; border-color: #6366f1; }
    .form-textarea { min-height: 100px; resize: vertical; }
    .form-checkbox-group { display: flex; align-items: center; gap: 8px; }
    .form-checkbox { width: 18px; height: 18px; accent-color: #6366f1; }
    .form-button { width: 100%; padding: 12px 24px; font-size: 14px; font-weight: 500; color: white; background: #6366f1; border: none; border-radius: 8px; cursor: pointer; }
    .form-help { font-size: 12px; color: #666; margin-top: 4px; }
    .form-error { font-size: 12px; color: #ef4444; margin-top: 4px; display: none; }
    .form-input.error { border-color: #ef4444; }
    .form-input.error + .form-error { display: block; }
  </style>
{{- end}}
</head>
<body>
  <div class="form-container">
    <div class="form-header">
      <h1>{{.Heading}}</h1>
      <p>{{.Description}}</p>
    </div>

    <form id="form"{{if .Validation}} novalidate{{end}}>
{{- range .Fields}}
{{- if eq .Kind "input"}}
      <div class="form-group"{{with .Style}} style="{{.}}"{{end}}>
        <label class="form-label">{{.Label}}{{if .Required}}<span class="required">*</span>{{end}}</label>
        <input type="{{.InputType}}" name="{{.Name}}" class="form-input" placeholder="{{.Placeholder}}"{{if .Required}} required{{end}}>
        {{- with .HelpText}}
        <p class="form-help">{{.}}</p>
        {{- end}}
        {{- if $.Validation}}
        <p class="form-error">This field is required</p>
        {{- end}}
      </div>
{{- else if eq .Kind "textarea"}}
      <div class="form-group"{{with .Style}} style="{{.}}"{{end}}>
        <label class="form-label">{{.Label}}{{if .Required}}<span class="required">*</span>{{end}}</label>
        <textarea name="{{.Name}}" class="form-input form-textarea" placeholder="{{.Placeholder}}"{{if .Required}} required{{end}}></textarea>
        {{- with .HelpText}}
        <p class="form-help">{{.}}</p>
        {{- end}}
      </div>
{{- else if eq .Kind "select"}}
      <div class="form-group"{{with .Style}} style="{{.}}"{{end}}>
        <label class="form-label">{{.Label}}{{if .Required}}<span class="required">*</span>{{end}}</label>
        <select name="{{.Name}}" class="form-input form-select"{{if .Required}} required{{end}}>
          <option value="">Select an option</option>
          {{- range .Options}}
          <option value="{{.Value}}">{{.Label}}</option>
          {{- end}}
        </select>
      </div>
{{- else if eq .Kind "checkbox"}}
      <div class="form-group"{{with .Style}} style="{{.}}"{{end}}>
        <label class="form-checkbox-group">
          <input type="checkbox" name="{{.Name}}" class="form-checkbox"{{if .Required}} required{{end}}>
          <span>{{.Label}}</span>
        </label>
      </div>
{{- else if eq .Kind "button"}}
      <div class="form-group">
        <button type="submit" class="form-button"{{with .Style}} style="{{.}}"{{end}}>{{.Label}}</button>
      </div>
{{- else if eq .Kind "heading"}}
      <h2{{with .Style}} style="{{.}}"{{end}}>{{.Label}}</h2>
{{- else if eq .Kind "paragraph"}}
      <p{{with .Style}} style="{{.}}"{{end}}>{{.Label}}</p>
{{- else if eq .Kind "divider"}}
      <hr>
{{- end}}
{{- end}}
    </form>
  </div>
{{- if .Validation}}
  <script>
    const form = document.getElementById('form');
    form.addEventListener('submit', function (e) {
      e.preventDefault();
      let valid = true;
      form.querySelectorAll('.form-input').forEach(function (input) { input.classList.remove('error'); });
      form.querySelectorAll('[required]').forEach(function (input) {
        if (!input.value.trim()) { input.classList.add('error'); valid = false; }
      });
      form.querySelectorAll('input[type="email"]').forEach(function (input) {
        if (input.value && !/^[^\s@]+@[^\s@]+\.[^\s@]+$/.test(input.value)) { input.classList.add('error'); valid = false; }
      });
      if (valid) { form.reset(); }
    });
  </script>
{{- end}}
</body>
</html>
`
