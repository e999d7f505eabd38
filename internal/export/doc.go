// Package export turns a form document into code.
//
// Exporters are read-only: they take a Source built from the editor state
// and return text. Two formats are built in:
//
//   - FormatJSONSchema: a draft 2020-12 JSON Schema of the data-bearing fields
//   - FormatHTML: a standalone HTML page with optional CSS and validation
//
// Generate dispatches on Format.
package export
