// Package palette is the component library the designer drags from.
//
// It knows the 20 form components, how they are grouped, and how a drag
// carries one onto the canvas:
//
//   - Component: a catalog entry with display name, category and default size
//   - Payload: the two-field drag-data contract between palette and canvas
//   - Palette: catalog lookup, fuzzy search, recent-use tracking, and the
//     drop and click-to-add paths that create elements
//
// # Usage
//
//	p := palette.New()
//	payload := palette.Payload{ComponentType: "email-input", ComponentName: "Email"}
//	data := payload.Encode()
//
//	// on drop
//	got, err := palette.ParsePayload(data)
//	pt := palette.DropPoint(clientX, clientY, artboardRect, padding)
//	id, err := p.Drop(store, got, pt)
//
// The palette never mutates the store other than through AddElement.
package palette
