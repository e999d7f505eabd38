package keymap

// Action names.
const (
	ActionDeleteSelection    = "selection.delete"
	ActionDuplicateSelection = "selection.duplicate"
	ActionClearSelection     = "selection.clear"
	ActionUndo               = "history.undo"
	ActionRedo               = "history.redo"
	ActionZoomIn             = "view.zoomIn"
	ActionZoomOut            = "view.zoomOut"
	ActionResetZoom          = "view.resetZoom"
	ActionTogglePreview      = "view.togglePreview"
)

var actions = map[string]func(Target){
	ActionDeleteSelection: func(t Target) {
		for _, id := range t.SelectedIDs() {
			t.DeleteElement(id)
		}
	},
	ActionDuplicateSelection: func(t Target) {
		for _, id := range t.SelectedIDs() {
			t.DuplicateElement(id)
		}
	},
	ActionClearSelection: func(t Target) { t.ClearSelection() },
	ActionUndo:           func(t Target) { t.Undo() },
	ActionRedo:           func(t Target) { t.Redo() },
	ActionZoomIn:         func(t Target) { t.ZoomIn() },
	ActionZoomOut:        func(t Target) { t.ZoomOut() },
	ActionResetZoom:      func(t Target) { t.ResetZoom() },
	ActionTogglePreview:  func(t Target) { t.TogglePreviewMode() },
}

// DefaultBindings returns the designer's built-in shortcuts. Each primary
// shortcut is bound for both Ctrl and Meta (Cmd on macOS).
func DefaultBindings() []Binding {
	deleteWhen := "!" + FlagTextFocus + " && " + FlagHasSelection

	bindings := []Binding{
		{Keys: "Delete", Action: ActionDeleteSelection, When: deleteWhen, Description: "Delete selected elements", Category: "Edit"},
		{Keys: "Backspace", Action: ActionDeleteSelection, When: deleteWhen, Description: "Delete selected elements", Category: "Edit"},
		{Keys: "Escape", Action: ActionClearSelection, Description: "Clear selection", Category: "Edit"},
	}

	primary := []Binding{
		{Keys: "Z", Action: ActionUndo, Description: "Undo", Category: "Edit"},
		{Keys: "Shift+Z", Action: ActionRedo, Description: "Redo", Category: "Edit"},
		{Keys: "D", Action: ActionDuplicateSelection, Description: "Duplicate selected elements", Category: "Edit"},
		{Keys: "P", Action: ActionTogglePreview, Description: "Toggle preview", Category: "View"},
		{Keys: "=", Action: ActionZoomIn, Description: "Zoom in", Category: "View"},
		{Keys: "+", Action: ActionZoomIn, Description: "Zoom in", Category: "View"},
		{Keys: "-", Action: ActionZoomOut, Description: "Zoom out", Category: "View"},
		{Keys: "0", Action: ActionResetZoom, Description: "Reset zoom", Category: "View"},
	}
	for _, mod := range []string{"Ctrl+", "Meta+"} {
		for _, b := range primary {
			b.Keys = mod + b.Keys
			bindings = append(bindings, b)
		}
	}
	return bindings
}
