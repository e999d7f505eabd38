package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/formstorm/internal/editor"
	"github.com/dshills/formstorm/internal/element"
	"github.com/dshills/formstorm/internal/geometry"
	"github.com/dshills/formstorm/internal/palette"
)

// EditorModule implements the "editor" table over a store.
type EditorModule struct {
	store   *editor.Store
	palette *palette.Palette
	newID   func() string
}

// EditorOption configures an EditorModule.
type EditorOption func(*EditorModule)

// WithPalette sets the palette used by editor.add.
func WithPalette(p *palette.Palette) EditorOption {
	return func(m *EditorModule) {
		if p != nil {
			m.palette = p
		}
	}
}

// WithElementIDs sets the id source for elements added from a table.
func WithElementIDs(gen func() string) EditorOption {
	return func(m *EditorModule) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// NewEditorModule creates the editor module for store.
func NewEditorModule(store *editor.Store, opts ...EditorOption) *EditorModule {
	m := &EditorModule{
		store:   store,
		palette: palette.New(),
		newID:   editor.NewID,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the global the module is installed as.
func (m *EditorModule) Name() string {
	return "editor"
}

// Register installs the module into L.
func (m *EditorModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "add", L.NewFunction(m.add))
	L.SetField(mod, "update", L.NewFunction(m.update))
	L.SetField(mod, "delete", L.NewFunction(m.delete))
	L.SetField(mod, "duplicate", L.NewFunction(m.duplicate))
	L.SetField(mod, "select", L.NewFunction(m.selectElement))
	L.SetField(mod, "clear_selection", L.NewFunction(m.clearSelection))
	L.SetField(mod, "hover", L.NewFunction(m.hover))
	L.SetField(mod, "move", L.NewFunction(m.move))
	L.SetField(mod, "resize", L.NewFunction(m.resize))
	L.SetField(mod, "reorder", L.NewFunction(m.reorder))
	L.SetField(mod, "add_step", L.NewFunction(m.addStep))
	L.SetField(mod, "remove_step", L.NewFunction(m.removeStep))
	L.SetField(mod, "rename_step", L.NewFunction(m.renameStep))
	L.SetField(mod, "set_step", L.NewFunction(m.setStep))
	L.SetField(mod, "undo", L.NewFunction(m.undo))
	L.SetField(mod, "redo", L.NewFunction(m.redo))
	L.SetField(mod, "can_undo", L.NewFunction(m.canUndo))
	L.SetField(mod, "can_redo", L.NewFunction(m.canRedo))
	L.SetField(mod, "save_history", L.NewFunction(m.saveHistory))
	L.SetField(mod, "zoom", L.NewFunction(m.zoom))
	L.SetField(mod, "toggle_grid", L.NewFunction(m.toggleGrid))
	L.SetField(mod, "toggle_snap", L.NewFunction(m.toggleSnap))
	L.SetField(mod, "set_grid_size", L.NewFunction(m.setGridSize))
	L.SetField(mod, "element", L.NewFunction(m.element))
	L.SetField(mod, "order", L.NewFunction(m.order))
	L.SetField(mod, "page_order", L.NewFunction(m.pageOrder))
	L.SetField(mod, "selected", L.NewFunction(m.selected))
	L.SetField(mod, "steps", L.NewFunction(m.steps))
	L.SetField(mod, "step_index", L.NewFunction(m.stepIndex))

	L.SetGlobal(m.Name(), mod)
	return nil
}

// add(type [, x, y]) -> id
// add(table) -> id
// The first form places like the palette: at a drop point (snapped) when
// x and y are given, click-to-add otherwise. The table form needs a type
// and may set any element field, including id.
func (m *EditorModule) add(L *lua.LState) int {
	if tbl, ok := L.Get(1).(*lua.LTable); ok {
		L.Push(lua.LString(m.addTable(L, tbl)))
		return 1
	}

	t := element.Type(L.CheckString(1))
	c, ok := m.palette.Lookup(t)
	if !ok {
		L.ArgError(1, "unknown component type "+string(t))
		return 0
	}

	var (
		id  string
		err error
	)
	if L.GetTop() >= 3 {
		pt := geometry.Point{X: float64(L.CheckNumber(2)), Y: float64(L.CheckNumber(3))}
		payload := palette.Payload{ComponentType: c.Type, ComponentName: c.Name}
		id, err = m.palette.Drop(m.store, payload, pt)
	} else {
		id, err = m.palette.Add(m.store, t)
	}
	if err != nil {
		L.RaiseError("add: %v", err)
		return 0
	}
	L.Push(lua.LString(id))
	return 1
}

func (m *EditorModule) addTable(L *lua.LState, tbl *lua.LTable) string {
	r := patchReader{L: L, t: tbl, arg: 1}
	typ := r.str("type")
	if typ == nil {
		L.ArgError(1, "field 'type' is required")
		return ""
	}
	c, ok := m.palette.Lookup(element.Type(*typ))
	if !ok {
		L.ArgError(1, "unknown component type "+*typ)
		return ""
	}

	id := m.newID()
	if s := r.str("id"); s != nil && *s != "" {
		id = *s
	}
	base := palette.NewElement(id, c.Type, c.Name, geometry.Point{}, m.store.CountType(c.Type))
	el := base.Apply(r.patch(base))
	m.store.AddElement(el)
	return el.ID
}

// update(id, fields)
func (m *EditorModule) update(L *lua.LState) int {
	id := L.CheckString(1)
	tbl := L.CheckTable(2)
	base, _ := m.store.Element(id)
	r := patchReader{L: L, t: tbl, arg: 2}
	m.store.UpdateElement(id, r.patch(base))
	return 0
}

// delete(id)
func (m *EditorModule) delete(L *lua.LState) int {
	m.store.DeleteElement(L.CheckString(1))
	return 0
}

// duplicate(id) -> id | nil
func (m *EditorModule) duplicate(L *lua.LState) int {
	id := m.store.DuplicateElement(L.CheckString(1))
	if id == "" {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(id))
	return 1
}

// select(id [, multi])
func (m *EditorModule) selectElement(L *lua.LState) int {
	m.store.SelectElement(L.CheckString(1), L.OptBool(2, false))
	return 0
}

// clear_selection()
func (m *EditorModule) clearSelection(L *lua.LState) int {
	m.store.ClearSelection()
	return 0
}

// hover(id | nil)
func (m *EditorModule) hover(L *lua.LState) int {
	m.store.SetHoveredID(L.OptString(1, ""))
	return 0
}

// move(id, x, y)
func (m *EditorModule) move(L *lua.LState) int {
	id := L.CheckString(1)
	pt := geometry.Point{X: float64(L.CheckNumber(2)), Y: float64(L.CheckNumber(3))}
	m.store.MoveElement(id, pt)
	return 0
}

// resize(id, width, height)
func (m *EditorModule) resize(L *lua.LState) int {
	id := L.CheckString(1)
	size := geometry.Size{Width: float64(L.CheckNumber(2)), Height: float64(L.CheckNumber(3))}
	m.store.ResizeElement(id, size)
	return 0
}

// reorder(from, to), 1-based positions in the global order.
func (m *EditorModule) reorder(L *lua.LState) int {
	from := L.CheckInt(1)
	to := L.CheckInt(2)
	m.store.ReorderElements(from-1, to-1)
	return 0
}

// add_step([name]) -> id
func (m *EditorModule) addStep(L *lua.LState) int {
	L.Push(lua.LString(m.store.AddStep(L.OptString(1, ""))))
	return 1
}

// remove_step(index)
func (m *EditorModule) removeStep(L *lua.LState) int {
	m.store.RemoveStep(L.CheckInt(1) - 1)
	return 0
}

// rename_step(index, name)
func (m *EditorModule) renameStep(L *lua.LState) int {
	index := L.CheckInt(1)
	m.store.RenameStep(index-1, L.CheckString(2))
	return 0
}

// set_step(index)
func (m *EditorModule) setStep(L *lua.LState) int {
	m.store.SetCurrentStepIndex(L.CheckInt(1) - 1)
	return 0
}

// undo()
func (m *EditorModule) undo(L *lua.LState) int {
	m.store.Undo()
	return 0
}

// redo()
func (m *EditorModule) redo(L *lua.LState) int {
	m.store.Redo()
	return 0
}

// can_undo() -> bool
func (m *EditorModule) canUndo(L *lua.LState) int {
	L.Push(lua.LBool(m.store.CanUndo()))
	return 1
}

// can_redo() -> bool
func (m *EditorModule) canRedo(L *lua.LState) int {
	L.Push(lua.LBool(m.store.CanRedo()))
	return 1
}

// save_history()
func (m *EditorModule) saveHistory(L *lua.LState) int {
	m.store.SaveToHistory()
	return 0
}

// zoom([level]) -> level
// Sets the zoom when given, then returns the current value.
func (m *EditorModule) zoom(L *lua.LState) int {
	if L.GetTop() >= 1 {
		m.store.SetZoom(float64(L.CheckNumber(1)))
	}
	L.Push(lua.LNumber(m.store.Zoom()))
	return 1
}

// toggle_grid() -> shown
func (m *EditorModule) toggleGrid(L *lua.LState) int {
	m.store.ToggleGrid()
	L.Push(lua.LBool(m.store.ShowGrid()))
	return 1
}

// toggle_snap() -> enabled
func (m *EditorModule) toggleSnap(L *lua.LState) int {
	m.store.ToggleSnapToGrid()
	L.Push(lua.LBool(m.store.SnapToGrid()))
	return 1
}

// set_grid_size(size)
func (m *EditorModule) setGridSize(L *lua.LState) int {
	m.store.SetGridSize(float64(L.CheckNumber(1)))
	return 0
}

// element(id) -> table | nil
func (m *EditorModule) element(L *lua.LState) int {
	el, ok := m.store.Element(L.CheckString(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(elementToTable(L, el))
	return 1
}

// order() -> {id...}
func (m *EditorModule) order(L *lua.LState) int {
	L.Push(stringsToTable(L, m.store.ElementOrder()))
	return 1
}

// page_order() -> {id...} of the current step
func (m *EditorModule) pageOrder(L *lua.LState) int {
	L.Push(stringsToTable(L, m.store.PageOrder()))
	return 1
}

// selected() -> {id...}
func (m *EditorModule) selected(L *lua.LState) int {
	L.Push(stringsToTable(L, m.store.SelectedIDs()))
	return 1
}

// steps() -> {{id, name, elements}...}
func (m *EditorModule) steps(L *lua.LState) int {
	steps := m.store.Steps()
	t := L.CreateTable(len(steps), 0)
	for i, p := range steps {
		t.RawSetInt(i+1, stepToTable(L, p))
	}
	L.Push(t)
	return 1
}

// step_index() -> index
func (m *EditorModule) stepIndex(L *lua.LState) int {
	L.Push(lua.LNumber(m.store.CurrentStepIndex() + 1))
	return 1
}
