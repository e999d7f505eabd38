package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/formstorm/internal/editor"
	"github.com/dshills/formstorm/internal/element"
)

// stringsToTable converts ids to a Lua array.
func stringsToTable(L *lua.LState, s []string) *lua.LTable {
	t := L.CreateTable(len(s), 0)
	for i, v := range s {
		t.RawSetInt(i+1, lua.LString(v))
	}
	return t
}

// stylesToTable converts element styles. Only string, number and bool
// values survive; anything else is skipped.
func stylesToTable(L *lua.LState, styles element.Styles) *lua.LTable {
	t := L.NewTable()
	for k, v := range styles {
		switch val := v.(type) {
		case string:
			t.RawSetString(k, lua.LString(val))
		case bool:
			t.RawSetString(k, lua.LBool(val))
		case float64:
			t.RawSetString(k, lua.LNumber(val))
		case int:
			t.RawSetString(k, lua.LNumber(val))
		}
	}
	return t
}

// elementToTable converts el to the table shape scripts read and write.
func elementToTable(L *lua.LState, el element.Element) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("id", lua.LString(el.ID))
	t.RawSetString("type", lua.LString(el.Type))
	t.RawSetString("name", lua.LString(el.Name))
	t.RawSetString("label", lua.LString(el.Label))
	t.RawSetString("placeholder", lua.LString(el.Placeholder))
	t.RawSetString("help_text", lua.LString(el.HelpText))
	t.RawSetString("default_value", lua.LString(el.DefaultValue))
	t.RawSetString("required", lua.LBool(el.Required))
	t.RawSetString("x", lua.LNumber(el.Position.X))
	t.RawSetString("y", lua.LNumber(el.Position.Y))
	t.RawSetString("width", lua.LNumber(el.Size.Width))
	t.RawSetString("height", lua.LNumber(el.Size.Height))
	t.RawSetString("styles", stylesToTable(L, el.Styles))
	t.RawSetString("parent_id", lua.LString(el.ParentID))
	t.RawSetString("children", stringsToTable(L, el.Children))
	t.RawSetString("locked", lua.LBool(el.Locked))
	t.RawSetString("visible", lua.LBool(el.IsVisible()))

	opts := L.CreateTable(len(el.Options), 0)
	for i, o := range el.Options {
		ot := L.NewTable()
		ot.RawSetString("label", lua.LString(o.Label))
		ot.RawSetString("value", lua.LString(o.Value))
		opts.RawSetInt(i+1, ot)
	}
	t.RawSetString("options", opts)

	rules := L.CreateTable(len(el.Validation), 0)
	for i, r := range el.Validation {
		rt := L.NewTable()
		rt.RawSetString("type", lua.LString(r.Type))
		rt.RawSetString("message", lua.LString(r.Message))
		switch v := r.Value.(type) {
		case string:
			rt.RawSetString("value", lua.LString(v))
		case float64:
			rt.RawSetString("value", lua.LNumber(v))
		case bool:
			rt.RawSetString("value", lua.LBool(v))
		}
		rules.RawSetInt(i+1, rt)
	}
	t.RawSetString("validation", rules)
	return t
}

// stepToTable converts a page.
func stepToTable(L *lua.LState, p editor.Page) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("id", lua.LString(p.ID))
	t.RawSetString("name", lua.LString(p.Name))
	t.RawSetString("elements", stringsToTable(L, p.Elements))
	return t
}

// patchReader decodes a Lua table argument into an element.Patch,
// raising an argument error on a mistyped field.
type patchReader struct {
	L   *lua.LState
	t   *lua.LTable
	arg int
}

func (r patchReader) fail(key, want string, got lua.LValue) {
	r.L.ArgError(r.arg, "field '"+key+"' expects "+want+", got "+got.Type().String())
}

func (r patchReader) str(key string) *string {
	v := r.t.RawGetString(key)
	switch val := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LString:
		s := string(val)
		return &s
	default:
		r.fail(key, "string", v)
		return nil
	}
}

func (r patchReader) boolean(key string) *bool {
	v := r.t.RawGetString(key)
	switch val := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		b := bool(val)
		return &b
	default:
		r.fail(key, "boolean", v)
		return nil
	}
}

func (r patchReader) number(key string) (float64, bool) {
	v := r.t.RawGetString(key)
	switch val := v.(type) {
	case *lua.LNilType:
		return 0, false
	case lua.LNumber:
		return float64(val), true
	default:
		r.fail(key, "number", v)
		return 0, false
	}
}

func (r patchReader) table(key string) *lua.LTable {
	v := r.t.RawGetString(key)
	switch val := v.(type) {
	case *lua.LNilType:
		return nil
	case *lua.LTable:
		return val
	default:
		r.fail(key, "table", v)
		return nil
	}
}

func (r patchReader) strings(key string) *[]string {
	t := r.table(key)
	if t == nil {
		return nil
	}
	out := make([]string, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		s, ok := t.RawGetInt(i).(lua.LString)
		if !ok {
			r.fail(key, "array of strings", t.RawGetInt(i))
		}
		out = append(out, string(s))
	}
	return &out
}

func (r patchReader) styles() element.Styles {
	t := r.table("styles")
	if t == nil {
		return nil
	}
	out := element.Styles{}
	t.ForEach(func(k, v lua.LValue) {
		key, ok := k.(lua.LString)
		if !ok {
			return
		}
		switch val := v.(type) {
		case lua.LString:
			out[string(key)] = string(val)
		case lua.LNumber:
			out[string(key)] = float64(val)
		case lua.LBool:
			out[string(key)] = bool(val)
		}
	})
	return out
}

func (r patchReader) options() *[]element.Option {
	t := r.table("options")
	if t == nil {
		return nil
	}
	out := make([]element.Option, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		switch v := t.RawGetInt(i).(type) {
		case lua.LString:
			out = append(out, element.Option{Label: string(v), Value: string(v)})
		case *lua.LTable:
			label := lua.LVAsString(v.RawGetString("label"))
			value := lua.LVAsString(v.RawGetString("value"))
			if value == "" {
				value = label
			}
			out = append(out, element.Option{Label: label, Value: value})
		default:
			r.fail("options", "array of strings or {label, value} tables", v)
		}
	}
	return &out
}

func (r patchReader) validation() *[]element.ValidationRule {
	t := r.table("validation")
	if t == nil {
		return nil
	}
	out := make([]element.ValidationRule, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		rt, ok := t.RawGetInt(i).(*lua.LTable)
		if !ok {
			r.fail("validation", "array of rule tables", t.RawGetInt(i))
		}
		rule := element.ValidationRule{
			Type:    lua.LVAsString(rt.RawGetString("type")),
			Message: lua.LVAsString(rt.RawGetString("message")),
		}
		switch v := rt.RawGetString("value").(type) {
		case lua.LString:
			rule.Value = string(v)
		case lua.LNumber:
			rule.Value = float64(v)
		case lua.LBool:
			rule.Value = bool(v)
		}
		out = append(out, rule)
	}
	return &out
}

// patch decodes every recognised field. Position and size are only set
// when both coordinates are given; base supplies the missing one.
func (r patchReader) patch(base element.Element) element.Patch {
	p := element.Patch{
		Name:         r.str("name"),
		Label:        r.str("label"),
		Placeholder:  r.str("placeholder"),
		HelpText:     r.str("help_text"),
		DefaultValue: r.str("default_value"),
		Required:     r.boolean("required"),
		Validation:   r.validation(),
		Options:      r.options(),
		Styles:       r.styles(),
		ParentID:     r.str("parent_id"),
		Children:     r.strings("children"),
		Locked:       r.boolean("locked"),
		Visible:      r.boolean("visible"),
	}
	if s := r.str("type"); s != nil {
		t := element.Type(*s)
		if !t.Valid() {
			r.L.ArgError(r.arg, "unknown element type "+*s)
		}
		p.Type = &t
	}

	x, hasX := r.number("x")
	y, hasY := r.number("y")
	if hasX || hasY {
		pos := base.Position
		if hasX {
			pos.X = x
		}
		if hasY {
			pos.Y = y
		}
		p.Position = &pos
	}

	w, hasW := r.number("width")
	h, hasH := r.number("height")
	if hasW || hasH {
		size := base.Size
		if hasW {
			size.Width = w
		}
		if hasH {
			size.Height = h
		}
		p.Size = &size
	}
	return p
}
