package key

import "github.com/gdamore/tcell/v2"

// FromTcell converts a terminal key event. Control characters such as
// Ctrl+Z arrive as tcell control keys and become the letter plus Ctrl.
// Unmapped keys convert to KeyNone.
func FromTcell(ev *tcell.EventKey) Event {
	mods := fromTcellMods(ev.Modifiers())
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		return NewRuneEvent(ev.Rune(), mods).Normalize()
	case k == tcell.KeyEscape:
		return NewSpecialEvent(KeyEscape, mods)
	case k == tcell.KeyEnter:
		return NewSpecialEvent(KeyEnter, mods)
	case k == tcell.KeyTab:
		return NewSpecialEvent(KeyTab, mods)
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return NewSpecialEvent(KeyBackspace, mods)
	case k == tcell.KeyDelete:
		return NewSpecialEvent(KeyDelete, mods)
	case k == tcell.KeyHome:
		return NewSpecialEvent(KeyHome, mods)
	case k == tcell.KeyEnd:
		return NewSpecialEvent(KeyEnd, mods)
	case k == tcell.KeyPgUp:
		return NewSpecialEvent(KeyPageUp, mods)
	case k == tcell.KeyPgDn:
		return NewSpecialEvent(KeyPageDown, mods)
	case k == tcell.KeyUp:
		return NewSpecialEvent(KeyUp, mods)
	case k == tcell.KeyDown:
		return NewSpecialEvent(KeyDown, mods)
	case k == tcell.KeyLeft:
		return NewSpecialEvent(KeyLeft, mods)
	case k == tcell.KeyRight:
		return NewSpecialEvent(KeyRight, mods)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return NewRuneEvent(r, mods.With(ModCtrl))
	}
	return Event{Modifiers: mods}
}

func fromTcellMods(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}
