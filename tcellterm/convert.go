package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/tuist"
)

var palette = [16]tcell.Color{
	tcell.ColorBlack, tcell.ColorMaroon, tcell.ColorGreen, tcell.ColorOlive,
	tcell.ColorNavy, tcell.ColorPurple, tcell.ColorTeal, tcell.ColorSilver,
	tcell.ColorGray, tcell.ColorRed, tcell.ColorLime, tcell.ColorYellow,
	tcell.ColorBlue, tcell.ColorFuchsia, tcell.ColorAqua, tcell.ColorWhite,
}

func toColor(c tuist.Color) tcell.Color {
	i := c.Index()
	if i < 0 {
		return tcell.ColorDefault
	}
	return palette[i]
}

func toStyle(st tuist.Style) tcell.Style {
	return tcell.StyleDefault.Foreground(toColor(st.Fg)).Background(toColor(st.Bg))
}

var keys = map[tcell.Key]tuist.Key{
	tcell.KeyEscape:     tuist.KeyEscape,
	tcell.KeyEnter:      tuist.KeyEnter,
	tcell.KeyTab:        tuist.KeyTab,
	tcell.KeyBacktab:    tuist.KeyTab,
	tcell.KeyBackspace:  tuist.KeyBackspace,
	tcell.KeyBackspace2: tuist.KeyBackspace,
	tcell.KeyDelete:     tuist.KeyDelete,
	tcell.KeyInsert:     tuist.KeyInsert,
	tcell.KeyUp:         tuist.KeyUp,
	tcell.KeyDown:       tuist.KeyDown,
	tcell.KeyLeft:       tuist.KeyLeft,
	tcell.KeyRight:      tuist.KeyRight,
	tcell.KeyHome:       tuist.KeyHome,
	tcell.KeyEnd:        tuist.KeyEnd,
	tcell.KeyPgUp:       tuist.KeyPageUp,
	tcell.KeyPgDn:       tuist.KeyPageDown,
	tcell.KeyF1:         tuist.KeyF1,
	tcell.KeyF2:         tuist.KeyF2,
	tcell.KeyF3:         tuist.KeyF3,
	tcell.KeyF4:         tuist.KeyF4,
	tcell.KeyF5:         tuist.KeyF5,
	tcell.KeyF6:         tuist.KeyF6,
	tcell.KeyF7:         tuist.KeyF7,
	tcell.KeyF8:         tuist.KeyF8,
	tcell.KeyF9:         tuist.KeyF9,
	tcell.KeyF10:        tuist.KeyF10,
	tcell.KeyF11:        tuist.KeyF11,
	tcell.KeyF12:        tuist.KeyF12,
}

func toMod(m tcell.ModMask) tuist.Modifier {
	var mod tuist.Modifier
	if m&tcell.ModShift != 0 {
		mod |= tuist.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= tuist.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= tuist.ModAlt
	}
	return mod
}

// toKey maps a tcell key event. Ctrl+letter arrives from tcell as its own
// key code and becomes the lowercase rune with ModCtrl.
func toKey(e *tcell.EventKey) (tuist.Event, bool) {
	mod := toMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		return tuist.KeyEvent{Key: tuist.KeyRune, Rune: e.Rune(), Mod: mod}, true
	}
	// Tab, Enter, Backspace and Escape share codes with Ctrl+I, Ctrl+M,
	// Ctrl+H and Ctrl+[, so the named keys win.
	if tk, ok := keys[k]; ok {
		if k == tcell.KeyBacktab {
			mod |= tuist.ModShift
		}
		return tuist.KeyEvent{Key: tk, Mod: mod}, true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return tuist.KeyEvent{Key: tuist.KeyRune, Rune: r, Mod: mod | tuist.ModCtrl}, true
	}
	return nil, false
}

const heldButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// toMouse turns tcell's button-state reports into press, release, drag and
// move actions by comparing against the previously held buttons.
func (s *Screen) toMouse(e *tcell.EventMouse) tuist.MouseEvent {
	x, y := e.Position()
	ev := tuist.MouseEvent{X: x, Y: y, Mod: toMod(e.Modifiers())}
	mask := e.Buttons()

	switch {
	case mask&tcell.WheelUp != 0:
		ev.Button, ev.Action = tuist.MouseWheelUp, tuist.MousePress
		return ev
	case mask&tcell.WheelDown != 0:
		ev.Button, ev.Action = tuist.MouseWheelDown, tuist.MousePress
		return ev
	}

	held := mask & heldButtons
	prev := s.buttons
	s.buttons = held
	switch {
	case held != 0 && prev == 0:
		ev.Button, ev.Action = toButton(held), tuist.MousePress
	case held != 0 && held&^prev != 0:
		ev.Button, ev.Action = toButton(held&^prev), tuist.MousePress
	case held != 0:
		ev.Button, ev.Action = toButton(held), tuist.MouseDrag
	case prev != 0:
		ev.Button, ev.Action = toButton(prev), tuist.MouseRelease
	default:
		ev.Button, ev.Action = tuist.MouseNone, tuist.MouseMove
	}
	return ev
}

func toButton(m tcell.ButtonMask) tuist.MouseButton {
	switch {
	case m&tcell.ButtonPrimary != 0:
		return tuist.MouseLeft
	case m&tcell.ButtonMiddle != 0:
		return tuist.MouseMiddle
	case m&tcell.ButtonSecondary != 0:
		return tuist.MouseRight
	}
	return tuist.MouseNone
}
