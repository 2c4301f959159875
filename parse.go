package tuist

import (
	"unicode/utf8"

	"github.com/grindlemire/tuist/internal/debug"
)

// parseInput converts raw terminal bytes into events. It recognises
//   - printable UTF-8 -> KeyEvent{Key: KeyRune}
//   - control characters -> Enter, Tab, Backspace, Escape or Ctrl+letter
//   - CSI and SS3 sequences -> cursor, editing and function keys with xterm modifiers
//   - ESC [ Z -> Shift+Tab
//   - ESC + printable -> Alt+key
//   - SGR mouse reports (see parseMouseSGR)
//
// A sequence cut off at the end of data is returned in rest so the caller
// can prepend it to the next read. When final is true nothing is held back:
// a trailing lone ESC is the Escape key and other fragments are decoded
// byte by byte.
func parseInput(data []byte, final bool) (events []Event, rest []byte) {
	i := 0
	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			ev, n := parseEscape(data[i:])
			if n == 0 {
				if !final {
					return events, data[i:]
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}
			if ev != nil {
				events = append(events, ev)
			}
			i += n
			continue
		}

		if b < 0x20 {
			events = append(events, controlKey(b))
			i++
			continue
		}

		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		if !utf8.FullRune(data[i:]) && !final {
			return events, data[i:]
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}
	return events, nil
}

// parseEscape decodes a sequence starting with ESC. It returns the event
// (nil when the sequence is consumed but produces nothing) and the bytes
// consumed; 0 means more input is needed.
func parseEscape(data []byte) (Event, int) {
	if len(data) < 2 {
		return nil, 0
	}
	switch next := data[1]; {
	case next == '[':
		if len(data) >= 3 && data[2] == '<' {
			m, n, ok := parseMouseSGR(data)
			if n > 0 && !ok {
				debug.Log("parse: dropped malformed mouse report %q", data[:n])
			}
			if n == 0 || !ok {
				return nil, n
			}
			return m, n
		}
		key, mod, n := parseCSISequence(data)
		if n < 0 {
			return KeyEvent{Key: KeyEscape}, 1
		}
		if n == 0 {
			return nil, 0
		}
		if key == KeyNone {
			return nil, n
		}
		return KeyEvent{Key: key, Mod: mod}, n
	case next == 'O':
		if len(data) < 3 {
			return nil, 0
		}
		if key := ss3Key(data[2]); key != KeyNone {
			return KeyEvent{Key: key}, 3
		}
		return KeyEvent{Key: KeyEscape}, 1
	case next == 0x1b:
		return KeyEvent{Key: KeyEscape}, 1
	case next >= 0x20 && next < 0x7f:
		return KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt}, 2
	case next == 0x7f:
		return KeyEvent{Key: KeyBackspace, Mod: ModAlt}, 2
	case next < 0x20:
		ev := controlKey(next)
		ev.Mod |= ModAlt
		return ev, 2
	}
	return KeyEvent{Key: KeyEscape}, 1
}

// controlKey maps a C0 control byte to a key event.
func controlKey(b byte) KeyEvent {
	switch b {
	case 0x00:
		return KeyEvent{Key: KeyRune, Rune: ' ', Mod: ModCtrl}
	case 0x08:
		return KeyEvent{Key: KeyBackspace}
	case 0x09:
		return KeyEvent{Key: KeyTab}
	case 0x0a, 0x0d:
		return KeyEvent{Key: KeyEnter}
	case 0x1b:
		return KeyEvent{Key: KeyEscape}
	}
	if b <= 0x1a {
		return KeyEvent{Key: KeyRune, Rune: rune('a' + b - 1), Mod: ModCtrl}
	}
	// 0x1c-0x1f: Ctrl+\ Ctrl+] Ctrl+^ Ctrl+_
	return KeyEvent{Key: KeyRune, Rune: rune(b + 0x40), Mod: ModCtrl}
}

// parseCSISequence parses ESC [ params final. It returns the consumed length,
// 0 if the sequence is incomplete, or -1 if it is not a valid CSI sequence.
func parseCSISequence(data []byte) (Key, Modifier, int) {
	var params []int
	cur, has := 0, false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			has = true
		case b == ';':
			params = append(params, cur)
			cur, has = 0, false
		case b >= 0x40 && b <= 0x7e:
			if has {
				params = append(params, cur)
			}
			key, mod := csiKey(params, b)
			return key, mod, i + 1
		default:
			return KeyNone, ModNone, -1
		}
	}
	return KeyNone, ModNone, 0
}

var tildeKeys = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	7: KeyHome, 8: KeyEnd,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10, 23: KeyF11, 24: KeyF12,
}

// csiKey maps a complete CSI sequence to a key.
func csiKey(params []int, final byte) (Key, Modifier) {
	mod := ModNone
	if len(params) >= 2 {
		mod = xtermModifier(params[1])
	}
	switch final {
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		return tildeKeys[params[0]], mod
	case 'Z':
		return KeyTab, ModShift
	}
	if key := ss3Key(final); key != KeyNone {
		return key, mod
	}
	return KeyNone, ModNone
}

// ss3Key maps the final byte shared by SS3 and simple CSI cursor sequences.
func ss3Key(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	case 'P':
		return KeyF1
	case 'Q':
		return KeyF2
	case 'R':
		return KeyF3
	case 'S':
		return KeyF4
	}
	return KeyNone
}

// xtermModifier decodes 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0).
func xtermModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

const (
	sgrMaxDigits = 4
	// ESC [ < + three fields of up to four digits + two ';' + final
	sgrMaxLen = 3 + 3*sgrMaxDigits + 2 + 1
)

// parseMouseSGR decodes an SGR (mode 1006) mouse report:
//
//	ESC [ < Cb ; Cx ; Cy M|m
//
// Cb, Cx and Cy are 1-4 decimal digits. Cx and Cy are 1-based columns and
// rows. Cb bits 0-1 select the button (0 left, 1 middle, 2 right, 3 none),
// bit 2 is shift, bit 3 alt, bit 4 ctrl, bit 5 motion and bit 6 the wheel,
// with bit 0 then choosing up (0) or down (1). M is a press, or motion when
// bit 5 is set; m is a release.
//
// It returns the bytes consumed (0 when the report is incomplete) and
// whether they formed a valid report. Invalid reports are consumed through
// their terminating byte so none of it leaks out as keystrokes.
func parseMouseSGR(data []byte) (MouseEvent, int, bool) {
	var fields [3]int
	var digits [3]int
	field := 0
	valid := true

	for i := 3; i < len(data); i++ {
		if i >= sgrMaxLen {
			return MouseEvent{}, i, false
		}
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			if digits[field] == sgrMaxDigits {
				valid = false
				continue
			}
			fields[field] = fields[field]*10 + int(b-'0')
			digits[field]++
		case b == ';':
			if field == 2 {
				valid = false
				continue
			}
			field++
		case b == 'M' || b == 'm':
			if !valid || field != 2 || digits[0] == 0 || digits[1] == 0 || digits[2] == 0 ||
				fields[1] == 0 || fields[2] == 0 {
				return MouseEvent{}, i + 1, false
			}
			return decodeSGR(fields[0], fields[1], fields[2], b == 'M'), i + 1, true
		case b >= 0x40 && b <= 0x7e:
			return MouseEvent{}, i + 1, false
		default:
			return MouseEvent{}, i, false
		}
	}
	return MouseEvent{}, 0, false
}

func decodeSGR(cb, cx, cy int, press bool) MouseEvent {
	ev := MouseEvent{X: cx - 1, Y: cy - 1}
	if cb&4 != 0 {
		ev.Mod |= ModShift
	}
	if cb&8 != 0 {
		ev.Mod |= ModAlt
	}
	if cb&16 != 0 {
		ev.Mod |= ModCtrl
	}

	if cb&64 != 0 {
		ev.Button = MouseWheelUp
		if cb&1 != 0 {
			ev.Button = MouseWheelDown
		}
		ev.Action = MousePress
		return ev
	}

	ev.Button = MouseButton(cb & 3)
	switch {
	case cb&32 != 0 && ev.Button == MouseNone:
		ev.Action = MouseMove
	case cb&32 != 0:
		ev.Action = MouseDrag
	case press:
		ev.Action = MousePress
	default:
		ev.Action = MouseRelease
	}
	return ev
}
