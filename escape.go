package tuist

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder builds ANSI escape sequences into a reusable byte buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo positions the cursor. x and y are 0-indexed; the emitted
// ESC[{row};{col}H is 1-indexed.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the display and homes the cursor.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
	e.writeCSI()
	e.buf = append(e.buf, 'H')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, "?25l"...)
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, "?25h"...)
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, "?1049h"...)
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, "?1049l"...)
}

// EnableMouse turns on button, any-motion and SGR extended mouse reporting.
func (e *escBuilder) EnableMouse() {
	e.writeCSI()
	e.buf = append(e.buf, "?1000h"...)
	e.writeCSI()
	e.buf = append(e.buf, "?1003h"...)
	e.writeCSI()
	e.buf = append(e.buf, "?1006h"...)
}

// DisableMouse turns mouse reporting off in the reverse order.
func (e *escBuilder) DisableMouse() {
	e.writeCSI()
	e.buf = append(e.buf, "?1006l"...)
	e.writeCSI()
	e.buf = append(e.buf, "?1003l"...)
	e.writeCSI()
	e.buf = append(e.buf, "?1000l"...)
}

// ResetStyle emits ESC[0m.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetStyle resets all attributes and then selects the style's colors.
// Default colors are left at the terminal default after the reset.
func (e *escBuilder) SetStyle(s Style) {
	e.ResetStyle()
	if !s.Fg.IsDefault() {
		e.writeCSI()
		e.writeInt(s.Fg.FgCode())
		e.buf = append(e.buf, 'm')
	}
	if !s.Bg.IsDefault() {
		e.writeCSI()
		e.writeInt(s.Bg.BgCode())
		e.buf = append(e.buf, 'm')
	}
}

// WriteRune appends a UTF-8 encoded rune.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

// WriteString appends a string verbatim.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
