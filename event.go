package tuist

import "fmt"

// Event is an input event read from the terminal.
// Use a type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	Key Key
	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune
	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// IsRune returns true if this is a plain printable character.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune && !e.Mod.Has(ModCtrl) && !e.Mod.Has(ModAlt)
}

// Is checks if the event matches a key and exactly the given modifiers.
// With no modifiers given only the key is compared.
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// IsCtrl reports whether the event is Ctrl plus the given letter.
func (e KeyEvent) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Mod.Has(ModCtrl) && e.Rune == r
}

func (e KeyEvent) String() string {
	s := e.Key.String()
	if e.Key == KeyRune {
		s = fmt.Sprintf("%q", e.Rune)
	}
	if e.Mod != ModNone {
		s = e.Mod.String() + "+" + s
	}
	return s
}

// MouseButton represents which mouse button was involved in an event.
type MouseButton uint8

const (
	// MouseLeft is the left (primary) mouse button.
	MouseLeft MouseButton = iota
	// MouseMiddle is the middle mouse button.
	MouseMiddle
	// MouseRight is the right (secondary) mouse button.
	MouseRight
	// MouseNone indicates no button (motion without a button held).
	MouseNone
	// MouseWheelUp is a scroll wheel up event.
	MouseWheelUp
	// MouseWheelDown is a scroll wheel down event.
	MouseWheelDown
)

// MouseAction represents the type of mouse action.
type MouseAction uint8

const (
	// MousePress indicates a button was pressed (or the wheel turned).
	MousePress MouseAction = iota
	// MouseRelease indicates a button was released.
	MouseRelease
	// MouseMove indicates motion with no button held.
	MouseMove
	// MouseDrag indicates motion while a button is held.
	MouseDrag
)

// MouseEvent represents a mouse input event.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	// X is the column position (0-indexed).
	X int
	// Y is the row position (0-indexed).
	Y int
	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

func (MouseEvent) isEvent() {}

// Point returns the pointer position.
func (e MouseEvent) Point() Point {
	return Pt(e.X, e.Y)
}

// IsWheel reports whether the event is a scroll wheel step.
func (e MouseEvent) IsWheel() bool {
	return e.Button == MouseWheelUp || e.Button == MouseWheelDown
}

// ResizeEvent is emitted by backends that learn about size changes from the
// terminal rather than by polling.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}
