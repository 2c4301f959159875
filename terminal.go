package tuist

import "errors"

// ErrNotTerminal is returned by OpenTerminal when stdin is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Terminal is the output side of a terminal session.
// Implementations write ANSI to a tty, drive a tcell screen, or record
// calls for tests.
type Terminal interface {
	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// Flush draws the given runs.
	Flush(runs []Run) error

	// Clear blanks the whole display.
	Clear() error

	// EnterAltScreen switches to the alternate screen buffer.
	EnterAltScreen() error

	// ExitAltScreen switches back to the main screen buffer.
	ExitAltScreen() error

	// HideCursor makes the cursor invisible.
	HideCursor() error

	// ShowCursor makes the cursor visible.
	ShowCursor() error

	// EnableMouse turns on SGR mouse reporting.
	EnableMouse() error

	// DisableMouse turns mouse reporting off.
	DisableMouse() error

	// Close restores any terminal modes changed when the session was opened.
	Close() error
}
