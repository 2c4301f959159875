package tuist

import (
	"fmt"
	"io"
	"sync"
)

// ANSITerminal implements Terminal by writing ANSI escape sequences.
type ANSITerminal struct {
	mu      sync.Mutex
	out     io.Writer
	size    func() (int, int)
	esc     *escBuilder
	restore func() error
}

var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal writes to out and asks size for the current dimensions on
// every Size call. A nil size reports 80x24.
func NewANSITerminal(out io.Writer, size func() (width, height int)) *ANSITerminal {
	if size == nil {
		size = func() (int, int) { return 80, 24 }
	}
	return &ANSITerminal{
		out:  out,
		size: size,
		esc:  newEscBuilder(256),
	}
}

// Size implements Terminal.
func (t *ANSITerminal) Size() (width, height int) {
	return t.size()
}

// Flush implements Terminal.
func (t *ANSITerminal) Flush(runs []Run) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := EncodeRuns(t.out, runs)
	return err
}

// write builds a sequence with fn and writes it out.
func (t *ANSITerminal) write(op string, fn func(*escBuilder)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.esc.Reset()
	fn(t.esc)
	if _, err := t.out.Write(t.esc.Bytes()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear implements Terminal.
func (t *ANSITerminal) Clear() error {
	return t.write("clear", func(e *escBuilder) {
		e.ResetStyle()
		e.ClearScreen()
	})
}

// EnterAltScreen implements Terminal.
func (t *ANSITerminal) EnterAltScreen() error {
	return t.write("enter alt screen", (*escBuilder).EnterAltScreen)
}

// ExitAltScreen implements Terminal.
func (t *ANSITerminal) ExitAltScreen() error {
	return t.write("exit alt screen", (*escBuilder).ExitAltScreen)
}

// HideCursor implements Terminal.
func (t *ANSITerminal) HideCursor() error {
	return t.write("hide cursor", (*escBuilder).HideCursor)
}

// ShowCursor implements Terminal.
func (t *ANSITerminal) ShowCursor() error {
	return t.write("show cursor", (*escBuilder).ShowCursor)
}

// EnableMouse implements Terminal.
func (t *ANSITerminal) EnableMouse() error {
	return t.write("enable mouse", (*escBuilder).EnableMouse)
}

// DisableMouse implements Terminal.
func (t *ANSITerminal) DisableMouse() error {
	return t.write("disable mouse", (*escBuilder).DisableMouse)
}

// Close resets colors and restores the terminal mode captured by OpenTerminal.
func (t *ANSITerminal) Close() error {
	err := t.write("reset style", (*escBuilder).ResetStyle)
	if t.restore != nil {
		if rerr := t.restore(); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
		t.restore = nil
	}
	return err
}
