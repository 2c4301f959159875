//go:build unix

package tuist

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// OpenTerminal prepares the controlling terminal for a session: stdin stops
// echoing and delivers keys unbuffered, and output goes to stdout. Close on
// the returned Terminal restores the previous mode.
func OpenTerminal() (*ANSITerminal, InputReader, error) {
	in := int(os.Stdin.Fd())
	if !term.IsTerminal(in) {
		return nil, nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(in)
	if err != nil {
		return nil, nil, fmt.Errorf("enter raw mode: %w", err)
	}

	out := int(os.Stdout.Fd())
	t := NewANSITerminal(os.Stdout, func() (int, int) {
		return windowSize(out)
	})
	t.restore = func() error {
		return term.Restore(in, state)
	}
	return t, NewStdinReader(os.Stdin), nil
}

// windowSize returns the terminal dimensions, defaulting to 80x24 when the
// ioctl fails or reports zero.
func windowSize(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}
