// Package tcellterm runs a tuist Host on top of a tcell screen. A Screen is
// both the Terminal and the InputReader for the host.
package tcellterm

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/tuist"
)

// Screen adapts a tcell.Screen to tuist.Terminal and tuist.InputReader.
type Screen struct {
	screen tcell.Screen

	pending []tuist.Event
	buttons tcell.ButtonMask

	closeOnce sync.Once
}

var (
	_ tuist.Terminal    = (*Screen)(nil)
	_ tuist.InputReader = (*Screen)(nil)
)

// Open creates and initializes the platform's tcell screen.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return New(s), nil
}

// New wraps an initialized tcell screen.
func New(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Size returns the screen size in cells.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Flush writes each run into tcell's back buffer and shows it.
func (s *Screen) Flush(runs []tuist.Run) error {
	for _, r := range runs {
		st := toStyle(r.Style)
		x := r.X
		for _, ch := range r.Text {
			s.screen.SetContent(x, r.Y, ch, nil, st)
			x += tuist.RuneWidth(ch)
		}
	}
	s.screen.Show()
	return nil
}

// Clear blanks the screen and forces a full repaint on the next Show.
func (s *Screen) Clear() error {
	s.screen.Clear()
	s.screen.Sync()
	return nil
}

// EnterAltScreen is a no-op; tcell switches to the alternate screen in Init.
func (s *Screen) EnterAltScreen() error { return nil }

// ExitAltScreen is a no-op; tcell leaves the alternate screen in Fini.
func (s *Screen) ExitAltScreen() error { return nil }

// HideCursor hides the cursor.
func (s *Screen) HideCursor() error {
	s.screen.HideCursor()
	return nil
}

// ShowCursor is a no-op; Fini restores the cursor.
func (s *Screen) ShowCursor() error { return nil }

// EnableMouse turns on mouse reporting.
func (s *Screen) EnableMouse() error {
	s.screen.EnableMouse()
	return nil
}

// DisableMouse turns off mouse reporting.
func (s *Screen) DisableMouse() error {
	s.screen.DisableMouse()
	s.buttons = tcell.ButtonNone
	return nil
}

// Close finalizes the tcell screen. Safe to call more than once, so the same
// Screen can be closed as both terminal and reader.
func (s *Screen) Close() error {
	s.closeOnce.Do(s.screen.Fini)
	return nil
}

// Available reports whether an event is ready without blocking.
func (s *Screen) Available() bool {
	for len(s.pending) == 0 && s.screen.HasPendingEvent() {
		if ev, ok := s.translate(s.screen.PollEvent()); ok {
			s.pending = append(s.pending, ev)
		}
	}
	return len(s.pending) > 0
}

// Read returns the next event, blocking until one arrives. It returns io.EOF
// once the screen has been finalized.
func (s *Screen) Read() (tuist.Event, error) {
	for len(s.pending) == 0 {
		raw := s.screen.PollEvent()
		if raw == nil {
			return nil, io.EOF
		}
		if ev, ok := s.translate(raw); ok {
			s.pending = append(s.pending, ev)
		}
	}
	ev := s.pending[0]
	s.pending = s.pending[1:]
	return ev, nil
}

func (s *Screen) translate(ev tcell.Event) (tuist.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return toKey(e)
	case *tcell.EventMouse:
		return s.toMouse(e), true
	case *tcell.EventResize:
		w, h := e.Size()
		return tuist.ResizeEvent{Width: w, Height: h}, true
	}
	return nil, false
}
