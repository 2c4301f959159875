package tuist

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/grindlemire/tuist/internal/debug"
)

// Run enters the session modes, runs frames until RequestExit is called and
// restores the terminal. Restoration also runs if a handler panics; the
// panic is re-raised afterwards. io.EOF from the input reader ends the loop
// without error.
func (h *Host) Run() (err error) {
	if err := h.start(); err != nil {
		return errors.Join(err, h.restore())
	}
	defer func() {
		if r := recover(); r != nil {
			if rerr := h.restore(); rerr != nil {
				debug.Log("Host.Run: restore after panic: %v", rerr)
			}
			panic(r)
		}
		err = errors.Join(err, h.restore())
	}()

	for !h.exit.Load() {
		frameStart := time.Now()
		if err := h.tick(); err != nil {
			if errors.Is(err, io.EOF) {
				debug.Log("Host.Run: input closed")
				return nil
			}
			return err
		}

		// Sleep for remaining frame time to maintain consistent framerate
		if elapsed := time.Since(frameStart); elapsed < h.frameInterval {
			time.Sleep(h.frameInterval - elapsed)
		}
	}
	return nil
}

func (h *Host) start() error {
	if h.altScreen {
		if err := h.term.EnterAltScreen(); err != nil {
			return fmt.Errorf("enter alt screen: %w", err)
		}
	}
	if err := h.term.HideCursor(); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}
	if h.mouse {
		if err := h.term.EnableMouse(); err != nil {
			return fmt.Errorf("enable mouse: %w", err)
		}
	}
	h.buf.Invalidate()
	return nil
}

// restore undoes start. Every step runs even if an earlier one fails.
func (h *Host) restore() error {
	var errs []error
	if h.mouse {
		if err := h.term.DisableMouse(); err != nil {
			errs = append(errs, fmt.Errorf("disable mouse: %w", err))
		}
	}
	if err := h.term.ShowCursor(); err != nil {
		errs = append(errs, fmt.Errorf("show cursor: %w", err))
	}
	if h.altScreen {
		if err := h.term.ExitAltScreen(); err != nil {
			errs = append(errs, fmt.Errorf("exit alt screen: %w", err))
		}
	}
	return errors.Join(errs...)
}

// tick runs one frame: resize check, dispatch queue, input, layout, render
// and flush.
func (h *Host) tick() error {
	if err := h.checkResize(); err != nil {
		return err
	}
	h.drain()
	if err := h.processInput(); err != nil {
		return err
	}

	h.layout()
	RenderTree(h.buf, h.root)

	runs := h.buf.Diff()
	if len(runs) == 0 {
		return nil
	}
	if err := h.term.Flush(runs); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// layout arranges the tree over the whole buffer.
func (h *Host) layout() {
	if h.root != nil {
		Layout(h.root, h.buf.Size())
	}
	h.needsLayout = false
}

// processInput handles every event the reader has ready.
func (h *Host) processInput() error {
	for h.input.Available() {
		ev, err := h.input.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			return fmt.Errorf("read input: %w", err)
		}
		switch e := ev.(type) {
		case KeyEvent:
			h.handleKey(e)
		case MouseEvent:
			h.handleMouse(e)
		case ResizeEvent:
			// size is polled at the start of every tick
		}
	}
	return nil
}

func (h *Host) handleKey(e KeyEvent) {
	if h.root == nil {
		if e.IsCtrl('c') {
			h.RequestExit()
		}
		return
	}

	if h.focusKey != KeyNone && e.Key == h.focusKey {
		switch e.Mod {
		case ModNone:
			h.focus.MoveFocus(h.root, true)
			return
		case ModShift:
			h.focus.MoveFocus(h.root, false)
			return
		}
	}

	h.focus.Validate(h.root)
	target := h.focus.Focused()
	if target == nil {
		target = h.root
	}
	args := NewKeyEventArgs(KeyDownEvent, e)
	target.Base().RaiseEvent(args)

	if !args.Handled && e.IsCtrl('c') {
		debug.Log("Host: Ctrl+C, exiting")
		h.RequestExit()
	}
}
