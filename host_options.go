package tuist

import (
	"fmt"
	"time"
)

// HostOption is a functional option for configuring a Host.
type HostOption func(*Host) error

// WithFrameInterval sets the target time per frame. Default is 16ms
// (about 60 fps). The interval must be positive.
func WithFrameInterval(d time.Duration) HostOption {
	return func(h *Host) error {
		if d <= 0 {
			return fmt.Errorf("frame interval must be positive, got %v", d)
		}
		h.frameInterval = d
		return nil
	}
}

// WithFrameRate sets the target frame rate. Valid range is 1-240 fps.
func WithFrameRate(fps int) HostOption {
	return func(h *Host) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		h.frameInterval = time.Second / time.Duration(fps)
		return nil
	}
}

// WithMouse turns SGR mouse reporting on or off for the session.
// By default, mouse reporting is enabled.
func WithMouse(enabled bool) HostOption {
	return func(h *Host) error {
		h.mouse = enabled
		return nil
	}
}

// WithFocusKey sets the key that moves focus: forward when pressed alone,
// backward with Shift. Default is KeyTab. KeyNone disables focus traversal
// from the keyboard so every key reaches the tree.
func WithFocusKey(k Key) HostOption {
	return func(h *Host) error {
		if k == KeyRune {
			return fmt.Errorf("focus key must be a special key, not KeyRune")
		}
		h.focusKey = k
		return nil
	}
}

// WithAltScreen controls whether the session runs on the alternate screen
// buffer. By default, it does.
func WithAltScreen(enabled bool) HostOption {
	return func(h *Host) error {
		h.altScreen = enabled
		return nil
	}
}
