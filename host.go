package tuist

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/tuist/internal/debug"
)

// Host drives a terminal session: it owns the screen buffer, the root
// element, the focus manager and the dispatch queue, and runs one frame per
// tick until RequestExit is called.
//
// The element tree, focus manager and buffer belong to the goroutine calling
// Run. Other goroutines reach them only through Dispatch.
type Host struct {
	term  Terminal
	input InputReader
	buf   *ScreenBuffer
	focus *FocusManager
	root  Node
	hover []Node

	// needsLayout is set when the tree or the screen size changed since the
	// last layout, so mouse hit testing must lay out first.
	needsLayout bool

	onResize []func(width, height int)

	mu    sync.Mutex
	queue []func()
	exit  atomic.Bool

	// Configuration (set via options)
	frameInterval time.Duration
	mouse         bool
	altScreen     bool
	focusKey      Key
}

// NewHost creates a host drawing to term and reading from input. The buffer
// starts at the terminal's current size.
func NewHost(term Terminal, input InputReader, opts ...HostOption) (*Host, error) {
	if term == nil || input == nil {
		precondition("NewHost", ErrNilTerminal)
	}
	h := &Host{
		term:          term,
		input:         input,
		focus:         NewFocusManager(),
		frameInterval: 16 * time.Millisecond,
		mouse:         true,
		altScreen:     true,
		focusKey:      KeyTab,
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	w, ht := term.Size()
	h.buf = NewScreenBuffer(w, ht)
	return h, nil
}

// SetRoot replaces the element tree. Focus and hover state pointing into the
// old tree are dropped before the next input is processed.
func (h *Host) SetRoot(root Node) {
	if root == nil {
		precondition("SetRoot", ErrNilNode)
	}
	debug.Log("Host.SetRoot: %s", root.Base())
	h.root = root
	h.needsLayout = true
	h.focus.Validate(root)
	h.validateHover()
}

// Root returns the current root, or nil.
func (h *Host) Root() Node {
	return h.root
}

// Focus returns the focus manager.
func (h *Host) Focus() *FocusManager {
	return h.focus
}

// Buffer returns the screen buffer.
func (h *Host) Buffer() *ScreenBuffer {
	return h.buf
}

// Size returns the current screen size.
func (h *Host) Size() Size {
	return h.buf.Size()
}

// OnResize registers fn to run on the host goroutine after the terminal size
// changes. Listeners run in registration order.
func (h *Host) OnResize(fn func(width, height int)) {
	if fn == nil {
		precondition("OnResize", ErrNilAction)
	}
	h.onResize = append(h.onResize, fn)
}

// Dispatch queues fn to run on the host goroutine at the start of the next
// tick. Actions run in the order they were queued. Safe to call from any
// goroutine, including from inside an action.
func (h *Host) Dispatch(fn func()) {
	if fn == nil {
		precondition("Dispatch", ErrNilAction)
	}
	h.mu.Lock()
	h.queue = append(h.queue, fn)
	h.mu.Unlock()
}

// RequestExit asks Run to return after the current frame. Safe to call from
// any goroutine.
func (h *Host) RequestExit() {
	h.exit.Store(true)
}

// Exiting reports whether an exit has been requested.
func (h *Host) Exiting() bool {
	return h.exit.Load()
}

// drain runs queued actions until the queue is empty, including actions
// queued by the actions themselves.
func (h *Host) drain() {
	for {
		h.mu.Lock()
		batch := h.queue
		h.queue = nil
		h.mu.Unlock()
		if len(batch) == 0 {
			return
		}
		// Actions may restructure the tree.
		h.needsLayout = true
		for _, fn := range batch {
			fn()
		}
	}
}

// checkResize reallocates the buffer and clears the display when the
// terminal size changed since the last tick.
func (h *Host) checkResize() error {
	w, ht := h.term.Size()
	if w == h.buf.Width() && ht == h.buf.Height() {
		return nil
	}
	debug.Log("Host: resize %dx%d -> %dx%d", h.buf.Width(), h.buf.Height(), w, ht)
	h.buf.Resize(w, ht)
	h.needsLayout = true
	if err := h.term.Clear(); err != nil {
		return fmt.Errorf("clear after resize: %w", err)
	}
	for _, fn := range h.onResize {
		fn(w, ht)
	}
	return nil
}
