package tuist

import (
	"strings"
	"sync"
)

// MockTerminal is a Terminal for tests. It applies flushed runs to an
// in-memory cell grid and records every call.
type MockTerminal struct {
	mu            sync.Mutex
	width, height int
	cells         []Cell

	calls   []string
	flushes [][]Run

	altScreen    bool
	cursorHidden bool
	mouseEnabled bool
	closed       bool
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{}
	m.Resize(width, height)
	return m
}

// Resize changes the reported size and blanks the grid, as a real terminal
// would after a resize followed by a clear.
func (m *MockTerminal) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = width, height
	m.cells = make([]Cell, width*height)
	m.clearLocked()
}

func (m *MockTerminal) clearLocked() {
	for i := range m.cells {
		m.cells[i] = blank
	}
}

func (m *MockTerminal) record(call string) {
	m.calls = append(m.calls, call)
}

// Size implements Terminal.
func (m *MockTerminal) Size() (width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// Flush implements Terminal by writing each run into the grid.
func (m *MockTerminal) Flush(runs []Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Flush")
	m.flushes = append(m.flushes, runs)
	for _, r := range runs {
		x := r.X
		for _, ch := range r.Text {
			if x >= 0 && x < m.width && r.Y >= 0 && r.Y < m.height {
				m.cells[r.Y*m.width+x] = Cell{Rune: ch, Style: r.Style}
			}
			if RuneWidth(ch) == 2 && x+1 < m.width {
				m.cells[r.Y*m.width+x+1] = Cell{Rune: 0, Style: r.Style}
			}
			x += RuneWidth(ch)
		}
	}
	return nil
}

// Clear implements Terminal.
func (m *MockTerminal) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Clear")
	m.clearLocked()
	return nil
}

// EnterAltScreen implements Terminal.
func (m *MockTerminal) EnterAltScreen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("EnterAltScreen")
	m.altScreen = true
	return nil
}

// ExitAltScreen implements Terminal.
func (m *MockTerminal) ExitAltScreen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ExitAltScreen")
	m.altScreen = false
	return nil
}

// HideCursor implements Terminal.
func (m *MockTerminal) HideCursor() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("HideCursor")
	m.cursorHidden = true
	return nil
}

// ShowCursor implements Terminal.
func (m *MockTerminal) ShowCursor() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ShowCursor")
	m.cursorHidden = false
	return nil
}

// EnableMouse implements Terminal.
func (m *MockTerminal) EnableMouse() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("EnableMouse")
	m.mouseEnabled = true
	return nil
}

// DisableMouse implements Terminal.
func (m *MockTerminal) DisableMouse() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DisableMouse")
	m.mouseEnabled = false
	return nil
}

// Close implements Terminal.
func (m *MockTerminal) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Close")
	m.closed = true
	return nil
}

// Calls returns the names of the methods called so far, in order.
func (m *MockTerminal) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Flushes returns the runs passed to each Flush call.
func (m *MockTerminal) Flushes() [][]Run {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]Run(nil), m.flushes...)
}

// InAltScreen reports whether the alternate screen is active.
func (m *MockTerminal) InAltScreen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.altScreen
}

// CursorHidden reports whether the cursor is hidden.
func (m *MockTerminal) CursorHidden() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorHidden
}

// MouseEnabled reports whether mouse reporting is on.
func (m *MockTerminal) MouseEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mouseEnabled
}

// Closed reports whether Close was called.
func (m *MockTerminal) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// CellAt returns the displayed cell at (x, y).
func (m *MockTerminal) CellAt(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// String returns the displayed text, one line per row.
func (m *MockTerminal) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < m.width; x++ {
			if c := m.cells[y*m.width+x]; !c.IsContinuation() {
				sb.WriteRune(c.Rune)
			}
		}
	}
	return sb.String()
}
