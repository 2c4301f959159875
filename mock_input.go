package tuist

import (
	"io"
	"sync"
)

// MockInputReader is an InputReader fed from memory, for tests.
// Push may be called from any goroutine.
type MockInputReader struct {
	mu     sync.Mutex
	events []Event
	closed bool
}

var _ InputReader = (*MockInputReader)(nil)

// NewMockInputReader creates a reader preloaded with events.
func NewMockInputReader(events ...Event) *MockInputReader {
	return &MockInputReader{events: events}
}

// Push queues more events.
func (m *MockInputReader) Push(events ...Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
}

// PushBytes decodes raw terminal bytes and queues the resulting events.
func (m *MockInputReader) PushBytes(data []byte) {
	events, _ := parseInput(data, true)
	m.Push(events...)
}

// Available implements InputReader.
func (m *MockInputReader) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events) > 0
}

// Read implements InputReader. It returns io.EOF once the queue is empty.
func (m *MockInputReader) Read() (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.events) == 0 {
		return nil, io.EOF
	}
	ev := m.events[0]
	m.events = m.events[1:]
	return ev, nil
}

// Close implements InputReader.
func (m *MockInputReader) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockInputReader) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
