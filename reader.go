package tuist

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// InputReader supplies terminal input to the host loop.
type InputReader interface {
	// Available reports, without blocking, whether Read has an event ready.
	Available() bool
	// Read returns the next event, blocking until one arrives.
	Read() (Event, error)
	// Close releases resources. Must be called when done.
	Close() error
}

// escTimeout is how long a trailing ESC or partial sequence may wait for
// the rest of its bytes before being decoded as typed.
const escTimeout = 50 * time.Millisecond

// byteReader turns a byte stream plus a readiness probe into events.
// Incomplete escape sequences are held across reads.
type byteReader struct {
	r       io.Reader
	ready   func(timeout time.Duration) (bool, error)
	closeFn func() error

	pending   []Event
	partial   []byte
	partialAt time.Time
	err       error
	buf       [256]byte
	now       func() time.Time
}

func newByteReader(r io.Reader, ready func(time.Duration) (bool, error), closeFn func() error) *byteReader {
	return &byteReader{r: r, ready: ready, closeFn: closeFn, now: time.Now}
}

// Available implements InputReader. A read error, including io.EOF, counts
// as available so that Read can report it.
func (b *byteReader) Available() bool {
	if len(b.pending) > 0 || b.err != nil {
		return true
	}
	if err := b.fill(0); err != nil {
		b.err = err
		return true
	}
	return len(b.pending) > 0
}

// Read implements InputReader. Events decoded before a read error are
// returned first; after that the error is returned on every call.
func (b *byteReader) Read() (Event, error) {
	for len(b.pending) == 0 {
		if b.err != nil {
			return nil, b.err
		}
		timeout := time.Duration(-1)
		if len(b.partial) > 0 {
			timeout = max(0, escTimeout-b.now().Sub(b.partialAt))
		}
		if err := b.fill(timeout); err != nil {
			b.err = err
		}
	}
	ev := b.pending[0]
	b.pending = b.pending[1:]
	return ev, nil
}

// Close implements InputReader.
func (b *byteReader) Close() error {
	if b.closeFn == nil {
		return nil
	}
	return b.closeFn()
}

func (b *byteReader) fill(timeout time.Duration) error {
	ok, err := b.ready(timeout)
	if err != nil {
		return fmt.Errorf("poll input: %w", err)
	}
	if !ok {
		if len(b.partial) > 0 && b.now().Sub(b.partialAt) >= escTimeout {
			events, _ := parseInput(b.partial, true)
			b.pending = append(b.pending, events...)
			b.partial = nil
		}
		return nil
	}

	n, err := b.r.Read(b.buf[:])
	if n > 0 {
		data := append(b.partial, b.buf[:n]...)
		events, rest := parseInput(data, false)
		b.pending = append(b.pending, events...)
		if len(rest) > 0 && len(b.partial) == 0 {
			b.partialAt = b.now()
		}
		b.partial = append([]byte(nil), rest...)
	}
	if err != nil {
		if len(b.partial) > 0 {
			events, _ := parseInput(b.partial, true)
			b.pending = append(b.pending, events...)
			b.partial = nil
		}
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
