//go:build unix

package tuist

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// NewStdinReader reads input from f, normally os.Stdin, using select(2)
// for the non-blocking availability check.
func NewStdinReader(f *os.File) InputReader {
	fd := int(f.Fd())
	return newByteReader(f, func(timeout time.Duration) (bool, error) {
		return selectReadable(fd, timeout)
	}, nil)
}

// selectReadable reports whether fd has data within timeout.
// A negative timeout blocks indefinitely.
func selectReadable(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		t := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &t
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		// EINTR is expected when signals arrive
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
