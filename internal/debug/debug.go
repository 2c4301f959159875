package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "TUIST_DEBUG"

var (
	mu     sync.Mutex
	out    io.Writer
	file   *os.File
	loaded bool
)

// Init opens path for appending and routes log output to it.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

func initLocked(path string) error {
	loaded = true
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	closeLocked()
	file, out = f, f
	return nil
}

// SetOutput routes log output to w; nil disables logging. Tests use it to
// capture messages.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	loaded = true
	out = w
}

// Enabled reports whether messages are being written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	return out != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if file != nil {
		err = file.Close()
	}
	file, out = nil, nil
	return err
}

// loadLocked opens the file named by TUIST_DEBUG the first time it is needed.
func loadLocked() {
	if loaded {
		return
	}
	loaded = true
	if path := os.Getenv(EnvVar); path != "" {
		_ = initLocked(path)
	}
}

// Log writes a timestamped message to the debug log.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	if out == nil {
		return
	}
	fmt.Fprintf(out, "[%s] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}
