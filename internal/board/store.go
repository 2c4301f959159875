package board

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/tuist/internal/debug"
)

// DefaultDebounce is how long Watch waits for writes to settle before
// reloading.
const DefaultDebounce = 100 * time.Millisecond

// Store reads and writes a board file.
type Store struct {
	path     string
	debounce time.Duration

	mu sync.Mutex
	// last is the content most recently written by Save, so Watch can skip
	// the events caused by our own writes.
	last []byte
}

// NewStore returns a store for the YAML file at path.
func NewStore(path string) *Store {
	return &Store{path: path, debounce: DefaultDebounce}
}

// Path returns the board file path.
func (s *Store) Path() string {
	return s.path
}

// SetDebounce changes the reload delay used by Watch.
func (s *Store) SetDebounce(d time.Duration) {
	s.debounce = d
}

// Load reads the board file. A missing file yields Default.
func (s *Store) Load() (*Board, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}
	return Decode(data)
}

// Save writes b to the board file, replacing it atomically.
func (s *Store) Save(b *Board) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating board directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing board: %w", err)
	}

	s.mu.Lock()
	s.last = data
	s.mu.Unlock()

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing board: %w", err)
	}
	return nil
}

// Decode parses a board document.
func Decode(data []byte) (*Board, error) {
	b := &Board{}
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("parsing board: %w", err)
	}
	b.Normalize()
	return b, nil
}

// Encode renders b as YAML.
func Encode(b *Board) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("encoding board: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding board: %w", err)
	}
	return buf.Bytes(), nil
}

// Watch calls onChange with the reloaded board whenever the file changes on
// disk, until ctx is done. Bursts of events within the debounce window
// produce one reload. Changes that match the last Save are skipped. Load
// errors are passed to onChange with a nil board.
//
// The parent directory is watched rather than the file so that editors which
// replace the file on save keep being noticed.
func (s *Store) Watch(ctx context.Context, onChange func(*Board, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	name := filepath.Clean(s.path)

	timer := time.NewTimer(s.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(s.debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			debug.Log("board.Store.Watch: %v", err)
		case <-timer.C:
			s.reload(onChange)
		}
	}
}

func (s *Store) reload(onChange func(*Board, error)) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		// replaced mid-rename; the create event that follows triggers a reload
		return
	}
	if err != nil {
		onChange(nil, fmt.Errorf("reading board: %w", err))
		return
	}

	s.mu.Lock()
	own := bytes.Equal(data, s.last)
	s.mu.Unlock()
	if own {
		return
	}

	b, err := Decode(data)
	if err != nil {
		onChange(nil, err)
		return
	}
	debug.Log("board.Store.Watch: reloaded %s", s.path)
	onChange(b, nil)
}
