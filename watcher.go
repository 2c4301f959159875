package tuist

import (
	"context"
	"time"

	"github.com/grindlemire/tuist/internal/debug"
)

// Watcher is a background event source. Its handler runs on the host
// goroutine through the dispatch function it is started with.
type Watcher interface {
	// Start launches the watcher goroutine. It stops when ctx is done.
	Start(ctx context.Context, dispatch func(func()))
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// NewChannelWatcher creates a watcher that calls fn for each value received on ch.
// The handler is called on the host goroutine, not in a separate goroutine.
//
// Example:
//
//	results := make(chan string)
//	h.StartWatchers(ctx, tuist.NewChannelWatcher(results, func(s string) {
//	    status.SetText(s)
//	}))
func NewChannelWatcher[T any](ch <-chan T, fn func(T)) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{
		ch:      ch,
		handler: fn,
	}
}

// Start the watcher. It exits when ctx is done or ch is closed.
func (w *ChannelWatcher[T]) Start(ctx context.Context, dispatch func(func())) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case val, ok := <-w.ch:
				if !ok {
					return
				}
				dispatch(func() { w.handler(val) })
			}
		}
	}()
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer creates a timer watcher that fires at the given interval.
// The handler is called on the host goroutine.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

// Start the watcher.
func (w *timerWatcher) Start(ctx context.Context, dispatch func(func())) {
	go func() {
		debug.Log("timerWatcher started: %s", w.interval)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				dispatch(w.handler)
			}
		}
	}()
}

// StartWatchers starts each watcher, delivering its handlers through
// Dispatch. They stop when ctx is done.
func (h *Host) StartWatchers(ctx context.Context, watchers ...Watcher) {
	for _, w := range watchers {
		if w == nil {
			precondition("StartWatchers", ErrNilAction)
		}
		w.Start(ctx, h.Dispatch)
	}
}
