// Package watch re-runs a callback when a configuration file changes.
//
// The parent directory is watched rather than the file itself, so editors
// that save by rename-and-replace still trigger a change. Bursts of events
// are collapsed by a Debouncer.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when New receives zero.
const DefaultDebounce = 100 * time.Millisecond

// ErrRunning is returned by Run on a watcher that is already running.
var ErrRunning = errors.New("watch: watcher already running")

// Watcher watches one file.
type Watcher struct {
	path     string
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// New returns a Watcher for path. A debounce <= 0 selects DefaultDebounce.
func New(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch path cannot be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{path: abs, interval: debounce, logger: logger}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run blocks until ctx is cancelled, calling onChange once per debounced
// burst of writes, creates or renames of the watched file. Callbacks never
// overlap, and Run does not return while one is still executing.
// Cancellation is not an error.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrRunning
	}
	w.running = true
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	var callMu sync.Mutex
	debounce := NewDebouncer(w.interval)
	defer debounce.Stop()

	w.logger.Info("watching configuration", "path", w.path, "debounce_ms", w.interval.Milliseconds())

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watcher stopped", "path", w.path)
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())
			debounce.Trigger(func() {
				callMu.Lock()
				defer callMu.Unlock()
				onChange()
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Debouncer runs the latest triggered callback once no new trigger arrived
// for the configured interval.
type Debouncer struct {
	interval time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	callback func()
	stopped  bool
	inflight sync.WaitGroup
}

// NewDebouncer returns a Debouncer with the given quiet period.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger (re)arms the timer with callback. No-op after Stop.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	cb := d.callback
	d.callback = nil
	if cb == nil || d.stopped {
		d.mu.Unlock()
		return
	}
	// Registered under mu, so Stop either sees it or prevents it.
	d.inflight.Add(1)
	d.mu.Unlock()

	defer d.inflight.Done()
	cb()
}

// Stop cancels any pending callback and waits for a running one to return.
// Safe to call twice; must not be called from inside a callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
	d.mu.Unlock()

	d.inflight.Wait()
}
