package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroot/watch"
)

// TestWatcher_Run fires once per burst of writes to the watched file and
// ignores siblings.
func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("function:\n  f: x\n"), 0o600))

	w, err := watch.New(path, 30*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func() { calls.Add(1) }) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600))
	for i := range 3 {
		require.NoError(t, os.WriteFile(path, []byte("function:\n  f: x-"+string(rune('1'+i))+"\n"), 0o600))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "burst collapsed into one callback")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

// TestWatcher_RunTwice rejects a concurrent second Run.
func TestWatcher_RunTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	w, err := watch.New(path, 0, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx, func() {}) }()
	time.Sleep(100 * time.Millisecond)

	second := make(chan error, 1)
	go func() { second <- w.Run(ctx, func() {}) }()
	select {
	case err := <-second:
		assert.ErrorIs(t, err, watch.ErrRunning)
	case <-time.After(time.Second):
		t.Fatal("second Run did not return")
	}
}

// TestWatcher_MissingDir surfaces the fsnotify error.
func TestWatcher_MissingDir(t *testing.T) {
	w, err := watch.New(filepath.Join(t.TempDir(), "nope", "run.yaml"), 0, nil)
	require.NoError(t, err)
	assert.Error(t, w.Run(context.Background(), func() {}))
}

// TestNew_EmptyPath is rejected.
func TestNew_EmptyPath(t *testing.T) {
	_, err := watch.New("", 0, nil)
	assert.Error(t, err)
}

// TestDebouncer_Trigger collapses rapid triggers into one call.
func TestDebouncer_Trigger(t *testing.T) {
	d := watch.NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for range 5 {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

// TestDebouncer_Stop cancels a pending call.
func TestDebouncer_Stop(t *testing.T) {
	d := watch.NewDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Stop()
	d.Trigger(func() { calls.Add(1) })

	time.Sleep(120 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

// TestDebouncer_StopWaitsForRunningCallback blocks Stop until the callback
// that already started has returned.
func TestDebouncer_StopWaitsForRunningCallback(t *testing.T) {
	d := watch.NewDebouncer(10 * time.Millisecond)

	var started, finished atomic.Bool
	d.Trigger(func() {
		started.Store(true)
		time.Sleep(150 * time.Millisecond)
		finished.Store(true)
	})
	require.Eventually(t, started.Load, time.Second, 5*time.Millisecond)

	d.Stop()
	assert.True(t, finished.Load(), "Stop returned while the callback was running")
}

// TestWatcher_RunWaitsForInflightChange cancels the context mid-callback and
// expects Run to return only after the callback completed.
func TestWatcher_RunWaitsForInflightChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))
	w, err := watch.New(path, 10*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var started, finished atomic.Bool
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() {
			started.Store(true)
			time.Sleep(200 * time.Millisecond)
			finished.Store(true)
		})
	}()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("b"), 0o600))
	require.Eventually(t, started.Load, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.True(t, finished.Load(), "Run returned before the callback completed")
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
