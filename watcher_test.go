package main

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputWatcherDebouncesWrites(t *testing.T) {
	path := writeFile(t, t.TempDir(), "comments.json", `[]`)

	w := newInputWatcher(path, discardLogger())
	w.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.run(ctx, func() { rebuilds.Add(1) })
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`[ ]`), 0o644))
	}

	require.Eventually(t, func() bool { return rebuilds.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), rebuilds.Load(), "a burst of writes triggers one rebuild")

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestInputWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "comments.json", `[]`)

	w := newInputWatcher(path, discardLogger())
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	go w.run(ctx, func() { rebuilds.Add(1) })

	time.Sleep(50 * time.Millisecond)
	writeFile(t, dir, "other.json", `[]`)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), rebuilds.Load())
}
