package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldIgnoreEvent(t *testing.T) {
	tests := []struct {
		path   string
		ignore bool
	}{
		{"/in/ev/example.md", false},
		{"/in/ev/meta.toml", false},
		{"/in/ev/diagram.png", false},
		{"/in/ev/.example.md.swp", true},
		{"/in/ev/example.md.swp", true},
		{"/in/ev/example.md~", true},
		{"/in/ev/#example.md#", true},
		{"/in/ev/.#example.md", true},
		{"/in/.git", true},
		{"/in/ev/.DS_Store", true},
		{"/in/ev/Thumbs.db", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ignore, shouldIgnoreEvent(tt.path), tt.path)
	}
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	req, trigger, stop := setupRebuildDebouncer(30 * time.Millisecond)
	defer stop()

	for range 10 {
		trigger()
	}

	select {
	case <-req:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a rebuild request")
	}
	select {
	case <-req:
		t.Fatal("burst produced more than one request")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	req, trigger, stop := setupRebuildDebouncer(50 * time.Millisecond)
	trigger()
	stop()

	select {
	case <-req:
		t.Fatal("stopped debouncer fired")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestIsIgnoredPath(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "out")
	w := New(root, nil).Ignore(out)

	assert.True(t, w.isIgnoredPath(out))
	assert.True(t, w.isIgnoredPath(filepath.Join(out, "ev", "index.md")))
	assert.False(t, w.isIgnoredPath(filepath.Join(root, "outline.md")))
}

func TestRun_RebuildsOnChange(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ev"), 0o755))

	var builds atomic.Int32
	w := New(root, func(context.Context) error {
		builds.Add(1)
		return nil
	}).WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return builds.Load() == 1 }, 2*time.Second, 10*time.Millisecond, "initial build")

	require.NoError(t, os.WriteFile(filepath.Join(root, "ev", "example.md"), []byte("hi"), 0o644))
	require.Eventually(t, func() bool { return builds.Load() >= 2 }, 5*time.Second, 10*time.Millisecond, "rebuild after change")

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
