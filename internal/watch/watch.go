// Package watch regenerates the output tree whenever the input tree changes.
// Every change triggers a full regeneration; bursts of events are debounced.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/ctfpress/internal/logfields"
)

// DefaultDebounce is the quiet period after the last change before rebuilding.
const DefaultDebounce = 300 * time.Millisecond

// RebuildFunc regenerates the output. Its error is logged and watching continues.
type RebuildFunc func(ctx context.Context) error

// Watcher watches an input tree and invokes a RebuildFunc on changes.
type Watcher struct {
	root     string
	rebuild  RebuildFunc
	debounce time.Duration
	ignored  []string
}

// New returns a Watcher over root.
func New(root string, rebuild RebuildFunc) *Watcher {
	return &Watcher{root: root, rebuild: rebuild, debounce: DefaultDebounce}
}

// WithDebounce overrides the debounce interval.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Ignore excludes events below path, typically the output root when it
// lives inside the input tree.
func (w *Watcher) Ignore(path string) *Watcher {
	if abs, err := filepath.Abs(path); err == nil {
		w.ignored = append(w.ignored, abs)
	}
	return w
}

// Run performs an initial rebuild and then rebuilds after every debounced
// change until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	absRoot, err := filepath.Abs(w.root)
	if err != nil {
		return fmt.Errorf("resolve watch root: %w", err)
	}
	watcher, err := setupFileWatcher(absRoot)
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()

	w.runRebuild(ctx)

	rebuildReq, trigger, stop := setupRebuildDebouncer(w.debounce)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-rebuildReq:
				w.runRebuild(ctx)
			}
		}
	}()

	slog.Info("Watching for changes", logfields.Path(absRoot))
	for {
		select {
		case <-ctx.Done():
			<-done
			slog.Info("Stopped watching", logfields.Path(absRoot))
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleFileEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) runRebuild(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	if err := w.rebuild(ctx); err != nil {
		slog.Warn("Rebuild failed", logfields.Error(err))
		return
	}
	slog.Info("Rebuild complete", logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
}

func (w *Watcher) handleFileEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) || w.isIgnoredPath(ev.Name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

func (w *Watcher) isIgnoredPath(path string) bool {
	for _, dir := range w.ignored {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func setupFileWatcher(root string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	if err := addDirsRecursive(watcher, root); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return watcher, nil
}

// setupRebuildDebouncer returns a request channel, a trigger that (re)arms
// the debounce timer and a stop function. Requests coalesce: at most one is
// pending at a time.
func setupRebuildDebouncer(delay time.Duration) (<-chan struct{}, func(), func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return rebuildReq, trigger, stop
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not trigger rebuilds.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	// Hidden files, including .git and editor lock files like .#name
	if strings.HasPrefix(base, ".") {
		return true
	}

	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}

	return base == "Thumbs.db"
}
