// Package watch implements an optional filesystem watch trigger (§3
// supplement to spec.md, which defines incremental mode only in terms
// of "a prior snapshot" and leaves what schedules a re-walk unspecified).
// It is modeled on the teacher's internal/indexing.FileWatcher and its
// eventDebouncer: a recursive fsnotify watch tree plus a debounced
// callback, but with no indexing/search/embedding logic of its own —
// Watcher only ever calls back into whatever the caller wired as
// OnChange, which in this repo is the Directory Driver's
// RunIncremental.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/standardbeagle/snipcore/internal/config"
	"github.com/standardbeagle/snipcore/internal/debug"
)

// DefaultDebounce matches the teacher's watch_debounce_ms default.
const DefaultDebounce = 500 * time.Millisecond

// OnChange is invoked once per debounced batch of filesystem activity
// under the watched root.
type OnChange func()

// Watcher recursively watches a root directory, applying the same
// ignore_patterns a Directory Driver run would, and coalesces bursts of
// fsnotify events into a single OnChange call per debounce window.
type Watcher struct {
	fsw      *fsnotify.Watcher
	root     string
	patterns []string
	debounce time.Duration
	onChange OnChange

	mu    sync.Mutex
	timer *time.Timer
	dirty bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New returns a Watcher over root. A zero debounce uses DefaultDebounce.
func New(root string, dcfg config.DirectoryConfig, debounce time.Duration, onChange OnChange) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		fsw:      fsw,
		root:     root,
		patterns: dcfg.IgnorePatterns,
		debounce: debounce,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start adds recursive watches under root and begins processing events
// on a background goroutine.
func (w *Watcher) Start() error {
	if err := w.addWatches(w.root); err != nil {
		return err
	}
	w.wg.Add(1)
	go w.run()
	return nil
}

// Stop halts event processing and releases the underlying fsnotify
// watcher. Events pending inside the debounce window are dropped rather
// than flushed: flushing during shutdown can race a caller already
// tearing down whatever OnChange touches.
func (w *Watcher) Stop() error {
	w.cancel()
	err := w.fsw.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.dirty = false
	w.mu.Unlock()
	return err
}

func (w *Watcher) addWatches(root string) error {
	visited := map[string]bool{}
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}

		real, err := filepath.EvalSymlinks(path)
		if err != nil {
			return nil
		}
		if visited[real] {
			return filepath.SkipDir
		}
		visited[real] = true

		if rel, err := filepath.Rel(w.root, path); err == nil && rel != "." {
			if w.ignored(filepath.ToSlash(rel)) {
				return filepath.SkipDir
			}
		}

		if err := w.fsw.Add(path); err != nil {
			debug.LogWalk("watch: failed to add watch for %s: %v", path, err)
		}
		return nil
	})
}

func (w *Watcher) ignored(relPath string) bool {
	segments := strings.Split(relPath, "/")
	for _, pattern := range w.patterns {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
		for _, seg := range segments {
			if ok, _ := doublestar.Match(pattern, seg); ok {
				return true
			}
		}
	}
	return false
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if rel, err := filepath.Rel(w.root, event.Name); err == nil && w.ignored(filepath.ToSlash(rel)) {
		return
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.addWatches(event.Name)
		}
	}

	w.scheduleFlush()
}

func (w *Watcher) scheduleFlush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dirty = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if !w.dirty {
		w.mu.Unlock()
		return
	}
	w.dirty = false
	w.mu.Unlock()

	if w.onChange != nil {
		w.onChange()
	}
}
