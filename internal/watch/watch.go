// Package watch re-runs a callback when the configuration file, the docs
// directory or the assets directory change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/necroplankton/sitecfg/internal/logfields"
)

// DefaultDebounce coalesces editor save bursts into one reload.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls fn at most once per debounce window after a change under
// one of its paths.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{} // watched files, by absolute path
	dirs     map[string]struct{} // watched directory trees, by absolute path
	debounce time.Duration
	fn       func(context.Context) error
}

// New starts watching paths. A file is watched through its parent directory
// so editors that replace the file on save are still seen; a directory is
// watched recursively. Missing paths are an error.
func New(paths []string, debounce time.Duration, fn func(context.Context) error) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		watcher:  fw,
		files:    map[string]struct{}{},
		dirs:     map[string]struct{}{},
		debounce: debounce,
		fn:       fn,
	}
	for _, p := range paths {
		if err := w.add(p); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(p string) error {
	abs, err := filepath.Abs(p)
	if err != nil {
		return fmt.Errorf("failed to resolve watch path %s: %w", p, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", p, err)
	}
	if !info.IsDir() {
		w.files[abs] = struct{}{}
		if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch directory of %s: %w", p, err)
		}
		return nil
	}
	w.dirs[abs] = struct{}{}
	return w.addTree(abs)
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// relevant reports whether an event on name concerns a watched path.
func (w *Watcher) relevant(name string) bool {
	if _, ok := w.files[name]; ok {
		return true
	}
	for dir := range w.dirs {
		if name == dir || strings.HasPrefix(name, dir+string(filepath.Separator)) {
			return !strings.HasPrefix(filepath.Base(name), ".")
		}
	}
	return false
}

// Run processes events until ctx is done, then closes the watcher. Callback
// errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			slog.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if event.Op.Has(fsnotify.Create) {
				w.watchNewDir(event.Name)
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := w.fn(ctx); err != nil {
				slog.Error("Reload failed", logfields.Error(err))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

// watchNewDir extends a recursive watch to a directory created after start.
func (w *Watcher) watchNewDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.addTree(path); err != nil {
		slog.Warn("Failed to watch new directory", logfields.Path(path), logfields.Error(err))
	}
}
