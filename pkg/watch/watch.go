package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/df07/go-ppm-raytracer/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces
const DefaultDebounce = 100 * time.Millisecond

// Watcher calls a handler whenever one file is created or written
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(ctx context.Context) error
}

// NewWatcher creates a watcher for path
func NewWatcher(path string, onChange func(ctx context.Context) error) *Watcher {
	return &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		onChange: onChange,
	}
}

// SetDebounce changes the quiet period before onChange runs
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run blocks until ctx is done. The parent directory is watched so that
// editors that replace the file on save are still seen. Handler errors are
// logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsWatch.Close()

	target, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}
	if err := fsWatch.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	logging.Info("watching for changes", "path", w.path)

	// Armed only after a matching event
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case e, ok := <-fsWatch.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(e.Name)
			if err != nil || name != target {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fsWatch.Errors:
			if !ok {
				return nil
			}
			logging.Error("watch error", "err", err)

		case <-timer.C:
			logging.Info("change detected", "path", w.path)
			if err := w.onChange(ctx); err != nil {
				logging.Error("re-render failed", "err", err)
			}

		case <-ctx.Done():
			return nil
		}
	}
}

// Run watches path until ctx is done, calling onChange after each change
func Run(ctx context.Context, path string, onChange func(ctx context.Context) error) error {
	return NewWatcher(path, onChange).Run(ctx)
}
