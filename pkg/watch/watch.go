// Package watch re-runs an action whenever a file changes on disk.
//
// It watches the file's directory rather than the file itself so editors that
// save by writing a temporary file and renaming it over the original are
// still seen. Bursts of events within the debounce window collapse into a
// single call.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/matte/pkg/errors"
)

// DefaultDebounce is how long a file must stay quiet before the action runs.
const DefaultDebounce = 300 * time.Millisecond

// Action is called once per settled change. Returned errors are logged and
// do not stop the watcher.
type Action func(ctx context.Context, path string) error

// Watcher calls an Action when a single file changes.
type Watcher struct {
	path     string
	action   Action
	debounce time.Duration
	logger   *log.Logger

	mu   sync.Mutex
	runs int
}

// New creates a watcher for path. A debounce of zero uses DefaultDebounce.
func New(path string, action Action, debounce time.Duration, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", path)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{path: abs, action: action, debounce: debounce, logger: logger}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Runs returns how many times the action has been called.
func (w *Watcher) Runs() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runs
}

// Run blocks until ctx is done, calling the action after each settled change.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create watcher")
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return errors.FromOS(err, "watch %s", filepath.Dir(w.path))
	}
	w.logger.Debug("watching", "path", w.path, "debounce", w.debounce)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change", "op", event.Op.String(), "path", event.Name)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)

		case <-timer.C:
			w.fire(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) fire(ctx context.Context) {
	w.mu.Lock()
	w.runs++
	w.mu.Unlock()

	if err := w.action(ctx, w.path); err != nil {
		w.logger.Error("action failed", "path", w.path, "err", errors.UserMessage(err))
	}
}
