// Package watch reports edits to a file-backed catalog so it can be
// reloaded while the storefront runs.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 250 * time.Millisecond

type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      *slog.Logger
}

// New watches the directory holding path; editors often replace files
// by rename, which a watch on the file itself would miss.
func New(path string, debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = slog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: debounce,
		log:      log,
	}, nil
}

// Run calls onChange once per burst of edits to the catalog file. It
// blocks until ctx is done and releases the watcher before returning.
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("catalog file changed", slog.String("op", ev.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("catalog watcher error", slog.Any("err", err))

		case <-timer.C:
			onChange()
		}
	}
}
