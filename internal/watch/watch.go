// Package watch re-runs a conversion when its source file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/JehandadK/swagger-parser/parser"
)

// DefaultDebounce coalesces the events a single editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// File calls onChange after path is written or replaced, until ctx is done.
//
// The parent directory is watched rather than the file itself, since many
// editors save by renaming a new file over the old one. Errors from onChange
// are logged and do not end the watch.
func File(ctx context.Context, path string, debounce time.Duration, logger parser.Logger, onChange func() error) error {
	if logger == nil {
		logger = parser.NopLogger{}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: adding %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("watching for changes", "path", abs)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			logger.Debug("source changed", "path", abs)
			if err := onChange(); err != nil {
				logger.Warn("re-conversion failed", "path", abs, "error", err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
