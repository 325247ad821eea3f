// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch rebuilds documentation whenever a local definition or
// template file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when New is given a non-positive debounce.
const DefaultDebounce = 300 * time.Millisecond

// RebuildFunc recomputes everything from scratch.
type RebuildFunc func(ctx context.Context) error

// Watcher observes a fixed set of files. Parent directories are watched
// rather than the files themselves so that editors which save by
// renaming a temporary file are still seen.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	logger   *slog.Logger
}

// New starts watching files. Events arriving before Run are kept.
func New(files []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool, len(files)),
		debounce: debounce,
		logger:   logger,
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolving %s: %w", f, err)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	return w, nil
}

// Run calls rebuild once per burst of changes until ctx is done. A failed
// rebuild is logged and watching continues. The watcher is closed on
// return.
func (w *Watcher) Run(ctx context.Context, rebuild RebuildFunc) error {
	defer w.fsw.Close()

	w.logger.Info("Watching for changes", "files", len(w.files), "debounce", w.debounce)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("Change detected", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)

		case <-fire:
			fire = nil
			start := time.Now()
			if err := rebuild(ctx); err != nil {
				w.logger.Error("Rebuild failed", "error", err)
				continue
			}
			w.logger.Info("Rebuilt", "duration", time.Since(start))
		}
	}
}

// Close stops watching without running.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}
