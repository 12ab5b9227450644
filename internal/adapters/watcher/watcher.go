// Package watcher keeps a project's domain cache current by reporting
// filesystem changes to the application's re-check loop.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

var skippedDirectories = map[string]bool{
	domain.GitDirName:   true,
	domain.StateDirName: true,
	".jj":               true,
	".hg":               true,
	"node_modules":      true,
	"target":            true,
	"__pycache__":       true,
}

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify. The fsnotify handle is
// created on Start so resolving the adapter costs nothing for one-shot runs.
type Watcher struct {
	logger ports.Logger

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	root      string
	events    chan ports.WatchEvent
}

// NewWatcher creates an unstarted watcher.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start registers root recursively and begins forwarding events until ctx
// is done or Stop is called.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.With(domain.ErrWatcherStartFailed, "reason", "already started")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	for dir := range directories(abs) {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", dir)
		}
	}

	w.fsWatcher = fsw
	w.root = abs
	go w.processEvents(ctx, fsw)

	return nil
}

// Stop closes the fsnotify handle, which ends the event stream.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return domain.ErrWatcherNotStarted
	}
	return w.fsWatcher.Close()
}

// Events returns an iterator of filesystem events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// directories yields root and every directory below it that is not skipped.
func directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are not watched
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skippedDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) processEvents(ctx context.Context, fsw *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

			if watchEvent.Operation == ports.OpCreate {
				w.addCreatedDir(fsw, event.Name)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) addCreatedDir(fsw *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skippedDirectories[info.Name()] {
		return
	}
	for dir := range directories(path) {
		if err := fsw.Add(dir); err != nil {
			w.logger.Debug("cannot watch new directory", "path", dir, "error", err)
		}
	}
}

// convertEvent maps an fsnotify event to a root-relative WatchEvent. Chmod-only
// events and paths inside skipped directories are dropped.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return ports.WatchEvent{}, false
	}
	rel = filepath.ToSlash(rel)
	if insideSkipped(rel) {
		return ports.WatchEvent{}, false
	}

	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}

	return ports.WatchEvent{Path: rel, Operation: op}, true
}

func insideSkipped(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if skippedDirectories[part] {
			return true
		}
	}
	return false
}
