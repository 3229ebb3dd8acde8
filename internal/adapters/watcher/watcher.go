package watcher

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify. Directories are watched as a whole,
// files through their parent directory with events for siblings dropped.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	debouncer *Debouncer

	// dirs maps a watched directory to the files of interest inside it.
	// A nil set accepts every entry.
	dirs map[string]map[string]bool

	events chan ports.WatchEvent
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewWatcher creates a new watcher that batches events within window.
func NewWatcher(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		dirs:      make(map[string]map[string]bool),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w, nil
}

// Start begins watching paths. Every path must exist.
func (w *Watcher) Start(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		path = filepath.Clean(path)
		info, err := os.Stat(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
		}

		dir := path
		if !info.IsDir() {
			dir = filepath.Dir(path)
		}
		if err := w.watchDir(dir, path, info.IsDir()); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

func (w *Watcher) watchDir(dir, path string, whole bool) error {
	files, watched := w.dirs[dir]
	if !watched {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
		}
	}

	switch {
	case whole:
		w.dirs[dir] = nil
	case watched && files == nil:
		// Already watching the whole directory.
	default:
		if files == nil {
			files = make(map[string]bool)
		}
		files[path] = true
		w.dirs[dir] = files
	}
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced file system events.
// It ends when the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if watchEvent, ok := w.convertEvent(event); ok {
				w.debouncer.Add(watchEvent)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

func (w *Watcher) shutdown() {
	w.debouncer.Flush()
	close(w.done)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	close(w.events)
}

func (w *Watcher) emit(events []ports.WatchEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	for _, event := range events {
		select {
		case w.events <- event:
		case <-w.done:
			return
		}
	}
}

// convertEvent maps an fsnotify event onto a ports.WatchEvent and filters unwatched files.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	path := filepath.Clean(event.Name)
	files, ok := w.dirs[filepath.Dir(path)]
	if !ok || (files != nil && !files[path]) {
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
	return ports.WatchEvent{Path: path, Operation: op}, true
}
