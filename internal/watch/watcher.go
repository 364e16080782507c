package watch

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatcherIface delivers a signal whenever the watched file may have changed.
type WatcherIface interface {
	Events() <-chan struct{}
	Errors() <-chan error
	Close()
}

// Watcher watches a single file by watching its parent directory, so that
// atomic replace-by-rename is seen as well as in-place writes.
type Watcher struct {
	events chan struct{}
	errs   chan error
	done   chan struct{}
	fw     *fsnotify.Watcher
	path   string
}

// compile-time check
var _ WatcherIface = (*Watcher)(nil)

// New creates and starts a watcher for path. The parent directory is
// created if it does not exist.
func New(path string) (*Watcher, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		events: make(chan struct{}, 1),
		errs:   make(chan error, 4),
		done:   make(chan struct{}),
		fw:     fw,
		path:   filepath.Clean(path),
	}
	go w.loop()
	return w, nil
}

// Events returns the channel signalled after each change to the file.
// Bursts of changes collapse into a single pending signal.
func (w *Watcher) Events() <-chan struct{} { return w.events }

// Errors returns the channel of watch failures. Errors are dropped while
// the buffer is full.
func (w *Watcher) Errors() <-chan error { return w.errs }

func (w *Watcher) loop() {
	defer close(w.errs)
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() {
	close(w.done)
	w.fw.Close()
}
