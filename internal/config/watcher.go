package config

import (
	"path/filepath"
	"sync"
	"time"

	"showcase/internal/errors"
	"showcase/internal/log"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path      string
	fsWatcher *fsnotify.Watcher
	onChange  func(*Config)
	debounce  time.Duration
	stopChan  chan struct{}
	done      chan struct{}
	stopOnce  sync.Once
}

// WatchOption adjusts a Watcher built by Watch.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period after the last write before reloading.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) { w.debounce = d }
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file through a rename are still observed. onChange runs on
// the watcher goroutine with the freshly loaded configuration; invalid files
// are logged and skipped. Bursts of writes produce a single reload.
func Watch(path string, onChange func(*Config), opts ...WatchOption) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", filepath.Dir(path))
	}

	w := &Watcher{
		path:      filepath.Clean(path),
		fsWatcher: fsWatcher,
		onChange:  onChange,
		debounce:  DefaultDebounce,
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.loop()
	log.With(log.F("path", path)).Debug("watching config file")
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Errorf("config watcher error: %v", err)
		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadConfigFile(w.path)
	if err != nil {
		log.With(log.F("path", w.path)).Warnf("ignoring config change: %v", err)
		return
	}
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

// Stop ends the watch and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.fsWatcher.Close()
		<-w.done
	})
	return err
}
