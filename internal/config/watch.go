package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the burst of events editors emit for a single save.
const debounce = 100 * time.Millisecond

// Watcher reports changes to a single configuration file.
// The parent directory is watched so that atomic rename-on-save editors
// are handled.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Changes chan Config
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// NewWatcher starts watching the given config file.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher: fw,
		path:    abs,
		Changes: make(chan Config, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
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
			cfg, err := Reload(w.path)
			if err != nil {
				w.send(w.Errors, err)
				continue
			}
			w.sendConfig(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(w.Errors, err)
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// sendConfig replaces any pending, unread config with the newest one.
func (w *Watcher) sendConfig(cfg Config) {
	select {
	case <-w.Changes:
	default:
	}
	select {
	case w.Changes <- cfg:
	case <-w.closeCh:
	}
}

func (w *Watcher) send(ch chan error, err error) {
	select {
	case ch <- err:
	default: // Drop if the consumer is behind; the next error will surface
	}
}
