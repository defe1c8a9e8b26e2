package level

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Change describes a modified level asset.
type Change struct {
	Path    string
	Removed bool
}

// Watcher reports changes to level assets under a directory.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan Change
	stop    chan struct{}
	done    chan struct{}
	logger  *log.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewWatcher starts watching dir. Call Close to stop.
func NewWatcher(dir string, logger *log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("level: create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("level: watch %s: %w", dir, err)
	}
	if logger == nil {
		logger = log.Default()
	}

	w := &Watcher{
		watcher: fw,
		changes: make(chan Change, 16),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		logger:  logger,
	}
	go w.loop()
	return w, nil
}

// Changes returns the channel of asset changes. It is closed by Close.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Close stops the watcher. Later calls return the first result.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.stop)
		w.closeErr = w.watcher.Close()
		<-w.done
	})
	return w.closeErr
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !IsAssetPath(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			removed := event.Op&(fsnotify.Remove|fsnotify.Rename) != 0
			w.logger.Debug("level asset changed", "path", event.Name, "op", event.Op.String())
			select {
			case w.changes <- Change{Path: event.Name, Removed: removed}:
			case <-w.stop:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("level watcher error", "error", err)
		}
	}
}
