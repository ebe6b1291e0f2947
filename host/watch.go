package host

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a YAML config file whenever it changes on disk and
// hands each successfully parsed result to the game loop through Updates.
// Files that fail to parse are logged and skipped.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Config
	logger  *slog.Logger
	done    chan struct{}
}

// WatchConfig starts watching path. The parent directory is watched rather
// than the file, so editors that save by renaming a temp file still trigger a
// reload. If logger is nil, slog.Default() is used.
func WatchConfig(path string, logger *slog.Logger) (*ConfigWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("host: watch config: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("host: creating file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("host: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &ConfigWatcher{
		path:    abs,
		watcher: watcher,
		updates: make(chan Config, 1),
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.watchLoop()
	return w, nil
}

// Updates delivers reloaded configs. Only the latest unread config is kept.
func (w *ConfigWatcher) Updates() <-chan Config {
	return w.updates
}

// Close stops watching. Updates is not closed.
func (w *ConfigWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

// watchLoop handles fsnotify events until the watcher is closed.
func (w *ConfigWatcher) watchLoop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "err", err)
		}
	}
}

func (w *ConfigWatcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if abs, _ := filepath.Abs(event.Name); abs != w.path {
		return
	}

	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("config reload failed; keeping previous settings",
			"path", w.path, "err", err)
		return
	}
	// A truncate arrives as its own write event before the new content.
	if len(bytes.TrimSpace(data)) == 0 {
		return
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		w.logger.Warn("config reload failed; keeping previous settings",
			"path", w.path, "err", err)
		return
	}
	w.logger.Info("config reloaded", "path", w.path)

	// Replace any unread config with the newer one.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
