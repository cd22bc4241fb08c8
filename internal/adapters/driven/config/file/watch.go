package file

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/previewlab/previewd/internal/logger"
)

// Watch reloads the store whenever the config file changes on disk.
// It returns a stop function releasing the watcher. Long-running hosts use
// this so the next resolution request sees updated configuration; the
// registry's own caches stay per-instance.
func (s *ConfigStore) Watch() (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}

	// Watch the directory, not the file: editors replace config files by
	// rename, which drops a plain file watch.
	if err := watcher.Add(s.dir()); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config directory: %w", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.Load(); err != nil {
					logger.Warn("config reload failed: %v", err)
					continue
				}
				logger.Debug("config reloaded from %s", s.path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error: %v", err)
			}
		}
	}()

	return watcher.Close, nil
}

func (s *ConfigStore) dir() string {
	return filepath.Dir(s.path)
}
