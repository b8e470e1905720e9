package server

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for a burst of writes to settle.
const DefaultDebounce = 150 * time.Millisecond

// Watch reloads the roadmap whenever the file at path changes, until ctx
// ends. The parent directory is watched so editors that replace the file
// on save are followed. Reload errors are logged and the previous roadmap
// stays live.
func (s *Server) Watch(ctx context.Context, path string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer w.Close()
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
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
				if err := s.Reload(ctx); err != nil {
					s.logger.Error("reload failed, keeping previous roadmap", "path", path, "error", err)
					continue
				}
				s.logger.Info("reloaded", "path", path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn("watch error", "error", err)
			}
		}
	}()
	return nil
}

// LoadedAt returns when the current roadmap was loaded.
func (s *Server) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
