package theme

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads svc whenever the theme file at path changes on disk, so a
// preference written by another process (the CLI) reaches a running server.
// It blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, svc *Service) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create theme watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: the store replaces the file by rename.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	name := filepath.Base(path)
	svc.logger.Info("Watching theme file", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := svc.Reload(ctx); err != nil {
				svc.logger.Warn("Theme reload failed", "path", path, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			svc.logger.Warn("Theme watcher error", "error", err)
		}
	}
}
