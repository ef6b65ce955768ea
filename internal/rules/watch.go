package rules

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay batches the burst of events an editor save produces.
var reloadDelay = 200 * time.Millisecond

// Watch reloads the rule table at path whenever the file changes and hands
// each table that parses to onReload. Read or parse failures go to onError
// and the caller keeps its previous table. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onReload func(*Table), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create rule watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so renames and atomic replaces are seen.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	timer := time.NewTimer(reloadDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(reloadDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)

		case <-timer.C:
			if _, err := os.Stat(target); err != nil {
				onError(fmt.Errorf("rule table %s: %w", target, err))
				continue
			}
			table, err := Load(target)
			if err != nil {
				onError(err)
				continue
			}
			onReload(table)
		}
	}
}
