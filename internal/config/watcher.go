package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchedFiles are the files whose changes count as a configuration reload.
var watchedFiles = map[string]bool{
	configFile: true,
	".theme":   true,
}

// debounceDelay coalesces editor save bursts into one reload.
const debounceDelay = 200 * time.Millisecond

// Watch emits on the returned channel whenever config.json or the
// persisted theme file in dir changes. The channel is closed when ctx is
// done. Signals are coalesced; a pending reload is never queued twice.
func Watch(ctx context.Context, dir string, logger *slog.Logger) (<-chan struct{}, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors replace files by rename, which drops
	// a watch on the file itself.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	reloads := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer

		// Protect against sending to closed channel from timer callback
		var closed bool
		var mu sync.Mutex

		defer func() {
			mu.Lock()
			closed = true
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			mu.Unlock()
			close(reloads)
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !watchedFiles[filepath.Base(event.Name)] {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				logger.Debug("config change", "file", event.Name, "op", event.Op.String())

				mu.Lock()
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					mu.Lock()
					defer mu.Unlock()
					if closed {
						return
					}
					select {
					case reloads <- struct{}{}:
					default:
						// reload already pending
					}
				})
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "err", err)
			}
		}
	}()

	return reloads, nil
}
