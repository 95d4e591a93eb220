package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long Watch waits for a burst of events to settle.
const Debounce = 150 * time.Millisecond

// Watch signals on the returned channel whenever the file at path is
// written, created or renamed into place. The parent directory is watched
// so editors that save by replacing the file are seen. Bursts of events are
// coalesced and a pending signal is never duplicated. The channel closes
// when ctx is cancelled.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %q: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config: watch %q: %w", path, err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer watcher.Close()

		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(Debounce)
				} else {
					timer.Reset(Debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("config: watcher error: %v\n", err)
			}
		}
	}()
	return changes, nil
}
