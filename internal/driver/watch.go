package driver

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch runs onChange once, then again every time filename is written
// to, until the watcher errors or its channels close
// (SPEC_FULL §4.7's `--watch`).
func Watch(filename string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("watching %s: %w", filename, err)
	}

	onChange()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}
