package tui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// newStoreWatcher watches the directory containing the store file.
// Watching the directory instead of the file survives the
// write-to-temp-and-rename dance the store does on every save. A nil
// watcher just disables live reload; the r key still works.
func newStoreWatcher(storePath string) *fsnotify.Watcher {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil
	}
	if err := watcher.Add(filepath.Dir(storePath)); err != nil {
		_ = watcher.Close()
		return nil
	}
	return watcher
}

// waitForFileChange returns a command that blocks until the store file
// changes on disk. Events for other files in the directory, the lock
// file included, are ignored.
func waitForFileChange(watcher *fsnotify.Watcher, storePath string) tea.Cmd {
	return func() tea.Msg {
		if watcher == nil {
			return nil
		}

		base := filepath.Base(storePath)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					// Channel closed
					return nil
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					// Debounce: wait a bit for multiple writes to settle
					time.Sleep(100 * time.Millisecond)
					return MsgFileChanged{}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					// Channel closed
					return nil
				}
				// Keep watching even after an error
			}
		}
	}
}
