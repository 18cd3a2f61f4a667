package theme

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Watcher reloads a theme file into a Store whenever it changes on disk.
// A reload that fails to parse or validate keeps the previous theme.
type Watcher struct {
	fs    afero.Fs
	path  string
	store *Store
}

// NewWatcher creates a watcher for path. fs is used for reading the file;
// change notifications always come from the operating system.
func NewWatcher(fs afero.Fs, path string, store *Store) *Watcher {
	return &Watcher{
		fs:    fs,
		path:  filepath.Clean(path),
		store: store,
	}
}

// Start begins watching in a background goroutine that exits when ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}

	// Watch the directory so that editors which replace the file are seen.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch theme directory %s: %w", dir, err)
	}

	go w.run(ctx, watcher)

	slog.Debug("Started theme watcher", "path", w.path)
	return nil
}

func (w *Watcher) run(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		slog.Info("Theme watcher stopped", "path", w.path)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Theme watcher error", "error", err)
		}
	}
}

// handleEvent reloads the theme for writes or creates of the watched file.
// It reports whether a new theme was installed.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	t, err := Load(w.fs, w.path)
	if err != nil {
		slog.Error("Failed to reload theme, keeping previous", "path", w.path, "error", err)
		return false
	}

	w.store.Set(t)
	slog.Info("Reloaded theme", "path", w.path, "theme", t.Name)
	return true
}
