package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/avatarkit/internal/config"
	"github.com/nfrund/avatarkit/internal/theme"
	"github.com/spf13/afero"
)

// LoadThemes builds the theme store from the configured theme file, or the
// built-in theme when none is set. With watching enabled the store follows
// edits to the file until ctx is done.
func LoadThemes(ctx context.Context, fs afero.Fs, cfg config.Provider) (*theme.Store, error) {
	path := cfg.GetThemeFile()
	if path == "" {
		slog.Info("Using built-in theme")
		return theme.NewStore(theme.Default()), nil
	}

	th, err := theme.Load(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	slog.Info("Loaded theme", "name", th.Name, "path", path)
	store := theme.NewStore(th)

	if cfg.GetThemeWatch() {
		if err := theme.NewWatcher(fs, path, store).Start(ctx); err != nil {
			return nil, err
		}
	}
	return store, nil
}
