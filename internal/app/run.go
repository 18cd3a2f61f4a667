package app

import (
	"context"
	"log/slog"

	"github.com/nfrund/avatarkit/internal/config"
	"github.com/nfrund/avatarkit/internal/modules/avatars"
	"github.com/nfrund/avatarkit/internal/mount"
	"github.com/nfrund/avatarkit/internal/pubsub"
	"github.com/nfrund/avatarkit/internal/registry"
	"github.com/nfrund/avatarkit/internal/rendering"
	"github.com/nfrund/avatarkit/internal/server"
	"github.com/spf13/afero"
)

// Run wires the application from cfg and serves until ctx is done.
func Run(ctx context.Context, cfg config.Provider, version string) error {
	return run(ctx, afero.NewOsFs(), cfg, version)
}

func run(ctx context.Context, fs afero.Fs, cfg config.Provider, version string) error {
	themes, err := server.LoadThemes(ctx, fs, cfg)
	if err != nil {
		return err
	}

	bus := pubsub.NewWatermillBridge()
	defer func() {
		if err := bus.Close(); err != nil {
			slog.Warn("Failed to close pub/sub", "error", err)
		}
	}()

	mounts := mount.NewStore(
		mount.WithPublisher(bus),
		mount.WithMaxMounts(cfg.GetMaxMounts()),
		mount.WithClickHandler(avatars.ClickPublisher(bus)),
	)
	renderer := rendering.NewUniversalRenderer(slog.Default())

	s, err := server.New(server.Dependencies{
		Config:   cfg,
		Renderer: renderer,
		Version:  version,
	})
	if err != nil {
		return err
	}

	modules := NewModules(Dependencies{
		Publisher:  bus,
		Subscriber: bus,
		Renderer:   renderer,
		Themes:     themes,
		Mounts:     mounts,
	})
	if err := s.InitModules(ctx, modules, registry.New(cfg)); err != nil {
		return err
	}
	s.RegisterRoutes()

	return s.Run(ctx, cfg.GetServerAddr())
}
