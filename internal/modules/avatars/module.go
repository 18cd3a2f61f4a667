package avatars

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/avatarkit/internal/middleware"
	"github.com/nfrund/avatarkit/internal/module"
	"github.com/nfrund/avatarkit/internal/mount"
	"github.com/nfrund/avatarkit/internal/pubsub"
	"github.com/nfrund/avatarkit/internal/registry"
	"github.com/nfrund/avatarkit/internal/rendering"
	"github.com/nfrund/avatarkit/internal/theme"
)

// AvatarsModule implements the module.Module interface for avatar rendering.
type AvatarsModule struct {
	module.BaseModule
	subscriber pubsub.Subscriber
	renderer   rendering.Renderer
	themes     *theme.Store
	mounts     *mount.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// Dependencies holds all the services that the AvatarsModule requires to operate.
type Dependencies struct {
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Themes     *theme.Store
	Mounts     *mount.Store
}

// New creates a new instance of the AvatarsModule, injecting its dependencies.
func New(deps Dependencies) *AvatarsModule {
	return &AvatarsModule{
		subscriber: deps.Subscriber,
		renderer:   deps.Renderer,
		themes:     deps.Themes,
		mounts:     deps.Mounts,
	}
}

// Name returns the module name.
func (m *AvatarsModule) Name() string {
	return "avatars"
}

// Register shares the theme and mount stores with other modules.
func (m *AvatarsModule) Register(reg *registry.Registry) error {
	registry.Set(reg, registry.ThemeStoreKey, m.themes)
	registry.Set(reg, registry.MountStoreKey, m.mounts)
	return nil
}

// Boot sets up the routes, the event log subscribers and the mount sweeper.
func (m *AvatarsModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	bgCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	// --- Start Background Services ---
	if m.subscriber != nil {
		err := pubsub.Subscribe(bgCtx, m.subscriber, mount.StateChanged, func(ctx context.Context, key string, t mount.Transition) error {
			slog.Debug("Avatar state changed", "mount_id", key, "from", t.From, "to", t.To)
			return nil
		})
		if err != nil {
			cancel()
			return err
		}
		err = pubsub.Subscribe(bgCtx, m.subscriber, Clicked, func(ctx context.Context, key string, c Click) error {
			slog.Info("Avatar clicked", "mount_id", key, "name", c.DisplayName)
			return nil
		})
		if err != nil {
			cancel()
			return err
		}
	}

	ttl := cfg.GetMountTTL()
	go func() {
		defer close(m.done)
		m.mounts.RunSweeper(bgCtx, sweepInterval(ttl), ttl)
	}()

	// --- Register HTTP Handlers ---
	slog.Info("Booting AvatarsModule: Setting up routes...")
	handler := NewHandler(m.themes, m.mounts, m.renderer, cfg.GetBasePath(), cfg.GetGroupMax())
	handler.Routes(g, middleware.RateLimiter(cfg.GetEventRate()))

	return nil
}

// Shutdown stops the sweeper and the subscriptions.
func (m *AvatarsModule) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down AvatarsModule...")
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// sweepInterval checks a few times per TTL, but not more than once a second.
func sweepInterval(ttl time.Duration) time.Duration {
	return max(ttl/4, time.Second)
}
